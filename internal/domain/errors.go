package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCart is returned when an order is submitted with no cart lines
	ErrEmptyCart = errors.New("cart is empty")
	// ErrRequiredFieldMissing matches any *RequiredFieldMissingError via errors.Is
	ErrRequiredFieldMissing = errors.New("required field missing")
)

// ErrNotFound represents a missing resource
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrInvalidField is returned for an unknown order form field
type ErrInvalidField struct {
	Field string
}

func (e *ErrInvalidField) Error() string {
	return fmt.Sprintf("invalid order field: %q", e.Field)
}

// ErrInvalidDeliveryMode is returned for a delivery mode outside delivery|pickup
type ErrInvalidDeliveryMode struct {
	Mode string
}

func (e *ErrInvalidDeliveryMode) Error() string {
	return fmt.Sprintf("invalid delivery mode: %q", e.Mode)
}

// RequiredFieldMissingError lists the required fields left blank at submission
type RequiredFieldMissingError struct {
	Fields []OrderField
}

func (e *RequiredFieldMissingError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return "required fields missing: " + strings.Join(names, ", ")
}

func (e *RequiredFieldMissingError) Is(target error) bool {
	return target == ErrRequiredFieldMissing
}

// Labels returns the customer-facing labels of the missing fields
func (e *RequiredFieldMissingError) Labels() []string {
	labels := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		labels[i] = f.Label()
	}
	return labels
}
