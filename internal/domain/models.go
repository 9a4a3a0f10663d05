package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CatalogItem represents a sellable product. Prices are whole currency units.
type CatalogItem struct {
	ID          int
	Name        string
	Description string
	Price       int64
	Image       string
	Size        Size
}

// MaxLineQuantity caps the quantity of a single cart line
const MaxLineQuantity = 999

// CartLine is one catalog item's accumulated quantity within a cart
type CartLine struct {
	ItemID   int
	Quantity int
}

// LineSummary is a cart line joined with its catalog item, as shown in the
// cart drawer and the order summary
type LineSummary struct {
	ItemID    int
	Name      string
	UnitPrice int64
	Quantity  int
	Subtotal  int64
}

// OrderForm holds the contact and delivery details of a pending order
type OrderForm struct {
	DeliveryMode DeliveryMode
	Name         string
	Phone        string
	Address      string
	Comment      string
}

// NewOrderForm returns the empty form the order dialog starts with
func NewOrderForm() OrderForm {
	return OrderForm{DeliveryMode: DeliveryModeDelivery}
}

// Get returns the current value of a field
func (f OrderForm) Get(field OrderField) string {
	switch field {
	case OrderFieldName:
		return f.Name
	case OrderFieldPhone:
		return f.Phone
	case OrderFieldAddress:
		return f.Address
	case OrderFieldComment:
		return f.Comment
	default:
		return ""
	}
}

// Set updates a single field. Values are stored as entered.
func (f *OrderForm) Set(field OrderField, value string) error {
	switch field {
	case OrderFieldName:
		f.Name = value
	case OrderFieldPhone:
		f.Phone = value
	case OrderFieldAddress:
		f.Address = value
	case OrderFieldComment:
		f.Comment = value
	default:
		return &ErrInvalidField{Field: string(field)}
	}
	return nil
}

// MissingFields lists the required fields that are blank, in form order.
// Address is only required for delivery.
func (f OrderForm) MissingFields() []OrderField {
	var missing []OrderField
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, OrderFieldName)
	}
	if strings.TrimSpace(f.Phone) == "" {
		missing = append(missing, OrderFieldPhone)
	}
	if f.DeliveryMode.RequiresAddress() && strings.TrimSpace(f.Address) == "" {
		missing = append(missing, OrderFieldAddress)
	}
	return missing
}

// Notification is a transient message for the customer
type Notification struct {
	Severity  Severity
	Message   string
	CreatedAt time.Time
}

// OrderReceipt describes an order that was placed. It is only used to render
// the confirmation and is never stored.
type OrderReceipt struct {
	ID         uuid.UUID
	Lines      []LineSummary
	TotalPrice int64
	TotalItems int
	Form       OrderForm
	PlacedAt   time.Time
}
