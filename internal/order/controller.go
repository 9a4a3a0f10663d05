package order

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pizzatime/storefront/internal/cart"
	"github.com/pizzatime/storefront/internal/domain"
	"github.com/pizzatime/storefront/internal/notify"
)

const (
	MsgEmptyCart     = "Корзина пуста"
	MsgOrderPlaced   = "Заказ оформлен! Мы свяжемся с вами в ближайшее время"
	msgMissingPrefix = "Заполните обязательные поля: "
)

// Controller owns the order form and the order dialog / cart drawer flags.
//
// The dialog moves Closed -> Open on OpenOrderDialog, Open -> Closed with a
// form reset on a successful Submit and Open -> Closed without a reset on
// Cancel. A Controller is not safe for concurrent use.
type Controller struct {
	form       domain.OrderForm
	dialogOpen bool
	drawerOpen bool
	notifier   notify.Notifier
	now        func() time.Time
}

// NewController creates a controller with an empty form and closed dialog
func NewController(notifier notify.Notifier) *Controller {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Controller{
		form:     domain.NewOrderForm(),
		notifier: notifier,
		now:      time.Now,
	}
}

// Form returns a copy of the current form values
func (c *Controller) Form() domain.OrderForm {
	return c.form
}

// DialogOpen reports whether the order dialog is open
func (c *Controller) DialogOpen() bool {
	return c.dialogOpen
}

// DrawerOpen reports whether the cart drawer is open
func (c *Controller) DrawerOpen() bool {
	return c.drawerOpen
}

// SetDrawerOpen shows or hides the cart drawer
func (c *Controller) SetDrawerOpen(open bool) {
	c.drawerOpen = open
}

// OpenOrderDialog opens the dialog. The checkout trigger is only offered
// with a non-empty cart, so the cart is not checked here.
func (c *Controller) OpenOrderDialog() {
	c.dialogOpen = true
}

// SetField stores a raw field value. Validation happens on Submit.
func (c *Controller) SetField(field domain.OrderField, value string) error {
	return c.form.Set(field, value)
}

// SetDeliveryType switches the delivery mode. A previously entered address
// is kept when switching to pickup.
func (c *Controller) SetDeliveryType(mode domain.DeliveryMode) error {
	if !mode.IsValid() {
		return &domain.ErrInvalidDeliveryMode{Mode: string(mode)}
	}
	c.form.DeliveryMode = mode
	return nil
}

// Cancel closes the dialog and keeps whatever was typed into the form
func (c *Controller) Cancel() {
	c.dialogOpen = false
}

// Submit places the order for the given cart.
//
// An empty cart fails with domain.ErrEmptyCart and leaves everything as it
// was. Submitting while the dialog is closed does nothing. Missing required
// fields fail with *domain.RequiredFieldMissingError and keep the dialog open.
// On success the cart is cleared, the dialog closed and the form reset.
func (c *Controller) Submit(items *cart.Manager) (*domain.OrderReceipt, error) {
	if items == nil || items.IsEmpty() {
		c.notifier.Notify(notify.Error(MsgEmptyCart))
		return nil, domain.ErrEmptyCart
	}
	if !c.dialogOpen {
		return nil, nil
	}

	if missing := c.form.MissingFields(); len(missing) > 0 {
		err := &domain.RequiredFieldMissingError{Fields: missing}
		c.notifier.Notify(notify.Error(msgMissingPrefix + strings.Join(err.Labels(), ", ")))
		return nil, err
	}

	receipt := &domain.OrderReceipt{
		ID:         uuid.New(),
		Lines:      items.Summary(),
		TotalPrice: items.TotalPrice(),
		TotalItems: items.TotalItemCount(),
		Form:       c.form,
		PlacedAt:   c.now(),
	}

	c.notifier.Notify(notify.Success(MsgOrderPlaced))
	items.Clear()
	c.dialogOpen = false
	c.form = domain.NewOrderForm()

	return receipt, nil
}
