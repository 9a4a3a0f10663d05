package order

import (
	"errors"
	"testing"
	"time"

	"github.com/pizzatime/storefront/internal/cart"
	"github.com/pizzatime/storefront/internal/domain"
	"github.com/pizzatime/storefront/internal/notify"
)

var margherita = domain.CatalogItem{ID: 1, Name: "Маргарита", Price: 450, Size: domain.Size30}
var veggie = domain.CatalogItem{ID: 3, Name: "Вегетарианская", Price: 500, Size: domain.Size30}

func newFixture(t *testing.T) (*Controller, *cart.Manager, *notify.Inbox) {
	t.Helper()
	inbox := notify.NewInbox(0)
	c := NewController(inbox)
	c.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return c, cart.New(notify.Discard), inbox
}

func fill(t *testing.T, c *Controller, values map[domain.OrderField]string) {
	t.Helper()
	for field, value := range values {
		if err := c.SetField(field, value); err != nil {
			t.Fatalf("SetField(%s): %v", field, err)
		}
	}
}

func TestNewController_Defaults(t *testing.T) {
	c, _, _ := newFixture(t)

	if c.DialogOpen() || c.DrawerOpen() {
		t.Error("expected dialog and drawer to start closed")
	}
	if c.Form() != domain.NewOrderForm() {
		t.Errorf("expected empty form, got %+v", c.Form())
	}
	if c.Form().DeliveryMode != domain.DeliveryModeDelivery {
		t.Errorf("expected delivery mode by default, got %q", c.Form().DeliveryMode)
	}
}

func TestOpenOrderDialog_Idempotent(t *testing.T) {
	c, _, _ := newFixture(t)
	c.OpenOrderDialog()
	c.OpenOrderDialog()

	if !c.DialogOpen() {
		t.Error("expected dialog open")
	}
}

func TestSetField_UnknownField(t *testing.T) {
	c, _, _ := newFixture(t)
	err := c.SetField("email", "x@example.com")

	var invalid *domain.ErrInvalidField
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestSetDeliveryType_KeepsAddress(t *testing.T) {
	c, _, _ := newFixture(t)
	fill(t, c, map[domain.OrderField]string{domain.OrderFieldAddress: "Ленина, 1"})

	if err := c.SetDeliveryType(domain.DeliveryModePickup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Form().Address != "Ленина, 1" {
		t.Errorf("expected address to be kept, got %q", c.Form().Address)
	}
	if c.Form().DeliveryMode != domain.DeliveryModePickup {
		t.Errorf("expected pickup, got %q", c.Form().DeliveryMode)
	}
}

func TestSetDeliveryType_Invalid(t *testing.T) {
	c, _, _ := newFixture(t)
	err := c.SetDeliveryType("drone")

	var invalid *domain.ErrInvalidDeliveryMode
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidDeliveryMode, got %v", err)
	}
	if c.Form().DeliveryMode != domain.DeliveryModeDelivery {
		t.Errorf("expected mode unchanged, got %q", c.Form().DeliveryMode)
	}
}

func TestCancel_KeepsForm(t *testing.T) {
	c, _, _ := newFixture(t)
	c.OpenOrderDialog()
	fill(t, c, map[domain.OrderField]string{domain.OrderFieldName: "Иван"})
	c.Cancel()

	if c.DialogOpen() {
		t.Error("expected dialog closed")
	}
	if c.Form().Name != "Иван" {
		t.Errorf("expected name to persist after cancel, got %q", c.Form().Name)
	}

	c.Cancel()
	if c.DialogOpen() {
		t.Error("expected cancel on closed dialog to be a no-op")
	}
}

func TestSubmit_EmptyCart(t *testing.T) {
	for _, open := range []bool{false, true} {
		c, items, inbox := newFixture(t)
		fill(t, c, map[domain.OrderField]string{domain.OrderFieldName: "Иван"})
		if open {
			c.OpenOrderDialog()
		}
		before := c.Form()

		receipt, err := c.Submit(items)
		if !errors.Is(err, domain.ErrEmptyCart) {
			t.Fatalf("open=%v: expected ErrEmptyCart, got %v", open, err)
		}
		if receipt != nil {
			t.Errorf("open=%v: expected no receipt", open)
		}
		if c.DialogOpen() != open {
			t.Errorf("open=%v: dialog flag changed", open)
		}
		if c.Form() != before {
			t.Errorf("open=%v: form changed to %+v", open, c.Form())
		}
		got := inbox.Drain()
		if len(got) != 1 || got[0].Severity != domain.SeverityError || got[0].Message != MsgEmptyCart {
			t.Errorf("open=%v: expected one %q error notification, got %+v", open, MsgEmptyCart, got)
		}
	}
}

func TestSubmit_ClosedDialogIsNoop(t *testing.T) {
	c, items, inbox := newFixture(t)
	items.AddItem(margherita)
	fill(t, c, map[domain.OrderField]string{domain.OrderFieldName: "Иван", domain.OrderFieldPhone: "123", domain.OrderFieldAddress: "Ленина, 1"})

	receipt, err := c.Submit(items)
	if err != nil || receipt != nil {
		t.Fatalf("expected no-op, got receipt=%v err=%v", receipt, err)
	}
	if items.IsEmpty() {
		t.Error("expected cart to be kept")
	}
	if inbox.Len() != 0 {
		t.Errorf("expected no notifications, got %d", inbox.Len())
	}
}

func TestSubmit_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mode   domain.DeliveryMode
		values map[domain.OrderField]string
		want   []domain.OrderField
	}{
		{"all missing for delivery", domain.DeliveryModeDelivery, nil,
			[]domain.OrderField{domain.OrderFieldName, domain.OrderFieldPhone, domain.OrderFieldAddress}},
		{"address required for delivery", domain.DeliveryModeDelivery,
			map[domain.OrderField]string{domain.OrderFieldName: "Иван", domain.OrderFieldPhone: "123"},
			[]domain.OrderField{domain.OrderFieldAddress}},
		{"address not required for pickup", domain.DeliveryModePickup,
			map[domain.OrderField]string{domain.OrderFieldPhone: "123"},
			[]domain.OrderField{domain.OrderFieldName}},
		{"blank counts as missing", domain.DeliveryModePickup,
			map[domain.OrderField]string{domain.OrderFieldName: "   ", domain.OrderFieldPhone: "123"},
			[]domain.OrderField{domain.OrderFieldName}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, items, inbox := newFixture(t)
			items.AddItem(margherita)
			c.OpenOrderDialog()
			fill(t, c, tt.values)
			if err := c.SetDeliveryType(tt.mode); err != nil {
				t.Fatal(err)
			}

			_, err := c.Submit(items)
			var missing *domain.RequiredFieldMissingError
			if !errors.As(err, &missing) {
				t.Fatalf("expected RequiredFieldMissingError, got %v", err)
			}
			if !errors.Is(err, domain.ErrRequiredFieldMissing) {
				t.Error("expected errors.Is to match ErrRequiredFieldMissing")
			}
			if len(missing.Fields) != len(tt.want) {
				t.Fatalf("expected fields %v, got %v", tt.want, missing.Fields)
			}
			for i := range tt.want {
				if missing.Fields[i] != tt.want[i] {
					t.Errorf("expected fields %v, got %v", tt.want, missing.Fields)
				}
			}
			if !c.DialogOpen() {
				t.Error("expected dialog to stay open")
			}
			if items.IsEmpty() {
				t.Error("expected cart to be kept")
			}
			if got := inbox.Drain(); len(got) != 1 || got[0].Severity != domain.SeverityError {
				t.Errorf("expected one error notification, got %+v", got)
			}
		})
	}
}

func TestSubmit_PickupSuccess(t *testing.T) {
	c, items, inbox := newFixture(t)
	items.AddItem(veggie)
	c.OpenOrderDialog()
	fill(t, c, map[domain.OrderField]string{domain.OrderFieldName: "Ivan", domain.OrderFieldPhone: "123"})
	if err := c.SetDeliveryType(domain.DeliveryModePickup); err != nil {
		t.Fatal(err)
	}

	receipt, err := c.Submit(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !items.IsEmpty() {
		t.Error("expected cart to be cleared")
	}
	if c.DialogOpen() {
		t.Error("expected dialog closed")
	}
	if c.Form() != domain.NewOrderForm() {
		t.Errorf("expected form reset, got %+v", c.Form())
	}

	if receipt.TotalPrice != 500 || receipt.TotalItems != 1 {
		t.Errorf("unexpected receipt totals: %d / %d", receipt.TotalPrice, receipt.TotalItems)
	}
	if receipt.Form.Name != "Ivan" || receipt.Form.DeliveryMode != domain.DeliveryModePickup {
		t.Errorf("unexpected receipt form: %+v", receipt.Form)
	}
	if len(receipt.Lines) != 1 || receipt.Lines[0].Name != "Вегетарианская" {
		t.Errorf("unexpected receipt lines: %+v", receipt.Lines)
	}
	if !receipt.PlacedAt.Equal(c.now()) {
		t.Errorf("unexpected placed-at %v", receipt.PlacedAt)
	}

	got := inbox.Drain()
	if len(got) != 1 || got[0].Message != MsgOrderPlaced || got[0].Severity != domain.SeveritySuccess {
		t.Errorf("expected one success notification, got %+v", got)
	}
}

func TestSubmit_ResetsDeliveryModeAfterPickup(t *testing.T) {
	c, items, _ := newFixture(t)
	items.AddItem(margherita)
	c.OpenOrderDialog()
	fill(t, c, map[domain.OrderField]string{domain.OrderFieldName: "Ivan", domain.OrderFieldPhone: "123", domain.OrderFieldComment: "без лука"})
	_ = c.SetDeliveryType(domain.DeliveryModePickup)

	if _, err := c.Submit(items); err != nil {
		t.Fatal(err)
	}
	if c.Form().DeliveryMode != domain.DeliveryModeDelivery || c.Form().Comment != "" {
		t.Errorf("expected defaults after submit, got %+v", c.Form())
	}
}
