package session

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pizzatime/storefront/internal/cart"
	"github.com/pizzatime/storefront/internal/catalog"
	"github.com/pizzatime/storefront/internal/domain"
	"github.com/pizzatime/storefront/internal/metrics"
	"github.com/pizzatime/storefront/internal/notify"
	"github.com/pizzatime/storefront/internal/order"
)

// Session is the state of one storefront page: its cart, order form and
// pending notifications. Every method runs to completion under the session
// lock, so events are applied strictly in arrival order.
type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	catalog  *catalog.Catalog
	cart     *cart.Manager
	order    *order.Controller
	inbox    *notify.Inbox
	metrics  metrics.Recorder
	logger   *zap.Logger
	lastSeen time.Time
}

// CartView is a snapshot of the cart for rendering
type CartView struct {
	Lines      []domain.LineSummary
	TotalPrice int64
	TotalItems int
}

// OrderView is a snapshot of the order dialog for rendering
type OrderView struct {
	Form       domain.OrderForm
	DialogOpen bool
	DrawerOpen bool
	Cart       CartView
}

// New creates an empty session
func New(cat *catalog.Catalog, rec metrics.Recorder, logger *zap.Logger) *Session {
	if rec == nil {
		rec = metrics.Nop{}
	}
	id := uuid.New()
	logger = logger.With(zap.String("session", id.String()))
	inbox := notify.NewInbox(notify.DefaultInboxSize)
	notifier := notify.Multi{inbox, notify.NewLogger(logger)}

	return &Session{
		ID:       id,
		catalog:  cat,
		cart:     cart.New(notifier),
		order:    order.NewController(notifier),
		inbox:    inbox,
		metrics:  rec,
		logger:   logger,
		lastSeen: time.Now(),
	}
}

// AddItem adds one unit of the catalog item to the cart
func (s *Session) AddItem(itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.catalog.Item(itemID)
	if !ok {
		return &domain.ErrNotFound{Resource: "catalog item", ID: strconv.Itoa(itemID)}
	}
	s.cart.AddItem(item)
	s.metrics.ItemAdded(item.Name)
	return nil
}

// RemoveItem drops the item's line from the cart
func (s *Session) RemoveItem(itemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(itemID)
}

// AdjustQuantity changes the item's quantity by delta
func (s *Session) AdjustQuantity(itemID, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AdjustQuantity(itemID, delta)
}

// ClearCart empties the cart
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Cart returns a snapshot of the cart
func (s *Session) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartView()
}

// Order returns a snapshot of the order dialog
func (s *Session) Order() OrderView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderView()
}

// SetDrawerOpen shows or hides the cart drawer
func (s *Session) SetDrawerOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.SetDrawerOpen(open)
}

// OpenOrderDialog opens the order dialog. The checkout trigger is hidden for
// an empty cart, so an empty cart is refused with domain.ErrEmptyCart.
func (s *Session) OpenOrderDialog() (OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return s.orderView(), domain.ErrEmptyCart
	}
	s.order.OpenOrderDialog()
	return s.orderView(), nil
}

// SetField updates one order form field
func (s *Session) SetField(field domain.OrderField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.SetField(field, value)
}

// SetDeliveryType switches between delivery and pickup
func (s *Session) SetDeliveryType(mode domain.DeliveryMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.SetDeliveryType(mode)
}

// CancelOrder closes the order dialog without clearing the form
func (s *Session) CancelOrder() OrderView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.Cancel()
	return s.orderView()
}

// SubmitOrder places the order. A nil receipt with a nil error means the
// dialog was closed and nothing happened.
func (s *Session) SubmitOrder() (*domain.OrderReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, err := s.order.Submit(s.cart)
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		s.metrics.OrderRejected(metrics.ReasonEmptyCart)
	case errors.Is(err, domain.ErrRequiredFieldMissing):
		s.metrics.OrderRejected(metrics.ReasonMissingFields)
	case err == nil && receipt != nil:
		s.metrics.OrderSubmitted(receipt.Form.DeliveryMode)
		s.logger.Info("Order placed",
			zap.String("receipt", receipt.ID.String()),
			zap.Int64("total", receipt.TotalPrice),
			zap.Int("items", receipt.TotalItems),
			zap.String("delivery_mode", string(receipt.Form.DeliveryMode)),
		)
	}
	return receipt, err
}

// Notifications drains pending notifications
func (s *Session) Notifications() []domain.Notification {
	return s.inbox.Drain()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

func (s *Session) cartView() CartView {
	return CartView{
		Lines:      s.cart.Summary(),
		TotalPrice: s.cart.TotalPrice(),
		TotalItems: s.cart.TotalItemCount(),
	}
}

func (s *Session) orderView() OrderView {
	return OrderView{
		Form:       s.order.Form(),
		DialogOpen: s.order.DialogOpen(),
		DrawerOpen: s.order.DrawerOpen(),
		Cart:       s.cartView(),
	}
}
