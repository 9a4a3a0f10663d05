package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pizzatime/storefront/internal/catalog"
	"github.com/pizzatime/storefront/internal/config"
	"github.com/pizzatime/storefront/internal/domain"
	"github.com/pizzatime/storefront/internal/metrics"
)

type recorder struct {
	mu         sync.Mutex
	added      []string
	submitted  []domain.DeliveryMode
	rejections []string
	active     int
}

func (r *recorder) ItemAdded(item string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.added = append(r.added, item)
}

func (r *recorder) OrderSubmitted(mode domain.DeliveryMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitted = append(r.submitted, mode)
}

func (r *recorder) OrderRejected(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejections = append(r.rejections, reason)
}

func (r *recorder) SessionsActive(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = n
}

func TestSession_AddItemUnknown(t *testing.T) {
	s := New(catalog.Default(), nil, zap.NewNop())

	err := s.AddItem(99)
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.Cart().TotalItems != 0 {
		t.Error("expected cart to stay empty")
	}
}

func TestSession_CartFlow(t *testing.T) {
	rec := &recorder{}
	s := New(catalog.Default(), rec, zap.NewNop())

	for _, id := range []int{1, 2, 1} {
		if err := s.AddItem(id); err != nil {
			t.Fatalf("AddItem(%d): %v", id, err)
		}
	}
	view := s.Cart()
	if view.TotalPrice != 1450 || view.TotalItems != 3 || len(view.Lines) != 2 {
		t.Errorf("unexpected cart view: %+v", view)
	}

	s.AdjustQuantity(1, -2)
	s.RemoveItem(42)
	view = s.Cart()
	if view.TotalPrice != 550 || len(view.Lines) != 1 {
		t.Errorf("unexpected cart view after adjust: %+v", view)
	}

	s.ClearCart()
	if s.Cart().TotalItems != 0 {
		t.Error("expected empty cart after clear")
	}
	if len(rec.added) != 3 || rec.added[1] != "Пепперони" {
		t.Errorf("unexpected recorded additions: %v", rec.added)
	}

	notes := s.Notifications()
	if len(notes) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(notes))
	}
	if notes[0].Message != "Маргарита добавлена в корзину" {
		t.Errorf("unexpected first notification %q", notes[0].Message)
	}
}

func TestSession_OpenOrderDialogRequiresItems(t *testing.T) {
	s := New(catalog.Default(), nil, zap.NewNop())

	view, err := s.OpenOrderDialog()
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if view.DialogOpen {
		t.Error("expected dialog to stay closed")
	}

	_ = s.AddItem(3)
	view, err = s.OpenOrderDialog()
	if err != nil || !view.DialogOpen {
		t.Fatalf("expected dialog open, got open=%v err=%v", view.DialogOpen, err)
	}
}

func TestSession_SubmitOrder(t *testing.T) {
	rec := &recorder{}
	s := New(catalog.Default(), rec, zap.NewNop())

	if _, err := s.SubmitOrder(); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	_ = s.AddItem(1)
	if _, err := s.OpenOrderDialog(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitOrder(); !errors.Is(err, domain.ErrRequiredFieldMissing) {
		t.Fatalf("expected missing fields, got %v", err)
	}

	_ = s.SetField(domain.OrderFieldName, "Ivan")
	_ = s.SetField(domain.OrderFieldPhone, "123")
	_ = s.SetDeliveryType(domain.DeliveryModePickup)
	receipt, err := s.SubmitOrder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receipt.TotalPrice != 450 {
		t.Errorf("expected total 450, got %d", receipt.TotalPrice)
	}

	view := s.Order()
	if view.DialogOpen || view.Cart.TotalItems != 0 || view.Form != domain.NewOrderForm() {
		t.Errorf("expected reset state, got %+v", view)
	}

	if len(rec.rejections) != 2 || rec.rejections[0] != metrics.ReasonEmptyCart || rec.rejections[1] != metrics.ReasonMissingFields {
		t.Errorf("unexpected rejections: %v", rec.rejections)
	}
	if len(rec.submitted) != 1 || rec.submitted[0] != domain.DeliveryModePickup {
		t.Errorf("unexpected submissions: %v", rec.submitted)
	}
}

func TestSession_CancelKeepsForm(t *testing.T) {
	s := New(catalog.Default(), nil, zap.NewNop())
	_ = s.AddItem(1)
	_, _ = s.OpenOrderDialog()
	_ = s.SetField(domain.OrderFieldAddress, "Ленина, 1")

	view := s.CancelOrder()
	if view.DialogOpen {
		t.Error("expected dialog closed")
	}
	if view.Form.Address != "Ленина, 1" {
		t.Errorf("expected address kept, got %q", view.Form.Address)
	}
}

func TestSession_ConcurrentEventsAreSerialized(t *testing.T) {
	s := New(catalog.Default(), nil, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.AddItem(2)
		}()
	}
	wg.Wait()

	view := s.Cart()
	if len(view.Lines) != 1 || view.TotalItems != 50 {
		t.Errorf("expected one line with 50 items, got %+v", view)
	}
}

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *recorder) {
	t.Helper()
	rec := &recorder{}
	store, err := NewStore(config.SessionConfig{TTL: ttl, HashKey: "test-key"}, catalog.Default(), rec, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store, rec
}

func TestStore_ResolveCreatesAndReuses(t *testing.T) {
	store, rec := newTestStore(t, time.Hour)

	sess, token, created := store.Resolve("")
	if !created || token == "" || sess == nil {
		t.Fatalf("expected new session, got created=%v token=%q", created, token)
	}
	again, sameToken, created := store.Resolve(token)
	if created || again != sess || sameToken != token {
		t.Error("expected the same session for a known token")
	}

	_, other, created := store.Resolve("unknown-token")
	if !created || other == token {
		t.Error("expected a fresh session for an unknown token")
	}
	if store.Len() != 2 || rec.active != 2 {
		t.Errorf("expected 2 sessions, got %d (gauge %d)", store.Len(), rec.active)
	}
}

func TestStore_DoesNotKeepRawTokens(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	token, _ := store.Create()

	store.mu.RLock()
	defer store.mu.RUnlock()
	if _, ok := store.sessions[token]; ok {
		t.Error("expected sessions to be keyed by hash, found raw token")
	}
	if _, ok := store.sessions[store.hash(token)]; !ok {
		t.Error("expected session under hashed token")
	}
}

func TestStore_ExpiredSessionIsReplaced(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	token, sess := store.Create()
	now = now.Add(2 * time.Minute)

	if _, ok := store.Get(token); ok {
		t.Fatal("expected expired session to be gone")
	}
	fresh, _, created := store.Resolve(token)
	if !created || fresh == sess {
		t.Error("expected a fresh session after expiry")
	}
}

func TestStore_Sweep(t *testing.T) {
	store, rec := newTestStore(t, time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	oldToken, _ := store.Create()
	now = now.Add(45 * time.Second)
	liveToken, _ := store.Create()

	removed := store.Sweep(now.Add(30 * time.Second))
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if _, ok := store.Get(oldToken); ok {
		t.Error("expected old session evicted")
	}
	if _, ok := store.Get(liveToken); !ok {
		t.Error("expected live session kept")
	}
	if rec.active != 1 {
		t.Errorf("expected gauge 1, got %d", rec.active)
	}
}

func TestNewStore_RejectsLongKey(t *testing.T) {
	long := make([]byte, 65)
	for i := range long {
		long[i] = 'k'
	}
	_, err := NewStore(config.SessionConfig{TTL: time.Hour, HashKey: string(long)}, catalog.Default(), nil, zap.NewNop())
	if err == nil {
		t.Error("expected error for 65 byte key")
	}
}
