package cart

import (
	"fmt"
	"math"

	"github.com/pizzatime/storefront/internal/domain"
	"github.com/pizzatime/storefront/internal/notify"
)

// Manager owns the cart lines of one session. Lines keep the order in which
// items were first added and there is at most one line per item.
// A Manager is not safe for concurrent use.
type Manager struct {
	lines    []domain.CartLine
	items    map[int]domain.CatalogItem
	notifier notify.Notifier
}

// New creates an empty cart reporting additions to notifier
func New(notifier notify.Notifier) *Manager {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Manager{
		items:    make(map[int]domain.CatalogItem),
		notifier: notifier,
	}
}

// AddItem increments the item's line or appends a new line with quantity 1.
// A line already at domain.MaxLineQuantity stays there.
func (m *Manager) AddItem(item domain.CatalogItem) {
	if idx := m.index(item.ID); idx >= 0 {
		if m.lines[idx].Quantity < domain.MaxLineQuantity {
			m.lines[idx].Quantity++
		}
	} else {
		m.lines = append(m.lines, domain.CartLine{ItemID: item.ID, Quantity: 1})
	}
	m.items[item.ID] = item

	m.notifier.Notify(notify.Success(fmt.Sprintf("%s добавлена в корзину", item.Name)))
}

// RemoveItem deletes the line for itemID. Absent ids are ignored.
func (m *Manager) RemoveItem(itemID int) {
	idx := m.index(itemID)
	if idx < 0 {
		return
	}
	m.drop(idx)
}

// AdjustQuantity adds delta to the line's quantity. A line that would reach
// zero or below is removed and one that would pass domain.MaxLineQuantity
// is clamped to it. Absent ids are ignored.
func (m *Manager) AdjustQuantity(itemID int, delta int) {
	idx := m.index(itemID)
	if idx < 0 {
		return
	}

	current := m.lines[idx].Quantity
	if delta > domain.MaxLineQuantity-current {
		m.lines[idx].Quantity = domain.MaxLineQuantity
		return
	}
	// current is at most MaxLineQuantity, so this cannot wrap for any delta
	quantity := current + delta
	if quantity <= 0 {
		m.drop(idx)
		return
	}
	m.lines[idx].Quantity = quantity
}

// Clear empties the cart
func (m *Manager) Clear() {
	m.lines = nil
	m.items = make(map[int]domain.CatalogItem)
}

// TotalPrice is the sum of unit price times quantity over all lines
func (m *Manager) TotalPrice() int64 {
	var total int64
	for _, line := range m.lines {
		total = addCapped(total, subtotal(m.items[line.ItemID].Price, line.Quantity))
	}
	return total
}

// TotalItemCount is the sum of quantities over all lines
func (m *Manager) TotalItemCount() int {
	count := 0
	for _, line := range m.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns a copy of the cart lines in insertion order
func (m *Manager) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(m.lines))
	copy(out, m.lines)
	return out
}

// Line returns the line for itemID
func (m *Manager) Line(itemID int) (domain.CartLine, bool) {
	idx := m.index(itemID)
	if idx < 0 {
		return domain.CartLine{}, false
	}
	return m.lines[idx], true
}

// Len returns the number of lines
func (m *Manager) Len() int {
	return len(m.lines)
}

// IsEmpty reports whether the cart has no lines
func (m *Manager) IsEmpty() bool {
	return len(m.lines) == 0
}

// Summary joins every line with its item for display
func (m *Manager) Summary() []domain.LineSummary {
	out := make([]domain.LineSummary, 0, len(m.lines))
	for _, line := range m.lines {
		item := m.items[line.ItemID]
		out = append(out, domain.LineSummary{
			ItemID:    line.ItemID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  line.Quantity,
			Subtotal:  subtotal(item.Price, line.Quantity),
		})
	}
	return out
}

func (m *Manager) index(itemID int) int {
	for i, line := range m.lines {
		if line.ItemID == itemID {
			return i
		}
	}
	return -1
}

func (m *Manager) drop(idx int) {
	delete(m.items, m.lines[idx].ItemID)
	m.lines = append(m.lines[:idx], m.lines[idx+1:]...)
}

// subtotal multiplies price by quantity, saturating at math.MaxInt64
func subtotal(price int64, quantity int) int64 {
	if price <= 0 || quantity <= 0 {
		return 0
	}
	if price > math.MaxInt64/int64(quantity) {
		return math.MaxInt64
	}
	return price * int64(quantity)
}

func addCapped(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}
	return a + b
}
