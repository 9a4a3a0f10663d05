package catalog

import (
	"fmt"

	"github.com/pizzatime/storefront/internal/domain"
)

// Catalog is the read-only list of items offered for the lifetime of the process
type Catalog struct {
	items []domain.CatalogItem
	byID  map[int]int
}

// New validates items and builds a catalog preserving their order
func New(items []domain.CatalogItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]domain.CatalogItem, 0, len(items)),
		byID:  make(map[int]int, len(items)),
	}

	for _, item := range items {
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog item id %d", item.ID)
		}
		if item.Name == "" {
			return nil, fmt.Errorf("catalog item %d: name is required", item.ID)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("catalog item %d: price must be non-negative", item.ID)
		}
		if !item.Size.IsValid() {
			return nil, fmt.Errorf("catalog item %d: invalid size %q", item.ID, item.Size)
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}

	return c, nil
}

// Items returns a copy of the catalog in display order
func (c *Catalog) Items() []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

// Item looks up a catalog item by id
func (c *Catalog) Item(id int) (domain.CatalogItem, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.CatalogItem{}, false
	}
	return c.items[idx], true
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}
