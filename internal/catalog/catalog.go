package catalog

import (
	"fmt"
	"sort"

	"maitred/internal/models"
)

// Catalog holds the menu. It is a pure lookup/mutation store; cross-entity
// rules live in the coordinator. Items are never deleted.
type Catalog struct {
	items map[string]*models.MenuItem
	order []string // item ids in insertion order
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		items: make(map[string]*models.MenuItem),
	}
}

// AddItem inserts a new menu item.
func (c *Catalog) AddItem(item models.MenuItem) error {
	if err := models.ValidateMenuItem(&item); err != nil {
		return err
	}
	if _, exists := c.items[item.ID]; exists {
		return fmt.Errorf("menu item %s: %w", item.ID, models.ErrDuplicateID)
	}
	c.items[item.ID] = &item
	c.order = append(c.order, item.ID)
	return nil
}

// SetAvailability flips the availability flag of an item.
func (c *Catalog) SetAvailability(id string, available bool) error {
	item, exists := c.items[id]
	if !exists {
		return fmt.Errorf("menu item %s: %w", id, models.ErrNotFound)
	}
	item.Available = available
	return nil
}

// SetPrice updates an item's price. Existing order lines keep the price
// they were added at.
func (c *Catalog) SetPrice(id string, price float64) error {
	item, exists := c.items[id]
	if !exists {
		return fmt.Errorf("menu item %s: %w", id, models.ErrNotFound)
	}
	if price <= 0 {
		return fmt.Errorf("price must be greater than 0: %w", models.ErrInvalidValue)
	}
	item.Price = price
	return nil
}

// Find returns a copy of the item with the given id.
func (c *Catalog) Find(id string) (models.MenuItem, error) {
	item, exists := c.items[id]
	if !exists {
		return models.MenuItem{}, fmt.Errorf("menu item %s: %w", id, models.ErrNotFound)
	}
	return *item, nil
}

// MenuSection groups the available items of one category.
type MenuSection struct {
	Category string            `json:"category"`
	Items    []models.MenuItem `json:"items"`
}

// ListByCategory groups available items by category. Categories come back
// in lexicographic order and items within a category in insertion order;
// the operator interface displays them exactly as returned.
func (c *Catalog) ListByCategory() []MenuSection {
	grouped := make(map[string][]models.MenuItem)
	for _, id := range c.order {
		item := c.items[id]
		if !item.Available {
			continue
		}
		grouped[item.Category] = append(grouped[item.Category], *item)
	}

	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	sections := make([]MenuSection, 0, len(categories))
	for _, category := range categories {
		sections = append(sections, MenuSection{Category: category, Items: grouped[category]})
	}
	return sections
}
