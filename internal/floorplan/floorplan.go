package floorplan

import (
	"fmt"
	"sort"

	"maitred/internal/models"
)

// FloorPlan holds the dining tables. Tables are created once at startup
// and never removed; only their occupancy flag changes.
type FloorPlan struct {
	tables  map[int]*models.Table
	numbers []int // sorted table numbers
}

// New creates a floor plan from the seed tables. Table numbers must be
// unique positive integers and capacities at least 1.
func New(tables []models.Table) (*FloorPlan, error) {
	f := &FloorPlan{
		tables: make(map[int]*models.Table, len(tables)),
	}
	for _, t := range tables {
		t := t
		if t.Number < 1 {
			return nil, fmt.Errorf("table number %d must be positive: %w", t.Number, models.ErrInvalidValue)
		}
		if t.Capacity < 1 {
			return nil, fmt.Errorf("table %d capacity must be at least 1: %w", t.Number, models.ErrInvalidValue)
		}
		if _, exists := f.tables[t.Number]; exists {
			return nil, fmt.Errorf("table %d: %w", t.Number, models.ErrDuplicateID)
		}
		f.tables[t.Number] = &t
		f.numbers = append(f.numbers, t.Number)
	}
	sort.Ints(f.numbers)
	return f, nil
}

// ListFree returns all unoccupied tables in table-number order.
func (f *FloorPlan) ListFree() []models.Table {
	free := make([]models.Table, 0, len(f.numbers))
	for _, n := range f.numbers {
		if t := f.tables[n]; !t.Occupied {
			free = append(free, *t)
		}
	}
	return free
}

// Find returns a copy of the table with the given number.
func (f *FloorPlan) Find(number int) (models.Table, error) {
	t, exists := f.tables[number]
	if !exists {
		return models.Table{}, fmt.Errorf("table %d: %w", number, models.ErrNotFound)
	}
	return *t, nil
}

// Reserve marks a table occupied. Reserving an occupied table is refused,
// never silently accepted: double-booking is not safe.
func (f *FloorPlan) Reserve(number int) error {
	t, exists := f.tables[number]
	if !exists {
		return fmt.Errorf("table %d: %w", number, models.ErrNotFound)
	}
	if t.Occupied {
		return fmt.Errorf("table %d: %w", number, models.ErrAlreadyOccupied)
	}
	t.Occupied = true
	return nil
}

// Free marks a table unoccupied. Freeing an already-free table is a no-op
// success; release is always safe.
func (f *FloorPlan) Free(number int) error {
	t, exists := f.tables[number]
	if !exists {
		return fmt.Errorf("table %d: %w", number, models.ErrNotFound)
	}
	t.Occupied = false
	return nil
}

// FindSuitable returns the first unoccupied table, in table-number order,
// whose capacity covers the party. First-fit, not best-fit.
func (f *FloorPlan) FindSuitable(partySize int) (models.Table, error) {
	for _, n := range f.numbers {
		t := f.tables[n]
		if !t.Occupied && t.Capacity >= partySize {
			return *t, nil
		}
	}
	return models.Table{}, fmt.Errorf("no free table seats %d: %w", partySize, models.ErrNoTableAvailable)
}

// OccupiedCount returns the number of occupied tables.
func (f *FloorPlan) OccupiedCount() int {
	count := 0
	for _, t := range f.tables {
		if t.Occupied {
			count++
		}
	}
	return count
}
