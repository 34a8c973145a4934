package reservations

import (
	"fmt"

	"maitred/internal/models"
)

// Book holds reservations. Table selection and locking belong to the
// coordinator; the book only records what was decided.
type Book struct {
	reservations map[string]*models.Reservation
	created      []string // reservation ids in creation order
	nextID       int
}

// New creates an empty reservation book. Ids count up from RES2001.
func New() *Book {
	return &Book{
		reservations: make(map[string]*models.Reservation),
		nextID:       2001,
	}
}

// Create records a reservation for a party on an already-selected table.
func (b *Book) Create(name, phone string, partySize int, date, timeSlot string, tableNumber int) (models.Reservation, error) {
	if partySize < 1 {
		return models.Reservation{}, fmt.Errorf("party size must be at least 1: %w", models.ErrInvalidValue)
	}
	id := fmt.Sprintf("RES%d", b.nextID)
	b.nextID++
	res := &models.Reservation{
		ID:           id,
		CustomerName: name,
		Phone:        phone,
		PartySize:    partySize,
		Date:         date,
		Time:         timeSlot,
		TableNumber:  tableNumber,
	}
	b.reservations[id] = res
	b.created = append(b.created, id)
	return *res, nil
}

// AttachRequest adds special-request text to a reservation.
func (b *Book) AttachRequest(reservationID, text string) error {
	res, exists := b.reservations[reservationID]
	if !exists {
		return fmt.Errorf("reservation %s: %w", reservationID, models.ErrNotFound)
	}
	res.SpecialRequests = text
	return nil
}

// Find returns a copy of the reservation with the given id.
func (b *Book) Find(reservationID string) (models.Reservation, error) {
	res, exists := b.reservations[reservationID]
	if !exists {
		return models.Reservation{}, fmt.Errorf("reservation %s: %w", reservationID, models.ErrNotFound)
	}
	return *res, nil
}

// ListForDate returns all reservations for a date, in creation order.
func (b *Book) ListForDate(date string) []models.Reservation {
	matched := make([]models.Reservation, 0, len(b.created))
	for _, id := range b.created {
		if res := b.reservations[id]; res.Date == date {
			matched = append(matched, *res)
		}
	}
	return matched
}

// Len returns the number of reservations on record.
func (b *Book) Len() int {
	return len(b.reservations)
}
