package orderbook

import (
	"fmt"
	"time"

	"maitred/internal/models"
)

// OrderBook holds customer orders. It is a pure store: table occupancy and
// menu lookups are the coordinator's business, and line prices arrive as
// snapshots taken by the caller.
type OrderBook struct {
	orders  map[string]*models.Order
	created []string // order ids in creation order
	nextID  int
}

// New creates an empty order book. Order ids count up from ORD1001.
func New() *OrderBook {
	return &OrderBook{
		orders: make(map[string]*models.Order),
		nextID: 1001,
	}
}

// Open creates a new pending order against a table.
func (b *OrderBook) Open(tableNumber, customerCount int) (models.Order, error) {
	if customerCount < 1 {
		return models.Order{}, fmt.Errorf("customer count must be at least 1: %w", models.ErrInvalidValue)
	}
	id := fmt.Sprintf("ORD%d", b.nextID)
	b.nextID++
	order := &models.Order{
		ID:            id,
		TableNumber:   tableNumber,
		CreatedAt:     time.Now(),
		Status:        models.OrderStatusPending,
		CustomerCount: customerCount,
	}
	b.orders[id] = order
	b.created = append(b.created, id)
	return *order, nil
}

// AddLine appends a line entry and grows the total by quantity times the
// unit price passed in. The price is the caller's snapshot; the book never
// re-reads the catalog, so later price changes leave the total alone.
func (b *OrderBook) AddLine(orderID, itemID string, quantity int, unitPrice float64) (models.Order, error) {
	order, exists := b.orders[orderID]
	if !exists {
		return models.Order{}, fmt.Errorf("order %s: %w", orderID, models.ErrNotFound)
	}
	if quantity < 1 {
		return models.Order{}, fmt.Errorf("quantity must be at least 1: %w", models.ErrInvalidValue)
	}
	order.Lines = append(order.Lines, models.OrderLine{
		ItemID:    itemID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	order.Total += unitPrice * float64(quantity)
	return copyOrder(order), nil
}

// SetInstructions attaches free-text instructions to an order.
func (b *OrderBook) SetInstructions(orderID, text string) error {
	order, exists := b.orders[orderID]
	if !exists {
		return fmt.Errorf("order %s: %w", orderID, models.ErrNotFound)
	}
	order.Instructions = text
	return nil
}

// SetStatus moves an order to a new status and returns the previous one so
// the caller can detect the transition into paid. Any status may be set
// from any other.
func (b *OrderBook) SetStatus(orderID, newStatus string) (models.OrderStatus, error) {
	order, exists := b.orders[orderID]
	if !exists {
		return "", fmt.Errorf("order %s: %w", orderID, models.ErrNotFound)
	}
	status, err := models.ParseOrderStatus(newStatus)
	if err != nil {
		return "", err
	}
	previous := order.Status
	order.Status = status
	return previous, nil
}

// Find returns a copy of the order with the given id.
func (b *OrderBook) Find(orderID string) (models.Order, error) {
	order, exists := b.orders[orderID]
	if !exists {
		return models.Order{}, fmt.Errorf("order %s: %w", orderID, models.ErrNotFound)
	}
	return copyOrder(order), nil
}

// ListActive returns all orders not yet paid, in creation order.
func (b *OrderBook) ListActive() []models.Order {
	active := make([]models.Order, 0, len(b.created))
	for _, id := range b.created {
		if order := b.orders[id]; order.Status != models.OrderStatusPaid {
			active = append(active, copyOrder(order))
		}
	}
	return active
}

// ListPaid returns all paid orders, in creation order.
func (b *OrderBook) ListPaid() []models.Order {
	paid := make([]models.Order, 0, len(b.created))
	for _, id := range b.created {
		if order := b.orders[id]; order.Status == models.OrderStatusPaid {
			paid = append(paid, copyOrder(order))
		}
	}
	return paid
}

// copyOrder deep-copies an order so callers never alias the stored lines.
func copyOrder(order *models.Order) models.Order {
	out := *order
	out.Lines = make([]models.OrderLine, len(order.Lines))
	copy(out.Lines, order.Lines)
	return out
}
