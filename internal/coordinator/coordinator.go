package coordinator

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"maitred/internal/catalog"
	"maitred/internal/floorplan"
	"maitred/internal/models"
	"maitred/internal/monitoring"
	"maitred/internal/orderbook"
	"maitred/internal/reservations"
)

// Event is a lifecycle notification published to the operator interface.
type Event struct {
	Type          string  `json:"type"`
	OrderID       string  `json:"order_id,omitempty"`
	ReservationID string  `json:"reservation_id,omitempty"`
	TableNumber   int     `json:"table_number,omitempty"`
	ItemID        string  `json:"item_id,omitempty"`
	Quantity      int     `json:"quantity,omitempty"`
	Status        string  `json:"status,omitempty"`
	Total         float64 `json:"total,omitempty"`
}

// Event types published by the coordinator.
const (
	EventReservationCreated = "reservation_created"
	EventOrderOpened        = "order_opened"
	EventLineAdded          = "line_added"
	EventStatusChanged      = "status_changed"
	EventTableFreed         = "table_freed"
)

// EventSink receives coordinator events. The API's websocket hub
// implements it.
type EventSink interface {
	Publish(event Event)
}

// NopSink discards events.
type NopSink struct{}

// Publish implements EventSink.
func (NopSink) Publish(Event) {}

// Coordinator orchestrates the cross-entity rules that link the four
// stores. It is the only component allowed to touch two stores in one
// transaction, and it serializes every operation behind a single mutex so
// the two-store invariants hold under concurrent callers.
type Coordinator struct {
	mu sync.Mutex

	catalog      *catalog.Catalog
	floor        *floorplan.FloorPlan
	orders       *orderbook.OrderBook
	reservations *reservations.Book

	events  EventSink
	metrics *monitoring.Metrics
}

// New wires the coordinator to its stores, event sink, and metrics.
func New(cat *catalog.Catalog, floor *floorplan.FloorPlan, orders *orderbook.OrderBook, book *reservations.Book, events EventSink, metrics *monitoring.Metrics) *Coordinator {
	return &Coordinator{
		catalog:      cat,
		floor:        floor,
		orders:       orders,
		reservations: book,
		events:       events,
		metrics:      metrics,
	}
}

// ListMenu returns the available menu grouped by category.
func (c *Coordinator) ListMenu() []catalog.MenuSection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.ListByCategory()
}

// AddMenuItem adds a new item to the catalog.
func (c *Coordinator) AddMenuItem(item models.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.AddItem(item)
}

// SetMenuItemPrice updates an item's price for future order lines.
func (c *Coordinator) SetMenuItemPrice(id string, price float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.SetPrice(id, price)
}

// SetMenuItemAvailability flips an item's availability.
func (c *Coordinator) SetMenuItemAvailability(id string, available bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.SetAvailability(id, available)
}

// ListFreeTables returns all unoccupied tables in table-number order.
func (c *Coordinator) ListFreeTables() []models.Table {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.floor.ListFree()
}

// RequestReservation finds the first free table seating the party,
// reserves it, and records the reservation. The reserve and the record are
// one logical transaction: on any partial failure the table is released
// again, so no reservation ever points at a table it does not hold, and a
// failed request leaves both stores untouched.
func (c *Coordinator) RequestReservation(name, phone string, partySize int, date, timeSlot string) (models.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, err := c.floor.FindSuitable(partySize)
	if err != nil {
		return models.Reservation{}, err
	}
	if err := c.floor.Reserve(table.Number); err != nil {
		return models.Reservation{}, fmt.Errorf("reserve table %d: %w", table.Number, err)
	}
	res, err := c.reservations.Create(name, phone, partySize, date, timeSlot, table.Number)
	if err != nil {
		// Roll the table back so a failed request commits nothing.
		if freeErr := c.floor.Free(table.Number); freeErr != nil {
			log.Printf("rollback of table %d failed: %v", table.Number, freeErr)
		}
		return models.Reservation{}, err
	}

	c.metrics.RecordReservation()
	c.metrics.SetOccupiedTables(c.floor.OccupiedCount())
	c.events.Publish(Event{
		Type:          EventReservationCreated,
		ReservationID: res.ID,
		TableNumber:   res.TableNumber,
	})
	return res, nil
}

// AttachSpecialRequest adds special-request text to a reservation.
func (c *Coordinator) AttachSpecialRequest(reservationID, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reservations.AttachRequest(reservationID, text)
}

// ListReservationsForDate returns the reservations for a date in creation
// order.
func (c *Coordinator) ListReservationsForDate(date string) []models.Reservation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reservations.ListForDate(date)
}

// OpenOrderForTable opens a new order against an occupied table. The
// occupancy check lives here so the order book stays a pure store.
func (c *Coordinator) OpenOrderForTable(tableNumber, customerCount int) (models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, err := c.floor.Find(tableNumber)
	if err != nil {
		return models.Order{}, err
	}
	if !table.Occupied {
		return models.Order{}, fmt.Errorf("table %d: %w", tableNumber, models.ErrTableNotOccupied)
	}
	order, err := c.orders.Open(tableNumber, customerCount)
	if err != nil {
		return models.Order{}, err
	}

	c.metrics.RecordOrderOpened()
	c.events.Publish(Event{
		Type:        EventOrderOpened,
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
	})
	return order, nil
}

// AddOrderLine resolves the item against the catalog and appends a line
// with the item's current price. The price is snapshotted here; later
// catalog changes never reach existing lines.
func (c *Coordinator) AddOrderLine(orderID, itemID string, quantity int) (models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, err := c.catalog.Find(itemID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Order{}, fmt.Errorf("menu item %s: %w", itemID, models.ErrItemUnavailable)
		}
		return models.Order{}, err
	}
	if !item.Available {
		return models.Order{}, fmt.Errorf("menu item %s: %w", itemID, models.ErrItemUnavailable)
	}
	order, err := c.orders.AddLine(orderID, itemID, quantity, item.Price)
	if err != nil {
		return models.Order{}, err
	}

	c.events.Publish(Event{
		Type:     EventLineAdded,
		OrderID:  order.ID,
		ItemID:   itemID,
		Quantity: quantity,
		Total:    order.Total,
	})
	return order, nil
}

// SetOrderInstructions attaches free-text instructions to an order.
func (c *Coordinator) SetOrderInstructions(orderID, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orders.SetInstructions(orderID, text)
}

// AdvanceOrderStatus moves an order to a new status and returns the
// previous one. The transition into paid frees the order's table; this is
// the only mechanism that releases a table. Setting paid on an already
// paid order changes nothing on the floor.
func (c *Coordinator) AdvanceOrderStatus(orderID, newStatus string) (models.OrderStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	previous, err := c.orders.SetStatus(orderID, newStatus)
	if err != nil {
		return "", err
	}
	order, err := c.orders.Find(orderID)
	if err != nil {
		return "", err
	}

	if order.Status == models.OrderStatusPaid && previous != models.OrderStatusPaid {
		// Order tables always come from the floor plan, so Free can only
		// fail if the stores are out of sync; log rather than unwind a
		// status change that already happened.
		if err := c.floor.Free(order.TableNumber); err != nil {
			log.Printf("free table %d for order %s: %v", order.TableNumber, order.ID, err)
		}
		c.metrics.RecordOrderPaid(order.Total)
		c.metrics.SetOccupiedTables(c.floor.OccupiedCount())
		c.events.Publish(Event{
			Type:        EventTableFreed,
			OrderID:     order.ID,
			TableNumber: order.TableNumber,
		})
	}

	c.events.Publish(Event{
		Type:    EventStatusChanged,
		OrderID: order.ID,
		Status:  string(order.Status),
	})
	return previous, nil
}

// ListActiveOrders returns all orders not yet paid, in creation order.
func (c *Coordinator) ListActiveOrders() []models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orders.ListActive()
}

// FindOrder returns the order with the given id.
func (c *Coordinator) FindOrder(orderID string) (models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orders.Find(orderID)
}

// DailyReport aggregates paid orders. The date labels the report; paid
// orders are counted regardless of when they were opened. The customers
// served figure is an estimate built from line-entry counts, not
// quantities.
func (c *Coordinator) DailyReport(date string) models.DailyReport {
	c.mu.Lock()
	defer c.mu.Unlock()

	report := models.DailyReport{Date: date}
	for _, order := range c.orders.ListPaid() {
		report.Revenue += order.Total
		report.OrdersCompleted++
		report.CustomersServed += len(order.Lines)
	}
	if report.OrdersCompleted > 0 {
		report.AverageOrderValue = report.Revenue / float64(report.OrdersCompleted)
	}
	return report
}
