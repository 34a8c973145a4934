package models

import (
	"fmt"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusCooking OrderStatus = "cooking"
	OrderStatusReady   OrderStatus = "ready"
	OrderStatusServed  OrderStatus = "served"
	OrderStatusPaid    OrderStatus = "paid"
)

// ParseOrderStatus validates a status string arriving from the operator
// interface. Only the value set is checked; transitions between statuses
// are unrestricted.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusCooking, OrderStatusReady, OrderStatusServed, OrderStatusPaid:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unrecognized order status %q: %w", s, ErrInvalidValue)
}

// OrderLine is one (item, quantity) entry recorded against an order. The
// unit price is captured when the line is added; later catalog price
// changes do not touch it.
type OrderLine struct {
	ItemID    string  `json:"item_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order represents a customer order placed at a table.
type Order struct {
	ID            string      `json:"id"`
	TableNumber   int         `json:"table_number"`
	Lines         []OrderLine `json:"lines"`
	CreatedAt     time.Time   `json:"created_at"`
	Status        OrderStatus `json:"status"`
	Total         float64     `json:"total"`
	CustomerCount int         `json:"customer_count"`
	Instructions  string      `json:"instructions,omitempty"`
}
