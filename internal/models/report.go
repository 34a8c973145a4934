package models

// DailyReport summarizes paid orders for an operating day. The customers
// served figure is an estimate derived from line-entry counts, not a true
// headcount.
type DailyReport struct {
	Date              string  `json:"date"`
	Revenue           float64 `json:"revenue"`
	OrdersCompleted   int     `json:"orders_completed"`
	CustomersServed   int     `json:"customers_served_estimate"`
	AverageOrderValue float64 `json:"average_order_value"`
}
