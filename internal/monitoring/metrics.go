package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects operational counters for the tracker. Each instance
// owns its own registry so tests can run side by side.
type Metrics struct {
	registry *prometheus.Registry

	ordersOpened   prometheus.Counter
	ordersPaid     prometheus.Counter
	revenue        prometheus.Counter
	reservations   prometheus.Counter
	occupiedTables prometheus.Gauge

	startTime time.Time
}

// NewMetrics creates a metrics collector with all collectors registered.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		ordersOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_opened_total",
			Help: "Orders opened against tables",
		}),
		ordersPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_paid_total",
			Help: "Orders that reached the paid status",
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "revenue_total",
			Help: "Revenue from paid orders",
		}),
		reservations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reservations_total",
			Help: "Reservations confirmed",
		}),
		occupiedTables: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tables_occupied",
			Help: "Tables currently occupied",
		}),
		startTime: time.Now(),
	}

	registry.MustRegister(m.ordersOpened, m.ordersPaid, m.revenue, m.reservations, m.occupiedTables)
	return m
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordOrderOpened counts a newly opened order.
func (m *Metrics) RecordOrderOpened() {
	m.ordersOpened.Inc()
}

// RecordOrderPaid counts a completed order and its revenue.
func (m *Metrics) RecordOrderPaid(total float64) {
	m.ordersPaid.Inc()
	m.revenue.Add(total)
}

// RecordReservation counts a confirmed reservation.
func (m *Metrics) RecordReservation() {
	m.reservations.Inc()
}

// SetOccupiedTables records the current table occupancy.
func (m *Metrics) SetOccupiedTables(n int) {
	m.occupiedTables.Set(float64(n))
}

// Snapshot returns a plain status view for the API's status endpoint.
func (m *Metrics) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"uptime_seconds": time.Since(m.startTime).Seconds(),
	}
}
