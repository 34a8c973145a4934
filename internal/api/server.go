package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maitred/internal/coordinator"
	"maitred/internal/monitoring"
)

// Server exposes the coordinator to front-of-house operators over HTTP.
type Server struct {
	router  *gin.Engine
	ops     *coordinator.Coordinator
	hub     *EventHub
	metrics *monitoring.Metrics
}

// NewServer creates the API server and wires up its routes.
func NewServer(ops *coordinator.Coordinator, hub *EventHub, metrics *monitoring.Metrics) *Server {
	s := &Server{
		router:  gin.Default(),
		ops:     ops,
		hub:     hub,
		metrics: metrics,
	}
	s.setupRoutes()
	return s
}

// Router returns the Gin router.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes configures all API endpoints.
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/ws", s.hub.HandleConnection)

	v1 := s.router.Group("/api/v1")
	{
		// Menu catalog
		v1.GET("/menu", s.ListMenu)
		v1.POST("/menu", s.AddMenuItem)
		v1.PUT("/menu/:id/price", s.SetMenuItemPrice)
		v1.PUT("/menu/:id/availability", s.SetMenuItemAvailability)

		// Floor plan
		v1.GET("/tables/free", s.ListFreeTables)

		// Reservations
		v1.POST("/reservations", s.RequestReservation)
		v1.GET("/reservations", s.ListReservations)
		v1.PUT("/reservations/:id/requests", s.AttachSpecialRequest)

		// Orders
		v1.POST("/orders", s.OpenOrder)
		v1.GET("/orders/active", s.ListActiveOrders)
		v1.GET("/orders/:id", s.GetOrder)
		v1.POST("/orders/:id/lines", s.AddOrderLine)
		v1.PUT("/orders/:id/status", s.AdvanceOrderStatus)
		v1.PUT("/orders/:id/instructions", s.SetOrderInstructions)

		// Reporting
		v1.GET("/reports/daily", s.DailyReport)
		v1.GET("/status", s.Status)
	}
}
