package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"maitred/internal/models"
)

// statusFor maps the tracker's error kinds onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrItemUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrDuplicateID),
		errors.Is(err, models.ErrAlreadyOccupied),
		errors.Is(err, models.ErrNoTableAvailable),
		errors.Is(err, models.ErrTableNotOccupied):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// Menu catalog handlers

func (s *Server) ListMenu(c *gin.Context) {
	c.JSON(http.StatusOK, s.ops.ListMenu())
}

func (s *Server) AddMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.ops.AddMenuItem(item); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) SetMenuItemPrice(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.ops.SetMenuItemPrice(c.Param("id"), req.Price); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "price updated"})
}

func (s *Server) SetMenuItemAvailability(c *gin.Context) {
	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.ops.SetMenuItemAvailability(c.Param("id"), *req.Available); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}

// Floor plan handlers

func (s *Server) ListFreeTables(c *gin.Context) {
	c.JSON(http.StatusOK, s.ops.ListFreeTables())
}

// Reservation handlers

func (s *Server) RequestReservation(c *gin.Context) {
	var req struct {
		CustomerName string `json:"customer_name"`
		Phone        string `json:"phone"`
		PartySize    int    `json:"party_size"`
		Date         string `json:"date"`
		Time         string `json:"time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := s.ops.RequestReservation(req.CustomerName, req.Phone, req.PartySize, req.Date, req.Time)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (s *Server) ListReservations(c *gin.Context) {
	c.JSON(http.StatusOK, s.ops.ListReservationsForDate(c.Query("date")))
}

func (s *Server) AttachSpecialRequest(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.ops.AttachSpecialRequest(c.Param("id"), req.Text); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "special requests attached"})
}

// Order handlers

func (s *Server) OpenOrder(c *gin.Context) {
	var req struct {
		TableNumber   int `json:"table_number"`
		CustomerCount int `json:"customer_count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := s.ops.OpenOrderForTable(req.TableNumber, req.CustomerCount)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (s *Server) ListActiveOrders(c *gin.Context) {
	c.JSON(http.StatusOK, s.ops.ListActiveOrders())
}

func (s *Server) GetOrder(c *gin.Context) {
	order, err := s.ops.FindOrder(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) AddOrderLine(c *gin.Context) {
	var req struct {
		ItemID   string `json:"item_id"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := s.ops.AddOrderLine(c.Param("id"), req.ItemID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) AdvanceOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	previous, err := s.ops.AdvanceOrderStatus(c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"previous_status": previous})
}

func (s *Server) SetOrderInstructions(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.ops.SetOrderInstructions(c.Param("id"), req.Text); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "instructions attached"})
}

// Reporting handlers

func (s *Server) DailyReport(c *gin.Context) {
	c.JSON(http.StatusOK, s.ops.DailyReport(c.Query("date")))
}

func (s *Server) Status(c *gin.Context) {
	c.JSON(http.StatusOK, s.metrics.Snapshot())
}
