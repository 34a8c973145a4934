package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maitred/internal/catalog"
	"maitred/internal/coordinator"
	"maitred/internal/floorplan"
	"maitred/internal/models"
	"maitred/internal/monitoring"
	"maitred/internal/orderbook"
	"maitred/internal/reservations"
)

func newTestServer(t *testing.T) (*Server, *EventHub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.New()
	items := []models.MenuItem{
		{ID: "APP001", Name: "Bruschetta", Category: "Appetizer", Price: 8.99, Available: true},
		{ID: "MAIN001", Name: "Ribeye Steak", Category: "Main Course", Price: 29.99, Available: true},
	}
	for _, item := range items {
		require.NoError(t, cat.AddItem(item))
	}

	floor, err := floorplan.New([]models.Table{
		{Number: 1, Capacity: 2, Location: "Window"},
		{Number: 2, Capacity: 4, Location: "Main Hall"},
		{Number: 3, Capacity: 6, Location: "Private Room"},
	})
	require.NoError(t, err)

	metrics := monitoring.NewMetrics()
	hub := NewEventHub()
	ops := coordinator.New(cat, floor, orderbook.New(), reservations.New(), hub, metrics)
	return NewServer(ops, hub, metrics), hub
}

func do(t *testing.T, server *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer(t)

	w := do(t, server, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListMenu(t *testing.T) {
	server, _ := newTestServer(t)

	w := do(t, server, "GET", "/api/v1/menu", "")
	require.Equal(t, http.StatusOK, w.Code)

	var sections []catalog.MenuSection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sections))
	require.Len(t, sections, 2)
	assert.Equal(t, "Appetizer", sections[0].Category)
	assert.Equal(t, "Main Course", sections[1].Category)
}

func TestMenuAdministration(t *testing.T) {
	server, _ := newTestServer(t)

	w := do(t, server, "POST", "/api/v1/menu",
		`{"id":"DES001","name":"Cheesecake","category":"Dessert","price":7.99,"available":true}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate id is refused.
	w = do(t, server, "POST", "/api/v1/menu",
		`{"id":"DES001","name":"Cheesecake","category":"Dessert","price":7.99,"available":true}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, server, "PUT", "/api/v1/menu/DES001/price", `{"price":9.49}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, server, "PUT", "/api/v1/menu/DES001/price", `{"price":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, server, "PUT", "/api/v1/menu/DES001/availability", `{"available":false}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, server, "PUT", "/api/v1/menu/NOPE01/availability", `{"available":true}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReservationEndpoints(t *testing.T) {
	server, _ := newTestServer(t)

	w := do(t, server, "POST", "/api/v1/reservations",
		`{"customer_name":"Ana","phone":"555-1212","party_size":3,"date":"2024-05-01","time":"19:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var res models.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "RES2001", res.ID)
	assert.Equal(t, 2, res.TableNumber)

	// No table seats a party of 10.
	w = do(t, server, "POST", "/api/v1/reservations",
		`{"customer_name":"Ben","phone":"555-3434","party_size":10,"date":"2024-05-01","time":"20:00"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, server, "PUT", "/api/v1/reservations/"+res.ID+"/requests", `{"text":"window seat"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, server, "GET", "/api/v1/reservations?date=2024-05-01", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "window seat", listed[0].SpecialRequests)
}

func TestOrderLifecycle(t *testing.T) {
	server, _ := newTestServer(t)

	// Opening against a free table is refused.
	w := do(t, server, "POST", "/api/v1/orders", `{"table_number":2,"customer_count":2}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Seat a party on table 2, then open the order.
	w = do(t, server, "POST", "/api/v1/reservations",
		`{"customer_name":"Ana","phone":"555-1212","party_size":3,"date":"2024-05-01","time":"19:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, server, "POST", "/api/v1/orders", `{"table_number":2,"customer_count":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "ORD1001", order.ID)

	w = do(t, server, "POST", "/api/v1/orders/"+order.ID+"/lines", `{"item_id":"MAIN001","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.InDelta(t, 59.98, order.Total, 1e-9)

	w = do(t, server, "POST", "/api/v1/orders/"+order.ID+"/lines", `{"item_id":"GHOST1","quantity":1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, server, "PUT", "/api/v1/orders/"+order.ID+"/instructions", `{"text":"medium rare"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, server, "GET", "/api/v1/orders/active", "")
	require.Equal(t, http.StatusOK, w.Code)
	var active []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &active))
	require.Len(t, active, 1)

	w = do(t, server, "PUT", "/api/v1/orders/"+order.ID+"/status", `{"status":"refunded"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, server, "PUT", "/api/v1/orders/"+order.ID+"/status", `{"status":"paid"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var statusResp struct {
		PreviousStatus string `json:"previous_status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &statusResp))
	assert.Equal(t, "pending", statusResp.PreviousStatus)

	// Payment freed table 2.
	w = do(t, server, "GET", "/api/v1/tables/free", "")
	require.Equal(t, http.StatusOK, w.Code)
	var free []models.Table
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &free))
	numbers := make([]int, 0, len(free))
	for _, table := range free {
		numbers = append(numbers, table.Number)
	}
	assert.Equal(t, []int{1, 2, 3}, numbers)

	w = do(t, server, "GET", "/api/v1/orders/active", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &active))
	assert.Empty(t, active)

	w = do(t, server, "GET", "/api/v1/reports/daily?date=2024-05-01", "")
	require.Equal(t, http.StatusOK, w.Code)
	var report models.DailyReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 1, report.OrdersCompleted)
	assert.InDelta(t, 59.98, report.Revenue, 1e-9)
	assert.Equal(t, 1, report.CustomersServed)
	assert.InDelta(t, 59.98, report.AverageOrderValue, 1e-9)

	w = do(t, server, "GET", "/api/v1/orders/ORD9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatusEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	w := do(t, server, "GET", "/api/v1/status", "")
	require.Equal(t, http.StatusOK, w.Code)

	var snapshot map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Contains(t, snapshot, "uptime_seconds")
}

func TestOpenOrderRejectsBadCustomerCount(t *testing.T) {
	server, _ := newTestServer(t)

	w := do(t, server, "POST", "/api/v1/reservations",
		`{"customer_name":"Ana","phone":"555-1212","party_size":2,"date":"2024-05-01","time":"19:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, server, "POST", "/api/v1/orders", fmt.Sprintf(`{"table_number":%d,"customer_count":0}`, 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
