package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// ApiClient handles requests to the operations tracker API.
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewApiClient creates a new API client. The server address comes from
// MAITRED_API_URL, defaulting to localhost.
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("MAITRED_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
	}
}

// CheckHealth checks if the API is up and running.
func (c *ApiClient) CheckHealth() (bool, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("API health check failed with status code: %d", resp.StatusCode)
	}

	return true, nil
}

// MenuItem represents a dish on the menu.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	PrepTime    int      `json:"prep_time_minutes"`
	Available   bool     `json:"available"`
	Allergens   []string `json:"allergens,omitempty"`
}

// MenuSection groups the available items of one category.
type MenuSection struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}

// Table represents a dining table.
type Table struct {
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Location string `json:"location"`
	Features string `json:"features,omitempty"`
	Occupied bool   `json:"occupied"`
}

// OrderLine is one item entry on an order.
type OrderLine struct {
	ItemID    string  `json:"item_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order represents a customer order.
type Order struct {
	ID            string      `json:"id"`
	TableNumber   int         `json:"table_number"`
	Lines         []OrderLine `json:"lines"`
	Status        string      `json:"status"`
	Total         float64     `json:"total"`
	CustomerCount int         `json:"customer_count"`
	Instructions  string      `json:"instructions,omitempty"`
}

// Reservation represents a confirmed booking.
type Reservation struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customer_name"`
	Phone           string `json:"phone"`
	PartySize       int    `json:"party_size"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	TableNumber     int    `json:"table_number"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// DailyReport summarizes paid orders.
type DailyReport struct {
	Date              string  `json:"date"`
	Revenue           float64 `json:"revenue"`
	OrdersCompleted   int     `json:"orders_completed"`
	CustomersServed   int     `json:"customers_served_estimate"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// apiError mirrors the server's error payload.
type apiError struct {
	Error string `json:"error"`
}

func (c *ApiClient) get(path string, out interface{}) error {
	resp, err := c.httpClient.Get(c.BaseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decode(resp, out)
}

func (c *ApiClient) send(method, path string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(method, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decode(resp, out)
}

func decode(resp *http.Response, out interface{}) error {
	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("request failed with status code: %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetMenu fetches the available menu grouped by category.
func (c *ApiClient) GetMenu() ([]MenuSection, error) {
	var sections []MenuSection
	err := c.get("/api/v1/menu", &sections)
	return sections, err
}

// GetFreeTables fetches the unoccupied tables.
func (c *ApiClient) GetFreeTables() ([]Table, error) {
	var tables []Table
	err := c.get("/api/v1/tables/free", &tables)
	return tables, err
}

// GetActiveOrders fetches all orders not yet paid.
func (c *ApiClient) GetActiveOrders() ([]Order, error) {
	var orders []Order
	err := c.get("/api/v1/orders/active", &orders)
	return orders, err
}

// GetReservations fetches the reservations for a date.
func (c *ApiClient) GetReservations(date string) ([]Reservation, error) {
	var reservations []Reservation
	err := c.get("/api/v1/reservations?date="+date, &reservations)
	return reservations, err
}

// GetDailyReport fetches the report for a date.
func (c *ApiClient) GetDailyReport(date string) (DailyReport, error) {
	var report DailyReport
	err := c.get("/api/v1/reports/daily?date="+date, &report)
	return report, err
}

// CreateReservation requests a table for a party.
func (c *ApiClient) CreateReservation(name, phone string, partySize int, date, timeSlot string) (Reservation, error) {
	body := map[string]interface{}{
		"customer_name": name,
		"phone":         phone,
		"party_size":    partySize,
		"date":          date,
		"time":          timeSlot,
	}
	var res Reservation
	err := c.send("POST", "/api/v1/reservations", body, &res)
	return res, err
}

// OpenOrder opens an order against an occupied table.
func (c *ApiClient) OpenOrder(tableNumber, customerCount int) (Order, error) {
	body := map[string]interface{}{
		"table_number":   tableNumber,
		"customer_count": customerCount,
	}
	var order Order
	err := c.send("POST", "/api/v1/orders", body, &order)
	return order, err
}

// AddOrderLine appends an item to an order.
func (c *ApiClient) AddOrderLine(orderID, itemID string, quantity int) (Order, error) {
	body := map[string]interface{}{
		"item_id":  itemID,
		"quantity": quantity,
	}
	var order Order
	err := c.send("POST", "/api/v1/orders/"+orderID+"/lines", body, &order)
	return order, err
}

// AdvanceStatus moves an order to a new status and returns the previous one.
func (c *ApiClient) AdvanceStatus(orderID, status string) (string, error) {
	body := map[string]interface{}{"status": status}
	var resp struct {
		PreviousStatus string `json:"previous_status"`
	}
	err := c.send("PUT", "/api/v1/orders/"+orderID+"/status", body, &resp)
	return resp.PreviousStatus, err
}
