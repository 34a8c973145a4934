package models

// Reservation represents a confirmed booking holding a table for a party.
// The table reference is by number only; the floor plan owns the table.
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
