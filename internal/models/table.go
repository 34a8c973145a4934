package models

// Table represents a dining table on the floor. The Occupied flag is the
// single source of truth for whether the table may be handed to a new
// reservation or order.
type Table struct {
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Location string `json:"location"`
	Features string `json:"features,omitempty"`
	Occupied bool   `json:"occupied"`
}
