package models

import "errors"

// Error kinds reported by the stores and the coordinator. Callers match
// them with errors.Is; the API layer maps each kind to an HTTP status.
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrInvalidValue     = errors.New("invalid value")
	ErrAlreadyOccupied  = errors.New("table already occupied")
	ErrNoTableAvailable = errors.New("no table available")
	ErrTableNotOccupied = errors.New("table not occupied")
	ErrItemUnavailable  = errors.New("item unavailable")
)
