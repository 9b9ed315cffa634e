package models

import "time"

// Alert directions.
const (
	DirectionAbove = "above"
	DirectionBelow = "below"
)

// Alert is a user-defined price level watch. Once triggered it is returned
// to the caller and dropped from the active set; no history is retained.
type Alert struct {
	ID         string    `json:"id"`
	Asset      string    `json:"asset"`
	PriceLevel float64   `json:"price_level"`
	Direction  string    `json:"direction"`
	Triggered  bool      `json:"triggered"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateAlertRequest is the payload for creating an alert.
type CreateAlertRequest struct {
	PriceLevel float64 `json:"price_level" binding:"required,gt=0"`
	Direction  string  `json:"direction" binding:"required,oneof=above below"`
}
