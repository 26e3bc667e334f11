package models

import "time"

type Schedule struct {
	ID        int       `json:"id"`
	EventID   int       `json:"event_id"`
	Title     string    `json:"title"`
	Venue     string    `json:"venue"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Populated for calendar exports.
	EventTitle string `json:"event_title,omitempty"`
}

// Logistics carries an opaque details blob attached to an event.
type Logistics struct {
	ID        int                    `json:"id"`
	EventID   int                    `json:"event_id"`
	Type      string                 `json:"type"`
	Details   map[string]interface{} `json:"details"`
	CreatedAt time.Time              `json:"created_at"`
}
