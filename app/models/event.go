package models

import "time"

type Event struct {
	ID               int       `json:"id"`
	SchoolID         int       `json:"school_id"`
	Title            string    `json:"title"`
	Description      *string   `json:"description,omitempty"`
	Category         *string   `json:"category,omitempty"`
	StartAt          time.Time `json:"start_at"`
	EndAt            time.Time `json:"end_at"`
	Location         *string   `json:"location,omitempty"`
	Host             *string   `json:"host,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	RegistrationLink *string   `json:"registration_link,omitempty"`
	MaxParticipants  *int      `json:"max_participants,omitempty"`
	Status           string    `json:"status"`
	CreatedBy        *int      `json:"created_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
