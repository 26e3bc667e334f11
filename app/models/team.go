package models

import "time"

type Team struct {
	ID          int       `json:"id"`
	EventID     int       `json:"event_id"`
	Name        string    `json:"name"`
	CoachUserID *int      `json:"coach_user_id,omitempty"`
	CoachName   *string   `json:"coach_name,omitempty"`
	MaxSize     int       `json:"max_size"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedBy   *int      `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TeamRosterEntry is a participant together with their role in a team.
type TeamRosterEntry struct {
	Participant
	Role string `json:"role"`
}
