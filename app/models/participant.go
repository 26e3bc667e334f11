package models

import "time"

// Participant is a roster entry for event participation. It carries guardian
// and medical metadata and is not a login identity.
type Participant struct {
	ID            int       `json:"id"`
	SchoolID      int       `json:"school_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Grade         string    `json:"grade"`
	Section       string    `json:"section"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	GuardianName  string    `json:"guardian_name"`
	GuardianPhone string    `json:"guardian_phone"`
	MedicalNotes  *string   `json:"medical_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
