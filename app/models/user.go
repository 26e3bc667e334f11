package models

import "time"

type User struct {
	ID            int       `json:"id"`
	SchoolID      int       `json:"school_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          string    `json:"role"`
	Grade         *string   `json:"grade,omitempty"`
	Section       *string   `json:"section,omitempty"`
	GuardianName  *string   `json:"guardian_name,omitempty"`
	GuardianPhone *string   `json:"guardian_phone,omitempty"`
	MedicalNotes  *string   `json:"medical_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Populated from the joined schools row on authentication.
	SchoolName string `json:"school_name,omitempty"`
	SchoolCode string `json:"school_code,omitempty"`
}

func (u *User) HasRole(roles ...string) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
