package models

import "time"

type Task struct {
	ID             int        `json:"id"`
	SchoolID       *int       `json:"school_id,omitempty"`
	EventID        *int       `json:"event_id,omitempty"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	Status         string     `json:"status"`
	DueAt          *time.Time `json:"due_at,omitempty"`
	Priority       *string    `json:"priority,omitempty"`
	AssigneeUserID *int       `json:"assignee_user_id,omitempty"`
	AssigneeName   *string    `json:"assignee_name,omitempty"`
	CreatedBy      *int       `json:"created_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
