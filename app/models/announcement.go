package models

import "time"

type Announcement struct {
	ID         int       `json:"id"`
	SchoolID   int       `json:"school_id"`
	EventID    *int      `json:"event_id,omitempty"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CreatedBy  int       `json:"created_by"`
	AuthorName *string   `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
