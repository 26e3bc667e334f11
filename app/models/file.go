package models

import "time"

type File struct {
	ID         int       `json:"id"`
	SchoolID   int       `json:"school_id"`
	EventID    *int      `json:"event_id,omitempty"`
	OwnerType  string    `json:"owner_type"`
	OwnerID    int       `json:"owner_id"`
	Filename   string    `json:"filename"`
	Mime       string    `json:"mime"`
	Size       int64     `json:"size"`
	Path       string    `json:"path"`
	UploadedBy *int      `json:"uploaded_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
