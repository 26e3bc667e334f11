package models

import "time"

// AuditEntry is an append-only record of a mutating action.
type AuditEntry struct {
	ID         int       `json:"id"`
	UserID     *int      `json:"user_id,omitempty"`
	UserName   *string   `json:"user_name,omitempty"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   *int      `json:"target_id,omitempty"`
	MetaJSON   *string   `json:"meta_json,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
