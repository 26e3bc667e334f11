package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SoulShadow8326/Arista/app/models"
)

// GetEventSchedules lists an event's schedule entries in start order.
func GetEventSchedules(db *sql.DB, eventID int) ([]models.Schedule, error) {
	query := `
		SELECT id, event_id, title, venue, start_at, end_at, notes, created_at, updated_at
		FROM schedules
		WHERE event_id = $1
		ORDER BY start_at
	`
	rows, err := db.Query(query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []models.Schedule
	for rows.Next() {
		var s models.Schedule
		if err := rows.Scan(
			&s.ID, &s.EventID, &s.Title, &s.Venue, &s.StartAt, &s.EndAt,
			&s.Notes, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// CreateSchedule inserts a schedule entry for an event.
func CreateSchedule(db *sql.DB, eventID int, title, venue string, startAt, endAt time.Time, notes string) (int, error) {
	var id int
	err := db.QueryRow(
		`INSERT INTO schedules (event_id, title, venue, start_at, end_at, notes)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		eventID, title, venue, startAt, endAt, notes,
	).Scan(&id)
	return id, err
}

// GetParticipantSchedules collects every schedule entry for the events a
// roster entry is teamed into, with the event title for calendar summaries.
func GetParticipantSchedules(db *sql.DB, schoolID, participantID int) ([]models.Schedule, error) {
	query := `
		SELECT DISTINCT s.id, s.event_id, s.title, s.venue, s.start_at, s.end_at,
		       s.notes, s.created_at, s.updated_at, e.title AS event_title
		FROM schedules s
		JOIN events e ON s.event_id = e.id
		JOIN teams t ON t.event_id = e.id
		JOIN team_members tm ON tm.team_id = t.id
		WHERE tm.participant_id = $1 AND e.school_id = $2
		ORDER BY s.start_at
	`
	rows, err := db.Query(query, participantID, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []models.Schedule
	for rows.Next() {
		var s models.Schedule
		if err := rows.Scan(
			&s.ID, &s.EventID, &s.Title, &s.Venue, &s.StartAt, &s.EndAt,
			&s.Notes, &s.CreatedAt, &s.UpdatedAt, &s.EventTitle,
		); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// GetEventLogistics lists an event's logistics items with the details blob
// decoded.
func GetEventLogistics(db *sql.DB, eventID int) ([]models.Logistics, error) {
	query := `
		SELECT id, event_id, type, details_json, created_at
		FROM logistics
		WHERE event_id = $1
		ORDER BY created_at
	`
	rows, err := db.Query(query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Logistics
	for rows.Next() {
		var l models.Logistics
		var detailsJSON string
		if err := rows.Scan(&l.ID, &l.EventID, &l.Type, &detailsJSON, &l.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(detailsJSON), &l.Details); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// CreateLogistics inserts a logistics item; details are stored as JSON text.
func CreateLogistics(db *sql.DB, eventID int, itemType string, details map[string]interface{}) (int, error) {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return 0, err
	}
	var id int
	err = db.QueryRow(
		`INSERT INTO logistics (event_id, type, details_json) VALUES ($1, $2, $3) RETURNING id`,
		eventID, itemType, string(detailsJSON),
	).Scan(&id)
	return id, err
}
