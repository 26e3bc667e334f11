package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SoulShadow8326/Arista/app/models"
)

// EventFilters represents filtering options for event listings.
type EventFilters struct {
	Status   string
	Category string
	Search   string
	Limit    int
	Offset   int
}

const eventColumns = `id, school_id, title, description, category, start_at, end_at,
	location, host, notes, registration_link, max_participants, status,
	created_by, created_at, updated_at`

func scanEvent(scan func(dest ...interface{}) error) (*models.Event, error) {
	e := &models.Event{}
	err := scan(
		&e.ID, &e.SchoolID, &e.Title, &e.Description, &e.Category,
		&e.StartAt, &e.EndAt, &e.Location, &e.Host, &e.Notes,
		&e.RegistrationLink, &e.MaxParticipants, &e.Status, &e.CreatedBy,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// GetEvents returns one page of a school's events plus the total count. The
// ordering column changed name across schema generations, so the query is
// retried across the known aliases.
func GetEvents(db *sql.DB, schoolID int, f EventFilters) ([]models.Event, int, error) {
	where := "WHERE school_id = $1"
	args := []interface{}{schoolID}

	if f.Status != "" {
		args = append(args, f.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}

	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM events "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(args, f.Limit, f.Offset)
	queryFmt := fmt.Sprintf(
		"SELECT "+eventColumns+" FROM events %s ORDER BY %%s DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2,
	)
	rows, err := QueryOrderFallback(db, queryFmt, []string{"start_at", "start_time"}, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, *e)
	}
	return events, total, rows.Err()
}

// GetUpcomingEvents returns the next few events for dashboard views.
func GetUpcomingEvents(db *sql.DB, schoolID, limit int) ([]models.Event, error) {
	rows, err := QueryOrderFallback(db,
		"SELECT "+eventColumns+" FROM events WHERE school_id = $1 AND %[1]s > NOW() ORDER BY %[1]s LIMIT $2",
		[]string{"start_at", "start_time"}, schoolID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// NewEvent carries the validated fields for an event insert.
type NewEvent struct {
	SchoolID         int
	Title            string
	Description      string
	Category         string
	StartAt          time.Time
	EndAt            time.Time
	Location         string
	Host             string
	Notes            string
	RegistrationLink string
	CreatedBy        int
}

// CreateEvent writes an event through the tolerant accessor: the title and
// time columns fall back to their legacy names when the canonical ones are
// absent, and each logical field lands in at most one physical column.
func CreateEvent(db *sql.DB, e NewEvent) (int, error) {
	fields := []Field{
		{Column: "school_id", Value: e.SchoolID, Required: true},
		{Column: "title", Aliases: []string{"name"}, Value: e.Title, Required: true},
		{Column: "description", Value: e.Description},
		{Column: "category", Value: e.Category},
		{Column: "start_at", Aliases: []string{"start_time"}, Value: e.StartAt, Required: true},
		{Column: "end_at", Aliases: []string{"end_time"}, Value: e.EndAt, Required: true},
		{Column: "location", Value: e.Location},
		{Column: "host", Value: e.Host},
		{Column: "notes", Value: e.Notes},
		{Column: "registration_link", Value: e.RegistrationLink},
		{Column: "created_by", Value: e.CreatedBy},
	}
	return InsertTolerant(db, "events", fields)
}

// GetEvent loads one event scoped to the caller's school.
func GetEvent(db *sql.DB, schoolID, id int) (*models.Event, error) {
	row := db.QueryRow(
		"SELECT "+eventColumns+" FROM events WHERE id = $1 AND school_id = $2",
		id, schoolID,
	)
	return scanEvent(row.Scan)
}

// UpdateEvent applies the provided fields through the tolerant accessor.
func UpdateEvent(db *sql.DB, schoolID, id int, fields []Field) error {
	return UpdateTolerant(db, "events", fields, "id = ? AND school_id = ?", id, schoolID)
}

// DeleteEvent removes an event; dependents go with it via FK cascades.
func DeleteEvent(db *sql.DB, schoolID, id int) error {
	_, err := db.Exec(`DELETE FROM events WHERE id = $1 AND school_id = $2`, id, schoolID)
	return err
}

// EventInSchool verifies tenant ownership of an event id.
func EventInSchool(db *sql.DB, schoolID, eventID int) (bool, error) {
	var id int
	err := db.QueryRow(
		`SELECT id FROM events WHERE id = $1 AND school_id = $2`,
		eventID, schoolID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
