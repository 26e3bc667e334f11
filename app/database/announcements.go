package database

import (
	"database/sql"

	"github.com/SoulShadow8326/Arista/app/models"
)

// CreateAnnouncement writes an announcement through the tolerant accessor.
// The body column is named content on older schema generations; the value
// lands in exactly one of the two.
func CreateAnnouncement(db *sql.DB, schoolID int, eventID *int, title, body string, createdBy int) (int, error) {
	fields := []Field{
		{Column: "school_id", Value: schoolID},
		{Column: "event_id", Value: eventID},
		{Column: "title", Value: title, Required: true},
		{Column: "body", Aliases: []string{"content"}, Value: body, Required: true},
		{Column: "created_by", Value: createdBy},
	}
	return InsertTolerant(db, "announcements", fields)
}

// GetEventAnnouncements lists announcements attached to an event together
// with the school-wide ones, newest first.
func GetEventAnnouncements(db *sql.DB, schoolID, eventID int) ([]models.Announcement, error) {
	query := `
		SELECT a.id, a.school_id, a.event_id, a.title, a.body, a.created_by,
		       u.name AS author_name, a.created_at, a.updated_at
		FROM announcements a
		JOIN users u ON a.created_by = u.id
		WHERE a.school_id = $1 AND (a.event_id = $2 OR a.event_id IS NULL)
		ORDER BY a.created_at DESC
	`
	rows, err := db.Query(query, schoolID, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAnnouncements(rows)
}

// GetLatestAnnouncements lists a school's most recent announcements.
func GetLatestAnnouncements(db *sql.DB, schoolID, limit int) ([]models.Announcement, error) {
	query := `
		SELECT a.id, a.school_id, a.event_id, a.title, a.body, a.created_by,
		       u.name AS author_name, a.created_at, a.updated_at
		FROM announcements a
		JOIN users u ON a.created_by = u.id
		WHERE a.school_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2
	`
	rows, err := db.Query(query, schoolID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAnnouncements(rows)
}

func collectAnnouncements(rows *sql.Rows) ([]models.Announcement, error) {
	var announcements []models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(
			&a.ID, &a.SchoolID, &a.EventID, &a.Title, &a.Body, &a.CreatedBy,
			&a.AuthorName, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}
