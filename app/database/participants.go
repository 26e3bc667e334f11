package database

import (
	"database/sql"
	"fmt"

	"github.com/SoulShadow8326/Arista/app/models"
)

// ParticipantFilters represents filtering options for roster listings.
type ParticipantFilters struct {
	Grade   string
	Section string
	Search  string
	Limit   int
	Offset  int
}

const participantColumns = `id, COALESCE(school_id, 0), first_name, last_name,
	COALESCE(grade, ''), COALESCE(section, ''), email, phone,
	COALESCE(guardian_name, ''), COALESCE(guardian_phone, ''),
	medical_notes, created_at, updated_at`

func scanParticipant(scan func(dest ...interface{}) error) (*models.Participant, error) {
	p := &models.Participant{}
	err := scan(
		&p.ID, &p.SchoolID, &p.FirstName, &p.LastName, &p.Grade, &p.Section,
		&p.Email, &p.Phone, &p.GuardianName, &p.GuardianPhone,
		&p.MedicalNotes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetParticipants returns one page of a school's roster plus the total count.
func GetParticipants(db *sql.DB, schoolID int, f ParticipantFilters) ([]models.Participant, int, error) {
	where := "WHERE school_id = $1"
	args := []interface{}{schoolID}

	if f.Grade != "" {
		args = append(args, f.Grade)
		where += fmt.Sprintf(" AND grade = $%d", len(args))
	}
	if f.Section != "" {
		args = append(args, f.Section)
		where += fmt.Sprintf(" AND section = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)",
			len(args), len(args), len(args))
	}

	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM participants "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(
		"SELECT "+participantColumns+" FROM participants %s ORDER BY last_name, first_name LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args),
	)
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		p, err := scanParticipant(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		participants = append(participants, *p)
	}
	return participants, total, rows.Err()
}

// GetAllParticipants returns the full roster for CSV export.
func GetAllParticipants(db *sql.DB, schoolID int) ([]models.Participant, error) {
	rows, err := db.Query(
		"SELECT "+participantColumns+" FROM participants WHERE school_id = $1 ORDER BY last_name, first_name",
		schoolID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		p, err := scanParticipant(rows.Scan)
		if err != nil {
			return nil, err
		}
		participants = append(participants, *p)
	}
	return participants, rows.Err()
}

// NewParticipant carries the validated fields for a roster insert.
type NewParticipant struct {
	SchoolID      int
	FirstName     string
	LastName      string
	Grade         string
	Section       string
	Email         string
	Phone         string
	GuardianName  string
	GuardianPhone string
	MedicalNotes  string
}

// CreateParticipant writes a roster entry through the tolerant accessor. On a
// pre-roster schema generation the name columns do not exist, and the insert
// fails fast instead of producing a malformed statement.
func CreateParticipant(db *sql.DB, p NewParticipant) (int, error) {
	fields := []Field{
		{Column: "school_id", Value: p.SchoolID},
		{Column: "first_name", Value: p.FirstName, Required: true},
		{Column: "last_name", Value: p.LastName, Required: true},
		{Column: "grade", Value: p.Grade},
		{Column: "section", Value: p.Section},
		{Column: "email", Value: p.Email},
		{Column: "phone", Value: p.Phone},
		{Column: "guardian_name", Value: p.GuardianName},
		{Column: "guardian_phone", Value: p.GuardianPhone},
		{Column: "medical_notes", Value: p.MedicalNotes},
	}
	return InsertTolerant(db, "participants", fields)
}

// GetParticipant loads one roster entry scoped to the caller's school.
func GetParticipant(db *sql.DB, schoolID, id int) (*models.Participant, error) {
	row := db.QueryRow(
		"SELECT "+participantColumns+" FROM participants WHERE id = $1 AND school_id = $2",
		id, schoolID,
	)
	return scanParticipant(row.Scan)
}

// GetParticipantByEmail resolves a roster entry from a student account email.
func GetParticipantByEmail(db *sql.DB, schoolID int, email string) (*models.Participant, error) {
	row := db.QueryRow(
		"SELECT "+participantColumns+" FROM participants WHERE school_id = $1 AND email = $2 ORDER BY id LIMIT 1",
		schoolID, email,
	)
	return scanParticipant(row.Scan)
}

// UpdateParticipant applies the provided fields through the tolerant accessor.
func UpdateParticipant(db *sql.DB, schoolID, id int, fields []Field) error {
	return UpdateTolerant(db, "participants", fields, "id = ? AND school_id = ?", id, schoolID)
}

// DeleteParticipant removes a roster entry.
func DeleteParticipant(db *sql.DB, schoolID, id int) error {
	_, err := db.Exec(`DELETE FROM participants WHERE id = $1 AND school_id = $2`, id, schoolID)
	return err
}

// ParticipantInSchool verifies tenant ownership of a roster id.
func ParticipantInSchool(db *sql.DB, schoolID, participantID int) (bool, error) {
	var id int
	err := db.QueryRow(
		`SELECT id FROM participants WHERE id = $1 AND school_id = $2`,
		participantID, schoolID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
