package database

import (
	"database/sql"

	"github.com/SoulShadow8326/Arista/app/models"
)

// GetEventTeams lists an event's teams with the coach name joined in.
func GetEventTeams(db *sql.DB, eventID int) ([]models.Team, error) {
	query := `
		SELECT t.id, t.event_id, t.name, t.coach_user_id, u.name AS coach_name,
		       t.max_size, t.notes, t.created_by, t.created_at, t.updated_at
		FROM teams t
		LEFT JOIN users u ON t.coach_user_id = u.id
		WHERE t.event_id = $1
		ORDER BY t.name
	`
	rows, err := db.Query(query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(
			&t.ID, &t.EventID, &t.Name, &t.CoachUserID, &t.CoachName,
			&t.MaxSize, &t.Notes, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// CreateTeam inserts a team for an event.
func CreateTeam(db *sql.DB, eventID int, name string, coachUserID *int, maxSize int, notes string, createdBy int) (int, error) {
	var id int
	err := db.QueryRow(
		`INSERT INTO teams (event_id, name, coach_user_id, max_size, notes, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		eventID, name, coachUserID, maxSize, notes, createdBy,
	).Scan(&id)
	return id, err
}

// TeamInSchool verifies tenant ownership of a team id via its event.
func TeamInSchool(db *sql.DB, schoolID, teamID int) (bool, error) {
	var id int
	err := db.QueryRow(
		`SELECT t.id FROM teams t JOIN events e ON t.event_id = e.id
		 WHERE t.id = $1 AND e.school_id = $2`,
		teamID, schoolID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetTeamMembers lists a team's roster with each member's team role.
func GetTeamMembers(db *sql.DB, teamID int) ([]models.TeamRosterEntry, error) {
	query := `
		SELECT p.id, COALESCE(p.school_id, 0), p.first_name, p.last_name,
		       COALESCE(p.grade, ''), COALESCE(p.section, ''), p.email, p.phone,
		       COALESCE(p.guardian_name, ''), COALESCE(p.guardian_phone, ''),
		       p.medical_notes, p.created_at, p.updated_at, tm.role
		FROM participants p
		JOIN team_members tm ON p.id = tm.participant_id
		WHERE tm.team_id = $1
		ORDER BY p.last_name, p.first_name
	`
	rows, err := db.Query(query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.TeamRosterEntry
	for rows.Next() {
		var m models.TeamRosterEntry
		if err := rows.Scan(
			&m.ID, &m.SchoolID, &m.FirstName, &m.LastName, &m.Grade, &m.Section,
			&m.Email, &m.Phone, &m.GuardianName, &m.GuardianPhone,
			&m.MedicalNotes, &m.CreatedAt, &m.UpdatedAt, &m.Role,
		); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// IsTeamMember reports whether a participant already belongs to a team.
func IsTeamMember(db *sql.DB, teamID, participantID int) (bool, error) {
	var one int
	err := db.QueryRow(
		`SELECT 1 FROM team_members WHERE team_id = $1 AND participant_id = $2`,
		teamID, participantID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// AddTeamMember inserts a membership row.
func AddTeamMember(db *sql.DB, teamID, participantID int, role string) error {
	_, err := db.Exec(
		`INSERT INTO team_members (team_id, participant_id, role) VALUES ($1, $2, $3)`,
		teamID, participantID, role,
	)
	return err
}

// RemoveTeamMember deletes a membership row.
func RemoveTeamMember(db *sql.DB, teamID, participantID int) error {
	_, err := db.Exec(
		`DELETE FROM team_members WHERE team_id = $1 AND participant_id = $2`,
		teamID, participantID,
	)
	return err
}

// GetParticipantTeams lists the teams a roster entry belongs to, with the
// event title joined in for dashboard views.
func GetParticipantTeams(db *sql.DB, schoolID, participantID int) ([]models.Team, error) {
	query := `
		SELECT t.id, t.event_id, t.name, t.coach_user_id, u.name AS coach_name,
		       t.max_size, t.notes, t.created_by, t.created_at, t.updated_at
		FROM teams t
		JOIN events e ON t.event_id = e.id
		JOIN team_members tm ON t.id = tm.team_id
		LEFT JOIN users u ON t.coach_user_id = u.id
		WHERE tm.participant_id = $1 AND e.school_id = $2
	`
	rows, err := db.Query(query, participantID, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(
			&t.ID, &t.EventID, &t.Name, &t.CoachUserID, &t.CoachName,
			&t.MaxSize, &t.Notes, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
