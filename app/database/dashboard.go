package database

import "database/sql"

// SchoolStats backs the school dashboard counters.
type SchoolStats struct {
	TotalEvents       int `json:"total_events"`
	TotalParticipants int `json:"total_participants"`
	TotalTeams        int `json:"total_teams"`
	PendingTasks      int `json:"pending_tasks"`
}

// GetSchoolStats gathers a school's headline counts.
func GetSchoolStats(db *sql.DB, schoolID int) (*SchoolStats, error) {
	stats := &SchoolStats{}

	if err := db.QueryRow(
		`SELECT COUNT(*) FROM events WHERE school_id = $1`, schoolID,
	).Scan(&stats.TotalEvents); err != nil {
		return nil, err
	}

	// Older schema generations had no participants.school_id; fall back to
	// counting through the events join when the column is missing.
	err := db.QueryRow(
		`SELECT COUNT(*) FROM participants WHERE school_id = $1`, schoolID,
	).Scan(&stats.TotalParticipants)
	if err != nil && isUndefinedColumn(err) {
		err = db.QueryRow(
			`SELECT COUNT(*) FROM participants p JOIN events e ON p.event_id = e.id WHERE e.school_id = $1`,
			schoolID,
		).Scan(&stats.TotalParticipants)
	}
	if err != nil {
		return nil, err
	}

	if err := db.QueryRow(
		`SELECT COUNT(*) FROM teams t JOIN events e ON t.event_id = e.id WHERE e.school_id = $1`,
		schoolID,
	).Scan(&stats.TotalTeams); err != nil {
		return nil, err
	}

	pending, err := CountPendingTasks(db, schoolID)
	if err != nil {
		return nil, err
	}
	stats.PendingTasks = pending

	return stats, nil
}
