package database

import (
	"database/sql"

	"github.com/SoulShadow8326/Arista/app/models"
)

const taskColumns = `t.id, t.school_id, t.event_id, t.title, t.description, t.status,
	t.due_at, t.priority, t.assignee_user_id, u.name AS assignee_name,
	t.created_by, t.created_at, t.updated_at`

func scanTask(scan func(dest ...interface{}) error) (*models.Task, error) {
	t := &models.Task{}
	err := scan(
		&t.ID, &t.SchoolID, &t.EventID, &t.Title, &t.Description, &t.Status,
		&t.DueAt, &t.Priority, &t.AssigneeUserID, &t.AssigneeName,
		&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetEventTasks lists an event's tasks ordered by due time, falling back to
// the legacy due column name at runtime.
func GetEventTasks(db *sql.DB, eventID int) ([]models.Task, error) {
	queryFmt := `
		SELECT ` + taskColumns + `
		FROM tasks t
		LEFT JOIN users u ON t.assignee_user_id = u.id
		WHERE t.event_id = $1
		ORDER BY t.%s NULLS LAST
	`
	rows, err := QueryOrderFallback(db, queryFmt, []string{"due_at", "due_date"}, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTasks(rows)
}

// GetPendingTasks lists a school's pending tasks for dashboard views.
func GetPendingTasks(db *sql.DB, schoolID, limit int) ([]models.Task, error) {
	queryFmt := `
		SELECT ` + taskColumns + `
		FROM tasks t
		LEFT JOIN users u ON t.assignee_user_id = u.id
		WHERE t.school_id = $1 AND t.status = 'pending'
		ORDER BY t.%s NULLS LAST
		LIMIT $2
	`
	rows, err := QueryOrderFallback(db, queryFmt, []string{"due_at", "due_date"}, schoolID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTasks(rows)
}

func collectTasks(rows *sql.Rows) ([]models.Task, error) {
	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// NewTask carries the validated fields for a task insert.
type NewTask struct {
	SchoolID       int
	EventID        int
	Title          string
	Description    string
	Status         string
	DueAt          interface{}
	AssigneeUserID *int
	CreatedBy      int
}

// CreateTask writes a task through the tolerant accessor; the due column
// falls back to its legacy name.
func CreateTask(db *sql.DB, t NewTask) (int, error) {
	fields := []Field{
		{Column: "school_id", Value: t.SchoolID},
		{Column: "event_id", Value: t.EventID, Required: true},
		{Column: "title", Value: t.Title, Required: true},
		{Column: "description", Value: t.Description},
		{Column: "status", Value: t.Status},
		{Column: "due_at", Aliases: []string{"due_date"}, Value: t.DueAt},
		{Column: "assignee_user_id", Value: t.AssigneeUserID},
		{Column: "created_by", Value: t.CreatedBy},
	}
	return InsertTolerant(db, "tasks", fields)
}

// GetTask loads one task scoped to the caller's school.
func GetTask(db *sql.DB, schoolID, id int) (*models.Task, error) {
	row := db.QueryRow(`
		SELECT `+taskColumns+`
		FROM tasks t
		LEFT JOIN users u ON t.assignee_user_id = u.id
		LEFT JOIN events e ON t.event_id = e.id
		WHERE t.id = $1 AND (t.school_id = $2 OR e.school_id = $2)
	`, id, schoolID)
	return scanTask(row.Scan)
}

// UpdateTask applies the provided fields through the tolerant accessor. The
// statement itself carries the tenant condition: a task is owned directly via
// school_id or through its event.
func UpdateTask(db *sql.DB, schoolID, id int, fields []Field) error {
	return UpdateTolerant(db, "tasks", fields,
		"id = ? AND (school_id = ? OR event_id IN (SELECT id FROM events WHERE school_id = ?))",
		id, schoolID, schoolID)
}

// CountPendingTasks counts a school's open tasks.
func CountPendingTasks(db *sql.DB, schoolID int) (int, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM tasks WHERE school_id = $1 AND status = 'pending'`,
		schoolID,
	).Scan(&count)
	return count, err
}
