package database

import (
	"database/sql"
	"encoding/json"
	"log"

	"github.com/SoulShadow8326/Arista/app/models"
)

// LogAudit appends one audit entry. Failures are logged and swallowed: audit
// writes never abort the operation they describe.
func LogAudit(db *sql.DB, userID int, action, targetType string, targetID int, meta map[string]interface{}) {
	var metaJSON interface{}
	if meta != nil {
		b, err := json.Marshal(meta)
		if err != nil {
			log.Printf("Failed to encode audit metadata: %v", err)
		} else {
			metaJSON = string(b)
		}
	}
	_, err := db.Exec(
		`INSERT INTO audit_log (user_id, action, target_type, target_id, meta_json)
		 VALUES ($1, $2, $3, $4, $5)`,
		userID, action, targetType, targetID, metaJSON,
	)
	if err != nil {
		log.Printf("Failed to write audit entry: %v", err)
	}
}

// GetAuditLog returns one page of audit entries for actors of the given
// school, newest first, plus the total count.
func GetAuditLog(db *sql.DB, schoolID, limit, offset int) ([]models.AuditEntry, int, error) {
	var total int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM audit_log a JOIN users u ON a.user_id = u.id WHERE u.school_id = $1`,
		schoolID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT a.id, a.user_id, u.name AS user_name, a.action, a.target_type,
		       a.target_id, a.meta_json, a.created_at
		FROM audit_log a
		JOIN users u ON a.user_id = u.id
		WHERE u.school_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := db.Query(query, schoolID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.UserName, &e.Action, &e.TargetType,
			&e.TargetID, &e.MetaJSON, &e.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}
