package database

import (
	"database/sql"

	"github.com/SoulShadow8326/Arista/app/models"
)

// CreateFile records an uploaded file.
func CreateFile(db *sql.DB, f *models.File) error {
	query := `
		INSERT INTO files (school_id, event_id, owner_type, owner_id, filename, mime, size, path, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	return db.QueryRow(
		query,
		f.SchoolID, f.EventID, f.OwnerType, f.OwnerID, f.Filename,
		f.Mime, f.Size, f.Path, f.UploadedBy,
	).Scan(&f.ID, &f.CreatedAt)
}

// GetFile loads one file record scoped to the caller's school.
func GetFile(db *sql.DB, schoolID, id int) (*models.File, error) {
	f := &models.File{}
	query := `
		SELECT id, school_id, event_id, owner_type, owner_id, filename, mime, size, path, uploaded_by, created_at
		FROM files
		WHERE id = $1 AND school_id = $2
	`
	err := db.QueryRow(query, id, schoolID).Scan(
		&f.ID, &f.SchoolID, &f.EventID, &f.OwnerType, &f.OwnerID,
		&f.Filename, &f.Mime, &f.Size, &f.Path, &f.UploadedBy, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}
