package database

import (
	"database/sql"

	"github.com/SoulShadow8326/Arista/app/models"
)

// CreateSchool inserts a new school and returns its id.
func CreateSchool(db *sql.DB, s *models.School) error {
	query := `
		INSERT INTO schools (name, code, admin_email, address, phone, website)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at, updated_at
	`
	return db.QueryRow(
		query,
		s.Name, s.Code, s.AdminEmail, s.Address, s.Phone, s.Website,
	).Scan(&s.ID, &s.Status, &s.CreatedAt, &s.UpdatedAt)
}

// SchoolCodeExists reports whether a join code is already registered.
func SchoolCodeExists(db *sql.DB, code string) (bool, error) {
	var id int
	err := db.QueryRow(`SELECT id FROM schools WHERE code = $1`, code).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetActiveSchoolByCode resolves a join code to an active school.
func GetActiveSchoolByCode(db *sql.DB, code string) (*models.School, error) {
	s := &models.School{}
	query := `
		SELECT id, name, code, admin_email, address, phone, website, status, created_at, updated_at
		FROM schools
		WHERE code = $1 AND status = 'active'
	`
	err := db.QueryRow(query, code).Scan(
		&s.ID, &s.Name, &s.Code, &s.AdminEmail, &s.Address, &s.Phone,
		&s.Website, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetSchoolByID loads one school row.
func GetSchoolByID(db *sql.DB, id int) (*models.School, error) {
	s := &models.School{}
	query := `
		SELECT id, name, code, admin_email, address, phone, website, status, created_at, updated_at
		FROM schools
		WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.Name, &s.Code, &s.AdminEmail, &s.Address, &s.Phone,
		&s.Website, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
