package database

import (
	"database/sql"

	"github.com/SoulShadow8326/Arista/app/models"
)

const userSelect = `
	SELECT u.id, u.school_id, u.name, u.email, u.password_hash, u.role,
	       u.created_at, u.updated_at, s.name AS school_name, s.code AS school_code
	FROM users u
	JOIN schools s ON u.school_id = s.id
`

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.SchoolID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.CreatedAt, &u.UpdatedAt, &u.SchoolName, &u.SchoolCode,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByEmail loads a user (joined with its school) for sign-in.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	return scanUser(db.QueryRow(userSelect+` WHERE u.email = $1 ORDER BY u.id LIMIT 1`, email))
}

// GetUserByID loads a user (joined with its school) for request
// authentication. sql.ErrNoRows means the account is gone even if the token
// that referenced it is still cryptographically valid.
func GetUserByID(db *sql.DB, id int) (*models.User, error) {
	return scanUser(db.QueryRow(userSelect+` WHERE u.id = $1`, id))
}

// UserExistsInSchool checks for a duplicate email within one school.
func UserExistsInSchool(db *sql.DB, schoolID int, email string) (bool, error) {
	var id int
	err := db.QueryRow(
		`SELECT id FROM users WHERE school_id = $1 AND email = $2`,
		schoolID, email,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateAdminUser inserts the first admin created at school registration.
func CreateAdminUser(db *sql.DB, schoolID int, name, email, passwordHash string) (int, error) {
	var id int
	err := db.QueryRow(
		`INSERT INTO users (school_id, name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		schoolID, name, email, passwordHash, models.RoleAdmin,
	).Scan(&id)
	return id, err
}

// StudentProfile carries the optional roster metadata collected at student
// self-registration. The columns hosting it arrived in a later schema
// generation, so the insert goes through the tolerant accessor.
type StudentProfile struct {
	Grade         string
	Section       string
	GuardianName  string
	GuardianPhone string
	MedicalNotes  string
}

// CreateStudentUser inserts a self-registered student.
func CreateStudentUser(db *sql.DB, schoolID int, name, email, passwordHash string, profile StudentProfile) (int, error) {
	fields := []Field{
		{Column: "school_id", Value: schoolID, Required: true},
		{Column: "name", Value: name, Required: true},
		{Column: "email", Value: email, Required: true},
		{Column: "password_hash", Value: passwordHash, Required: true},
		{Column: "role", Value: models.RoleStudent, Required: true},
		{Column: "grade", Value: profile.Grade},
		{Column: "section", Value: profile.Section},
		{Column: "guardian_name", Value: profile.GuardianName},
		{Column: "guardian_phone", Value: profile.GuardianPhone},
		{Column: "medical_notes", Value: profile.MedicalNotes},
	}
	return InsertTolerant(db, "users", fields)
}
