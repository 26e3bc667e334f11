package schools

import (
	"crypto/rand"
	"database/sql"
	"math/big"

	"github.com/SoulShadow8326/Arista/app/database"
)

const (
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength  = 8
)

// generateSchoolCode draws 8 characters uniformly from the uppercase
// alphanumeric alphabet.
func generateSchoolCode() (string, error) {
	code := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = codeCharset[n.Int64()]
	}
	return string(code), nil
}

// NewSchoolCode generates codes until one is not already registered.
// Uniqueness is never assumed without checking, however unlikely a collision
// is at this entropy.
func NewSchoolCode(db *sql.DB) (string, error) {
	return uniqueCode(func(code string) (bool, error) {
		return database.SchoolCodeExists(db, code)
	})
}

func uniqueCode(exists func(string) (bool, error)) (string, error) {
	for {
		code, err := generateSchoolCode()
		if err != nil {
			return "", err
		}
		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
}
