package schools

import (
	"database/sql"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoulShadow8326/Arista/app/config"
)

// A code lookup that fails at the storage layer must surface as an error,
// not read as an invalid code.
func TestValidateSchoolCodeStorageFailure(t *testing.T) {
	// A pool pointed at a closed port fails on first use without needing a
	// running database.
	db, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=none dbname=none sslmode=disable connect_timeout=1")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	prev := config.AppConfig
	config.AppConfig = &config.Config{DB: db}
	t.Cleanup(func() { config.AppConfig = prev })

	app := fiber.New()
	SetupSchoolsRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/schools/validate/ABCD1234", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
