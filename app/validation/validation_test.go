package validation

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signinBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestStruct(t *testing.T) {
	t.Run("passes a complete body", func(t *testing.T) {
		assert.NoError(t, Struct(signinBody{Email: "a@b.c", Password: "pw"}))
	})

	t.Run("reports missing fields by json name", func(t *testing.T) {
		err := Struct(signinBody{Email: "a@b.c"})
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "password is required", fe.Message)
	})

	t.Run("reports malformed fields by json name", func(t *testing.T) {
		err := Struct(signinBody{Email: "not-an-email", Password: "pw"})
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "email is invalid", fe.Message)
	})
}

func TestParseTime(t *testing.T) {
	cases := []struct {
		value string
		want  time.Time
	}{
		{"2026-09-12T09:30:00Z", time.Date(2026, 9, 12, 9, 30, 0, 0, time.UTC)},
		{"2026-09-12T09:30:00", time.Date(2026, 9, 12, 9, 30, 0, 0, time.Local)},
		{"2026-09-12T09:30", time.Date(2026, 9, 12, 9, 30, 0, 0, time.Local)},
		{"2026-09-12 09:30:00", time.Date(2026, 9, 12, 9, 30, 0, 0, time.Local)},
	}
	for _, tc := range cases {
		got, err := ParseTime("start_at", tc.value)
		require.NoError(t, err, tc.value)
		assert.True(t, tc.want.Equal(got), "parsing %s", tc.value)
	}

	t.Run("rejects garbage with the field name", func(t *testing.T) {
		_, err := ParseTime("start_at", "next tuesday")
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "start_at is invalid", fe.Message)
	})
}
