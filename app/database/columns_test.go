package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsert(t *testing.T) {
	t.Run("prefers canonical column over alias", func(t *testing.T) {
		cols := map[string]bool{"title": true, "name": true, "school_id": true}
		query, args, err := BuildInsert("events", cols, []Field{
			{Column: "school_id", Value: 1, Required: true},
			{Column: "title", Aliases: []string{"name"}, Value: "Sports Day", Required: true},
		})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO events (school_id, title) VALUES ($1, $2) RETURNING id", query)
		assert.Equal(t, []interface{}{1, "Sports Day"}, args)
	})

	t.Run("falls back to alias when canonical is missing", func(t *testing.T) {
		cols := map[string]bool{"name": true, "school_id": true}
		query, args, err := BuildInsert("events", cols, []Field{
			{Column: "school_id", Value: 1, Required: true},
			{Column: "title", Aliases: []string{"name"}, Value: "Sports Day", Required: true},
		})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO events (school_id, name) VALUES ($1, $2) RETURNING id", query)
		assert.Equal(t, []interface{}{1, "Sports Day"}, args)
	})

	t.Run("writes at most one column per field", func(t *testing.T) {
		cols := map[string]bool{"title": true, "name": true}
		query, _, err := BuildInsert("events", cols, []Field{
			{Column: "title", Aliases: []string{"name"}, Value: "Sports Day", Required: true},
		})
		require.NoError(t, err)
		assert.NotContains(t, query, "name")
	})

	t.Run("drops optional fields with no candidate column", func(t *testing.T) {
		cols := map[string]bool{"title": true}
		query, args, err := BuildInsert("events", cols, []Field{
			{Column: "title", Value: "Sports Day", Required: true},
			{Column: "registration_link", Value: "https://example.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO events (title) VALUES ($1) RETURNING id", query)
		assert.Len(t, args, 1)
	})

	t.Run("fails when a required field has no candidate", func(t *testing.T) {
		cols := map[string]bool{"name": true}
		_, _, err := BuildInsert("events", cols, []Field{
			{Column: "start_at", Aliases: []string{"start_time"}, Value: "2026-09-01T09:00:00Z", Required: true},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoColumns)
	})

	t.Run("fails when every field is dropped", func(t *testing.T) {
		cols := map[string]bool{"id": true}
		_, _, err := BuildInsert("events", cols, []Field{
			{Column: "host", Value: "Mr. Okello"},
			{Column: "notes", Value: "bring water"},
		})
		assert.ErrorIs(t, err, ErrNoColumns)
	})

	t.Run("is stable across repeated builds", func(t *testing.T) {
		cols := map[string]bool{"title": true, "body": true}
		fields := []Field{
			{Column: "title", Value: "Notice", Required: true},
			{Column: "body", Aliases: []string{"content"}, Value: "hello", Required: true},
		}
		first, _, err := BuildInsert("announcements", cols, fields)
		require.NoError(t, err)
		second, _, err := BuildInsert("announcements", cols, fields)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestBuildUpdate(t *testing.T) {
	t.Run("numbers where placeholders after set arguments", func(t *testing.T) {
		cols := map[string]bool{"title": true, "host": true}
		query, args, err := BuildUpdate("events", cols, []Field{
			{Column: "title", Value: "Swim Gala"},
			{Column: "host", Value: "Ms. Nambi"},
		}, "id = ? AND school_id = ?", 7, 3)
		require.NoError(t, err)
		assert.Equal(t, "UPDATE events SET title = $1, host = $2, updated_at = NOW() WHERE id = $3 AND school_id = $4", query)
		assert.Equal(t, []interface{}{"Swim Gala", "Ms. Nambi", 7, 3}, args)
	})

	t.Run("renumbers where placeholders when a field is dropped", func(t *testing.T) {
		cols := map[string]bool{"title": true}
		query, args, err := BuildUpdate("events", cols, []Field{
			{Column: "title", Value: "Swim Gala"},
			{Column: "registration_link", Value: "https://example.com"},
		}, "id = ? AND school_id = ?", 7, 3)
		require.NoError(t, err)
		assert.Equal(t, "UPDATE events SET title = $1, updated_at = NOW() WHERE id = $2 AND school_id = $3", query)
		assert.Equal(t, []interface{}{"Swim Gala", 7, 3}, args)
	})

	t.Run("uses alias column in the set clause", func(t *testing.T) {
		cols := map[string]bool{"due_date": true}
		query, _, err := BuildUpdate("tasks", cols, []Field{
			{Column: "due_at", Aliases: []string{"due_date"}, Value: "2026-09-01"},
		}, "id = ?", 4)
		require.NoError(t, err)
		assert.Contains(t, query, "due_date = $1")
	})

	t.Run("numbers placeholders inside a subquery condition", func(t *testing.T) {
		cols := map[string]bool{"status": true}
		query, args, err := BuildUpdate("tasks", cols, []Field{
			{Column: "status", Value: "completed"},
		}, "id = ? AND (school_id = ? OR event_id IN (SELECT id FROM events WHERE school_id = ?))", 4, 2, 2)
		require.NoError(t, err)
		assert.Equal(t,
			"UPDATE tasks SET status = $1, updated_at = NOW() WHERE id = $2 AND (school_id = $3 OR event_id IN (SELECT id FROM events WHERE school_id = $4))",
			query)
		assert.Equal(t, []interface{}{"completed", 4, 2, 2}, args)
	})

	t.Run("fails when nothing survives the column probe", func(t *testing.T) {
		cols := map[string]bool{"id": true}
		_, _, err := BuildUpdate("tasks", cols, []Field{
			{Column: "due_at", Aliases: []string{"due_date"}, Value: "2026-09-01"},
		}, "id = ?", 4)
		assert.ErrorIs(t, err, ErrNoColumns)
	})
}
