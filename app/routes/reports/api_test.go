package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoulShadow8326/Arista/app/models"
)

func TestBuildICS(t *testing.T) {
	notes := "bring spikes"
	start := time.Date(2026, 9, 12, 9, 30, 0, 0, time.UTC)

	t.Run("renders one vevent per entry", func(t *testing.T) {
		ics := BuildICS([]models.Schedule{
			{
				ID:         7,
				Title:      "100m Heats",
				Venue:      "Main Track",
				StartAt:    start,
				EndAt:      start.Add(time.Hour),
				Notes:      &notes,
				EventTitle: "Sports Day",
			},
			{
				ID:         8,
				Title:      "Relay Final",
				Venue:      "Main Track",
				StartAt:    start.Add(2 * time.Hour),
				EndAt:      start.Add(3 * time.Hour),
				EventTitle: "Sports Day",
			},
		})

		require.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\n"))
		require.True(t, strings.HasSuffix(ics, "END:VCALENDAR\n"))
		assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"))
		assert.Equal(t, 2, strings.Count(ics, "END:VEVENT"))

		assert.Contains(t, ics, "UID:7@arista.school")
		assert.Contains(t, ics, "DTSTART:20260912T093000")
		assert.Contains(t, ics, "DTEND:20260912T103000")
		assert.Contains(t, ics, "SUMMARY:100m Heats - Sports Day")
		assert.Contains(t, ics, "LOCATION:Main Track")
		assert.Contains(t, ics, "DESCRIPTION:bring spikes")
	})

	t.Run("omits description when notes are empty", func(t *testing.T) {
		empty := ""
		ics := BuildICS([]models.Schedule{
			{ID: 9, Title: "Opening", Venue: "Hall", StartAt: start, EndAt: start, Notes: &empty, EventTitle: "Sports Day"},
		})
		assert.NotContains(t, ics, "DESCRIPTION:")
	})

	t.Run("empty roster still yields a valid calendar", func(t *testing.T) {
		ics := BuildICS(nil)
		assert.Equal(t, "BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//Arista//Event Schedule//EN\nEND:VCALENDAR\n", ics)
	})
}

func TestDeref(t *testing.T) {
	v := "x"
	assert.Equal(t, "x", deref(&v))
	assert.Equal(t, "", deref(nil))
}
