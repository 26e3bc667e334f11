package reports

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/models"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ExportParticipantsCSVAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	participants, err := database.GetAllParticipants(config.GetDB(), user.SchoolID)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"ID", "First Name", "Last Name", "Grade", "Section", "Email", "Phone", "Guardian Name", "Guardian Phone", "Medical Notes"})
	for _, p := range participants {
		w.Write([]string{
			strconv.Itoa(p.ID), p.FirstName, p.LastName, p.Grade, p.Section,
			deref(p.Email), deref(p.Phone), p.GuardianName, p.GuardianPhone,
			deref(p.MedicalNotes),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename=participants.csv")
	return c.Send(buf.Bytes())
}

func ExportEventsCSVAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	events, _, err := database.GetEvents(config.GetDB(), user.SchoolID, database.EventFilters{
		Limit:  10000,
		Offset: 0,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"ID", "Title", "Host", "Location", "Start Date", "End Date", "Category", "Status", "Description"})
	for _, e := range events {
		w.Write([]string{
			strconv.Itoa(e.ID), e.Title, deref(e.Host), deref(e.Location),
			e.StartAt.Format("2006-01-02 15:04"), e.EndAt.Format("2006-01-02 15:04"),
			deref(e.Category), e.Status, deref(e.Description),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename=events.csv")
	return c.Send(buf.Bytes())
}

func ExportParticipantScheduleICSAPI(c *fiber.Ctx) error {
	participantID, err := strconv.Atoi(c.Params("participantId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid participant ID")
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	ok, err := database.ParticipantInSchool(db, user.SchoolID, participantID)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Participant not found")
	}

	schedules, err := database.GetParticipantSchedules(db, user.SchoolID, participantID)
	if err != nil {
		return err
	}

	c.Set("Content-Type", "text/calendar")
	c.Set("Content-Disposition", "attachment; filename=schedule.ics")
	return c.SendString(BuildICS(schedules))
}

// BuildICS renders one VEVENT per schedule entry with basic local timestamps.
func BuildICS(schedules []models.Schedule) string {
	var b bytes.Buffer
	b.WriteString("BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//Arista//Event Schedule//EN\n")

	for _, s := range schedules {
		b.WriteString("BEGIN:VEVENT\n")
		b.WriteString("UID:" + strconv.Itoa(s.ID) + "@arista.school\n")
		b.WriteString("DTSTART:" + s.StartAt.Format("20060102T150405") + "\n")
		b.WriteString("DTEND:" + s.EndAt.Format("20060102T150405") + "\n")
		b.WriteString("SUMMARY:" + s.Title + " - " + s.EventTitle + "\n")
		b.WriteString("LOCATION:" + s.Venue + "\n")
		if s.Notes != nil && *s.Notes != "" {
			b.WriteString("DESCRIPTION:" + *s.Notes + "\n")
		}
		b.WriteString("END:VEVENT\n")
	}

	b.WriteString("END:VCALENDAR\n")
	return b.String()
}
