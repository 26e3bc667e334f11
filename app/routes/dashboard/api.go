package dashboard

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/models"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

// GetSchoolDashboardAPI gathers the admin/teacher overview: headline counts,
// next events, latest announcements and open tasks.
func GetSchoolDashboardAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	stats, err := database.GetSchoolStats(db, user.SchoolID)
	if err != nil {
		return err
	}

	upcoming, err := database.GetUpcomingEvents(db, user.SchoolID, 5)
	if err != nil {
		return err
	}

	announcements, err := database.GetLatestAnnouncements(db, user.SchoolID, 5)
	if err != nil {
		return err
	}

	tasks, err := database.GetPendingTasks(db, user.SchoolID, 5)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"stats":           stats,
		"upcoming_events": upcoming,
		"announcements":   announcements,
		"tasks":           tasks,
	})
}

// GetStudentDashboardAPI gathers the student view. Roster entries carry the
// student's email, which is how an account maps onto its participant record.
func GetStudentDashboardAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	teams := []models.Team{}
	participant, err := database.GetParticipantByEmail(db, user.SchoolID, user.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if participant != nil {
		teams, err = database.GetParticipantTeams(db, user.SchoolID, participant.ID)
		if err != nil {
			return err
		}
	}

	upcoming, err := database.GetUpcomingEvents(db, user.SchoolID, 5)
	if err != nil {
		return err
	}

	announcements, err := database.GetLatestAnnouncements(db, user.SchoolID, 5)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"stats": fiber.Map{
			"team_memberships": len(teams),
			"upcoming_events":  len(upcoming),
		},
		"upcoming_events": upcoming,
		"announcements":   announcements,
		"teams":           teams,
	})
}
