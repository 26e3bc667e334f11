package teams

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/models"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
	"github.com/SoulShadow8326/Arista/app/validation"
)

// eventForCaller resolves the :eventId param and verifies it belongs to the
// caller's school. Cross-tenant ids come back as 404.
func eventForCaller(c *fiber.Ctx) (int, error) {
	eventID, err := strconv.Atoi(c.Params("eventId"))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid event ID")
	}
	user := auth.CurrentUser(c)
	ok, err := database.EventInSchool(config.GetDB(), user.SchoolID, eventID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fiber.NewError(fiber.StatusNotFound, "Event not found")
	}
	return eventID, nil
}

func teamForCaller(c *fiber.Ctx) (int, error) {
	teamID, err := strconv.Atoi(c.Params("teamId"))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid team ID")
	}
	user := auth.CurrentUser(c)
	ok, err := database.TeamInSchool(config.GetDB(), user.SchoolID, teamID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fiber.NewError(fiber.StatusNotFound, "Team not found")
	}
	return teamID, nil
}

func GetEventTeamsAPI(c *fiber.Ctx) error {
	eventID, err := eventForCaller(c)
	if err != nil {
		return err
	}
	teams, err := database.GetEventTeams(config.GetDB(), eventID)
	if err != nil {
		return err
	}
	return c.JSON(teams)
}

func CreateTeamAPI(c *fiber.Ctx) error {
	eventID, err := eventForCaller(c)
	if err != nil {
		return err
	}

	type CreateRequest struct {
		Name        string `json:"name" validate:"required"`
		CoachUserID *int   `json:"coach_user_id"`
		MaxSize     int    `json:"max_size"`
		Notes       string `json:"notes"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}
	if req.MaxSize <= 0 {
		req.MaxSize = 10
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	teamID, err := database.CreateTeam(db, eventID, req.Name, req.CoachUserID, req.MaxSize, req.Notes, user.ID)
	if err != nil {
		return err
	}
	database.LogAudit(db, user.ID, "create", "team", teamID, nil)

	return c.JSON(fiber.Map{"id": teamID, "message": "Team created"})
}

func GetTeamMembersAPI(c *fiber.Ctx) error {
	teamID, err := teamForCaller(c)
	if err != nil {
		return err
	}
	members, err := database.GetTeamMembers(config.GetDB(), teamID)
	if err != nil {
		return err
	}
	return c.JSON(members)
}

func AddTeamMemberAPI(c *fiber.Ctx) error {
	teamID, err := teamForCaller(c)
	if err != nil {
		return err
	}

	type AddRequest struct {
		ParticipantID int    `json:"participant_id" validate:"required"`
		Role          string `json:"role" validate:"omitempty,oneof=leader member"`
	}

	var req AddRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}
	if req.Role == "" {
		req.Role = models.TeamMember
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	inSchool, err := database.ParticipantInSchool(db, user.SchoolID, req.ParticipantID)
	if err != nil {
		return err
	}
	if !inSchool {
		return fiber.NewError(fiber.StatusNotFound, "Participant not found")
	}

	already, err := database.IsTeamMember(db, teamID, req.ParticipantID)
	if err != nil {
		return err
	}
	if already {
		return fiber.NewError(fiber.StatusBadRequest, "Participant already in team")
	}

	if err := database.AddTeamMember(db, teamID, req.ParticipantID, req.Role); err != nil {
		return err
	}
	database.LogAudit(db, user.ID, "add_member", "team", teamID,
		map[string]interface{}{"participant_id": req.ParticipantID})

	return c.JSON(fiber.Map{"message": "Member added to team"})
}

func RemoveTeamMemberAPI(c *fiber.Ctx) error {
	teamID, err := teamForCaller(c)
	if err != nil {
		return err
	}
	participantID, err := strconv.Atoi(c.Params("participantId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid participant ID")
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	if err := database.RemoveTeamMember(db, teamID, participantID); err != nil {
		return err
	}
	database.LogAudit(db, user.ID, "remove_member", "team", teamID,
		map[string]interface{}{"participant_id": participantID})

	return c.JSON(fiber.Map{"message": "Member removed from team"})
}
