package participants

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
	"github.com/SoulShadow8326/Arista/app/validation"
)

// GetParticipantsAPI lists the caller's school roster with pagination.
func GetParticipantsAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filters := database.ParticipantFilters{
		Grade:   c.Query("grade"),
		Section: c.Query("section"),
		Search:  c.Query("search"),
		Limit:   limit,
		Offset:  (page - 1) * limit,
	}

	participants, total, err := database.GetParticipants(config.GetDB(), user.SchoolID, filters)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"participants": participants,
		"total":        total,
		"page":         page,
		"pages":        (total + limit - 1) / limit,
	})
}

func CreateParticipantAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		FirstName     string `json:"first_name" validate:"required"`
		LastName      string `json:"last_name" validate:"required"`
		Grade         string `json:"grade" validate:"required"`
		Section       string `json:"section" validate:"required"`
		GuardianName  string `json:"guardian_name" validate:"required"`
		GuardianPhone string `json:"guardian_phone" validate:"required"`
		Email         string `json:"email"`
		Phone         string `json:"phone"`
		MedicalNotes  string `json:"medical_notes"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	participantID, err := database.CreateParticipant(db, database.NewParticipant{
		SchoolID:      user.SchoolID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Grade:         req.Grade,
		Section:       req.Section,
		Email:         req.Email,
		Phone:         req.Phone,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		MedicalNotes:  req.MedicalNotes,
	})
	if err != nil {
		return err
	}

	database.LogAudit(db, user.ID, "create", "participant", participantID, nil)

	return c.JSON(fiber.Map{"id": participantID, "message": "Participant created"})
}

func GetParticipantAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid participant ID")
	}

	user := auth.CurrentUser(c)
	participant, err := database.GetParticipant(config.GetDB(), user.SchoolID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "Participant not found")
		}
		return err
	}
	return c.JSON(participant)
}

func UpdateParticipantAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid participant ID")
	}

	type UpdateRequest struct {
		FirstName     *string `json:"first_name"`
		LastName      *string `json:"last_name"`
		Grade         *string `json:"grade"`
		Section       *string `json:"section"`
		Email         *string `json:"email"`
		Phone         *string `json:"phone"`
		GuardianName  *string `json:"guardian_name"`
		GuardianPhone *string `json:"guardian_phone"`
		MedicalNotes  *string `json:"medical_notes"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	if _, err := database.GetParticipant(db, user.SchoolID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "Participant not found")
		}
		return err
	}

	var fields []database.Field
	addField := func(column string, value *string) {
		if value != nil {
			fields = append(fields, database.Field{Column: column, Value: *value})
		}
	}
	addField("first_name", req.FirstName)
	addField("last_name", req.LastName)
	addField("grade", req.Grade)
	addField("section", req.Section)
	addField("email", req.Email)
	addField("phone", req.Phone)
	addField("guardian_name", req.GuardianName)
	addField("guardian_phone", req.GuardianPhone)
	addField("medical_notes", req.MedicalNotes)

	if len(fields) > 0 {
		if err := database.UpdateParticipant(db, user.SchoolID, id, fields); err != nil {
			return err
		}
		database.LogAudit(db, user.ID, "update", "participant", id, nil)
	}

	return c.JSON(fiber.Map{"message": "Participant updated"})
}

func DeleteParticipantAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid participant ID")
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	if _, err := database.GetParticipant(db, user.SchoolID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "Participant not found")
		}
		return err
	}

	if err := database.DeleteParticipant(db, user.SchoolID, id); err != nil {
		return err
	}
	database.LogAudit(db, user.ID, "delete", "participant", id, nil)

	return c.JSON(fiber.Map{"message": "Participant deleted"})
}
