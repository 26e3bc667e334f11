package schedules

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
	"github.com/SoulShadow8326/Arista/app/validation"
)

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

func GetEventSchedulesAPI(c *fiber.Ctx) error {
	eventID, err := eventForCaller(c)
	if err != nil {
		return err
	}
	schedules, err := database.GetEventSchedules(config.GetDB(), eventID)
	if err != nil {
		return err
	}
	return c.JSON(schedules)
}

func CreateScheduleAPI(c *fiber.Ctx) error {
	eventID, err := eventForCaller(c)
	if err != nil {
		return err
	}

	type CreateRequest struct {
		Title   string `json:"title" validate:"required"`
		Venue   string `json:"venue" validate:"required"`
		StartAt string `json:"start_at" validate:"required"`
		EndAt   string `json:"end_at" validate:"required"`
		Notes   string `json:"notes"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	startAt, err := validation.ParseTime("start_at", req.StartAt)
	if err != nil {
		return err
	}
	endAt, err := validation.ParseTime("end_at", req.EndAt)
	if err != nil {
		return err
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	scheduleID, err := database.CreateSchedule(db, eventID, req.Title, req.Venue, startAt, endAt, req.Notes)
	if err != nil {
		return err
	}
	database.LogAudit(db, user.ID, "create", "schedule", scheduleID, nil)

	return c.JSON(fiber.Map{"id": scheduleID, "message": "Schedule created"})
}

func GetEventLogisticsAPI(c *fiber.Ctx) error {
	eventID, err := eventForCaller(c)
	if err != nil {
		return err
	}
	items, err := database.GetEventLogistics(config.GetDB(), eventID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func CreateLogisticsAPI(c *fiber.Ctx) error {
	eventID, err := eventForCaller(c)
	if err != nil {
		return err
	}

	type CreateRequest struct {
		Type    string                 `json:"type" validate:"required"`
		Details map[string]interface{} `json:"details" validate:"required"`
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

	logisticsID, err := database.CreateLogistics(db, eventID, req.Type, req.Details)
	if err != nil {
		return err
	}
	database.LogAudit(db, user.ID, "create", "logistics", logisticsID, nil)

	return c.JSON(fiber.Map{"id": logisticsID, "message": "Logistics created"})
}
