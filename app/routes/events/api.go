package events

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/validation"

	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

// GetEventsAPI lists the caller's school events with pagination and filters.
func GetEventsAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filters := database.EventFilters{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	events, total, err := database.GetEvents(config.GetDB(), user.SchoolID, filters)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"events": events,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

// CreateEventAPI writes a new event through the schema-tolerant accessor.
func CreateEventAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		Title            string `json:"title" validate:"required"`
		Host             string `json:"host" validate:"required"`
		Location         string `json:"location" validate:"required"`
		StartAt          string `json:"start_at" validate:"required"`
		EndAt            string `json:"end_at" validate:"required"`
		Category         string `json:"category" validate:"required"`
		Description      string `json:"description"`
		Notes            string `json:"notes"`
		RegistrationLink string `json:"registration_link"`
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

	eventID, err := database.CreateEvent(db, database.NewEvent{
		SchoolID:         user.SchoolID,
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		StartAt:          startAt,
		EndAt:            endAt,
		Location:         req.Location,
		Host:             req.Host,
		Notes:            req.Notes,
		RegistrationLink: req.RegistrationLink,
		CreatedBy:        user.ID,
	})
	if err != nil {
		return err
	}

	database.LogAudit(db, user.ID, "create", "event", eventID, nil)

	return c.JSON(fiber.Map{"id": eventID, "message": "Event created"})
}

func GetEventAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid event ID")
	}

	user := auth.CurrentUser(c)
	event, err := database.GetEvent(config.GetDB(), user.SchoolID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return err
	}
	return c.JSON(event)
}

// UpdateEventAPI applies a partial update; absent fields are untouched.
func UpdateEventAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid event ID")
	}

	type UpdateRequest struct {
		Title            *string `json:"title"`
		Host             *string `json:"host"`
		Location         *string `json:"location"`
		StartAt          *string `json:"start_at"`
		EndAt            *string `json:"end_at"`
		Category         *string `json:"category"`
		Status           *string `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
		Description      *string `json:"description"`
		Notes            *string `json:"notes"`
		RegistrationLink *string `json:"registration_link"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	if _, err := database.GetEvent(db, user.SchoolID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return err
	}

	var fields []database.Field
	addField := func(column string, aliases []string, value *string) {
		if value != nil {
			fields = append(fields, database.Field{Column: column, Aliases: aliases, Value: *value})
		}
	}
	addField("title", []string{"name"}, req.Title)
	addField("host", nil, req.Host)
	addField("location", nil, req.Location)
	addField("category", nil, req.Category)
	addField("status", nil, req.Status)
	addField("description", nil, req.Description)
	addField("notes", nil, req.Notes)
	addField("registration_link", nil, req.RegistrationLink)

	if req.StartAt != nil {
		startAt, err := validation.ParseTime("start_at", *req.StartAt)
		if err != nil {
			return err
		}
		fields = append(fields, database.Field{Column: "start_at", Aliases: []string{"start_time"}, Value: startAt})
	}
	if req.EndAt != nil {
		endAt, err := validation.ParseTime("end_at", *req.EndAt)
		if err != nil {
			return err
		}
		fields = append(fields, database.Field{Column: "end_at", Aliases: []string{"end_time"}, Value: endAt})
	}

	if len(fields) > 0 {
		if err := database.UpdateEvent(db, user.SchoolID, id, fields); err != nil {
			return err
		}
		database.LogAudit(db, user.ID, "update", "event", id, nil)
	}

	return c.JSON(fiber.Map{"message": "Event updated"})
}

func DeleteEventAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid event ID")
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	if _, err := database.GetEvent(db, user.SchoolID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return err
	}

	if err := database.DeleteEvent(db, user.SchoolID, id); err != nil {
		return err
	}
	database.LogAudit(db, user.ID, "delete", "event", id, nil)

	return c.JSON(fiber.Map{"message": "Event deleted"})
}
