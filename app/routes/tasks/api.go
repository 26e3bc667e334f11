package tasks

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/models"
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

func GetEventTasksAPI(c *fiber.Ctx) error {
	eventID, err := eventForCaller(c)
	if err != nil {
		return err
	}
	tasks, err := database.GetEventTasks(config.GetDB(), eventID)
	if err != nil {
		return err
	}
	return c.JSON(tasks)
}

func CreateTaskAPI(c *fiber.Ctx) error {
	eventID, err := eventForCaller(c)
	if err != nil {
		return err
	}

	type CreateRequest struct {
		Title          string `json:"title" validate:"required"`
		Description    string `json:"description"`
		Status         string `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
		DueAt          string `json:"due_at"`
		AssigneeUserID *int   `json:"assignee_user_id"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}
	if req.Status == "" {
		req.Status = models.TaskPending
	}

	var dueAt interface{}
	if req.DueAt != "" {
		t, err := validation.ParseTime("due_at", req.DueAt)
		if err != nil {
			return err
		}
		dueAt = t
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	taskID, err := database.CreateTask(db, database.NewTask{
		SchoolID:       user.SchoolID,
		EventID:        eventID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		DueAt:          dueAt,
		AssigneeUserID: req.AssigneeUserID,
		CreatedBy:      user.ID,
	})
	if err != nil {
		return err
	}
	database.LogAudit(db, user.ID, "create", "task", taskID, nil)

	return c.JSON(fiber.Map{"id": taskID, "message": "Task created"})
}

func UpdateTaskAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid task ID")
	}

	type UpdateRequest struct {
		Title          *string `json:"title"`
		Description    *string `json:"description"`
		Status         *string `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
		DueAt          *string `json:"due_at"`
		AssigneeUserID *int    `json:"assignee_user_id"`
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

	if _, err := database.GetTask(db, user.SchoolID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "Task not found")
		}
		return err
	}

	var fields []database.Field
	if req.Title != nil {
		fields = append(fields, database.Field{Column: "title", Value: *req.Title})
	}
	if req.Description != nil {
		fields = append(fields, database.Field{Column: "description", Value: *req.Description})
	}
	if req.Status != nil {
		fields = append(fields, database.Field{Column: "status", Value: *req.Status})
	}
	if req.AssigneeUserID != nil {
		fields = append(fields, database.Field{Column: "assignee_user_id", Value: *req.AssigneeUserID})
	}
	if req.DueAt != nil {
		t, err := validation.ParseTime("due_at", *req.DueAt)
		if err != nil {
			return err
		}
		fields = append(fields, database.Field{Column: "due_at", Aliases: []string{"due_date"}, Value: t})
	}

	if len(fields) > 0 {
		if err := database.UpdateTask(db, user.SchoolID, id, fields); err != nil {
			return err
		}
		database.LogAudit(db, user.ID, "update", "task", id, nil)
	}

	return c.JSON(fiber.Map{"message": "Task updated"})
}
