package announcements

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
	"github.com/SoulShadow8326/Arista/app/validation"
)

// CreateAnnouncementAPI posts a school-wide announcement, optionally pinned
// to an event.
func CreateAnnouncementAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		Title   string `json:"title" validate:"required"`
		Body    string `json:"body" validate:"required"`
		EventID *int   `json:"event_id"`
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

	if req.EventID != nil {
		ok, err := database.EventInSchool(db, user.SchoolID, *req.EventID)
		if err != nil {
			return err
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
	}

	announcementID, err := database.CreateAnnouncement(db, user.SchoolID, req.EventID, req.Title, req.Body, user.ID)
	if err != nil {
		return err
	}
	database.LogAudit(db, user.ID, "create", "announcement", announcementID, nil)

	return c.JSON(fiber.Map{"id": announcementID, "message": "Announcement created"})
}

func GetEventAnnouncementsAPI(c *fiber.Ctx) error {
	eventID, err := eventForCaller(c)
	if err != nil {
		return err
	}
	user := auth.CurrentUser(c)
	announcements, err := database.GetEventAnnouncements(config.GetDB(), user.SchoolID, eventID)
	if err != nil {
		return err
	}
	return c.JSON(announcements)
}

func CreateEventAnnouncementAPI(c *fiber.Ctx) error {
	eventID, err := eventForCaller(c)
	if err != nil {
		return err
	}

	type CreateRequest struct {
		Title string `json:"title" validate:"required"`
		Body  string `json:"body" validate:"required"`
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

	announcementID, err := database.CreateAnnouncement(db, user.SchoolID, &eventID, req.Title, req.Body, user.ID)
	if err != nil {
		return err
	}
	database.LogAudit(db, user.ID, "create", "announcement", announcementID, nil)

	return c.JSON(fiber.Map{"id": announcementID, "message": "Announcement created"})
}

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
