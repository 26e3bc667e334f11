package announcements

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/models"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

func SetupAnnouncementsRoutes(app *fiber.App) {
	app.Post("/api/announcements",
		auth.AuthMiddleware,
		auth.RequireRoles(models.RoleAdmin, models.RoleTeacher),
		CreateAnnouncementAPI)

	eventScoped := app.Group("/api/events/:eventId/announcements")
	eventScoped.Use(auth.AuthMiddleware)
	eventScoped.Get("/", GetEventAnnouncementsAPI)
	eventScoped.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), CreateEventAnnouncementAPI)
}
