package events

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/models"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

func SetupEventsRoutes(app *fiber.App) {
	api := app.Group("/api/events")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetEventsAPI)
	api.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), CreateEventAPI)
	api.Get("/:id", GetEventAPI)
	api.Put("/:id", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), UpdateEventAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteEventAPI)
}
