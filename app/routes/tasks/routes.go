package tasks

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/models"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

func SetupTasksRoutes(app *fiber.App) {
	eventScoped := app.Group("/api/events/:eventId/tasks")
	eventScoped.Use(auth.AuthMiddleware)
	eventScoped.Get("/", GetEventTasksAPI)
	eventScoped.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), CreateTaskAPI)

	app.Put("/api/tasks/:id", auth.AuthMiddleware, UpdateTaskAPI)
}
