package participants

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/models"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

func SetupParticipantsRoutes(app *fiber.App) {
	api := app.Group("/api/participants")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetParticipantsAPI)
	api.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher, models.RoleStudentCoordinator), CreateParticipantAPI)
	api.Get("/:id", GetParticipantAPI)
	api.Put("/:id", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher, models.RoleStudentCoordinator), UpdateParticipantAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteParticipantAPI)
}
