package teams

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/models"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

func SetupTeamsRoutes(app *fiber.App) {
	eventScoped := app.Group("/api/events/:eventId/teams")
	eventScoped.Use(auth.AuthMiddleware)
	eventScoped.Get("/", GetEventTeamsAPI)
	eventScoped.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), CreateTeamAPI)

	members := app.Group("/api/teams/:teamId/members")
	members.Use(auth.AuthMiddleware)
	members.Get("/", GetTeamMembersAPI)
	members.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), AddTeamMemberAPI)
	members.Delete("/:participantId", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), RemoveTeamMemberAPI)
}
