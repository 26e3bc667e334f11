package audit

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/models"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

func SetupAuditRoutes(app *fiber.App) {
	app.Get("/api/audit",
		auth.AuthMiddleware,
		auth.RequireRoles(models.RoleAdmin),
		GetAuditLogAPI)
}
