package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/models"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/school", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), GetSchoolDashboardAPI)
	api.Get("/student", auth.RequireRoles(models.RoleStudent), GetStudentDashboardAPI)
}
