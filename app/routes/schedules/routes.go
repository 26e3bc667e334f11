package schedules

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/models"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

func SetupSchedulesRoutes(app *fiber.App) {
	scheduleAPI := app.Group("/api/events/:eventId/schedules")
	scheduleAPI.Use(auth.AuthMiddleware)
	scheduleAPI.Get("/", GetEventSchedulesAPI)
	scheduleAPI.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), CreateScheduleAPI)

	logisticsAPI := app.Group("/api/events/:eventId/logistics")
	logisticsAPI.Use(auth.AuthMiddleware)
	logisticsAPI.Get("/", GetEventLogisticsAPI)
	logisticsAPI.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), CreateLogisticsAPI)
}
