package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

func SetupReportsRoutes(app *fiber.App) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)
	api.Get("/participants/csv", ExportParticipantsCSVAPI)
	api.Get("/events/csv", ExportEventsCSVAPI)

	app.Get("/api/schedules/:participantId/ics", auth.AuthMiddleware, ExportParticipantScheduleICSAPI)
}
