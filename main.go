package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/routes/announcements"
	"github.com/SoulShadow8326/Arista/app/routes/audit"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
	"github.com/SoulShadow8326/Arista/app/routes/dashboard"
	"github.com/SoulShadow8326/Arista/app/routes/events"
	"github.com/SoulShadow8326/Arista/app/routes/files"
	"github.com/SoulShadow8326/Arista/app/routes/participants"
	"github.com/SoulShadow8326/Arista/app/routes/reports"
	"github.com/SoulShadow8326/Arista/app/routes/schedules"
	"github.com/SoulShadow8326/Arista/app/routes/schools"
	"github.com/SoulShadow8326/Arista/app/routes/students"
	"github.com/SoulShadow8326/Arista/app/routes/tasks"
	"github.com/SoulShadow8326/Arista/app/routes/teams"
)

// newApp builds the Fiber app. The body limit sits above the 10 MB per-file
// upload cap so multipart framing overhead does not reject a valid upload
// before the handler's own size check runs.
func newApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		BodyLimit:    12 * 1024 * 1024,
	})
}

// errorHandler renders every error as a JSON body with a "detail" field.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code == fiber.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(code).JSON(fiber.Map{"detail": "Internal server error"})
	}
	return c.Status(code).JSON(fiber.Map{"detail": err.Error()})
}

func main() {
	config.Load()
	defer config.GetDB().Close()

	if err := database.EnsureSchema(config.GetDB()); err != nil {
		log.Fatal("Failed to prepare database schema: ", err)
	}

	app := newApp()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSOrigins,
		AllowCredentials: true,
	}))

	auth.SetupAuthRoutes(app)
	schools.SetupSchoolsRoutes(app)
	students.SetupStudentsRoutes(app)
	events.SetupEventsRoutes(app)
	participants.SetupParticipantsRoutes(app)
	teams.SetupTeamsRoutes(app)
	tasks.SetupTasksRoutes(app)
	announcements.SetupAnnouncementsRoutes(app)
	schedules.SetupSchedulesRoutes(app)
	files.SetupFilesRoutes(app)
	reports.SetupReportsRoutes(app)
	audit.SetupAuditRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Println("Server starting on :" + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
