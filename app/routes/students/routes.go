package students

import "github.com/gofiber/fiber/v2"

func SetupStudentsRoutes(app *fiber.App) {
	app.Post("/api/students/register", RegisterStudentAPI)
}
