package schools

import "github.com/gofiber/fiber/v2"

func SetupSchoolsRoutes(app *fiber.App) {
	api := app.Group("/api/schools")
	api.Post("/register", RegisterSchoolAPI)
	api.Get("/validate/:code", ValidateSchoolCodeAPI)
}
