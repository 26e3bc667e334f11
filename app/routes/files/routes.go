package files

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

func SetupFilesRoutes(app *fiber.App) {
	api := app.Group("/api/files")
	api.Use(auth.AuthMiddleware)
	api.Post("/upload", UploadFileAPI)
	api.Get("/:id", DownloadFileAPI)
}
