package files

import (
	"database/sql"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/models"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

const maxFileSize = 10 * 1024 * 1024

var allowedMimeTypes = map[string]bool{
	"image/jpeg":               true,
	"image/png":                true,
	"image/gif":                true,
	"application/pdf":          true,
	"text/csv":                 true,
	"application/vnd.ms-excel": true,
}

// validateUpload rejects oversized or disallowed files. It runs before
// anything touches the disk.
func validateUpload(file *multipart.FileHeader) error {
	if file.Size > maxFileSize {
		return fiber.NewError(fiber.StatusBadRequest, "File too large (max 10MB)")
	}
	if !allowedMimeTypes[file.Header.Get("Content-Type")] {
		return fiber.NewError(fiber.StatusBadRequest, "File type not allowed")
	}
	return nil
}

func UploadFileAPI(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	if err := validateUpload(file); err != nil {
		return err
	}

	user := auth.CurrentUser(c)
	db := config.GetDB()

	var eventID *int
	if v := c.FormValue("event_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid event ID")
		}
		ok, err := database.EventInSchool(db, user.SchoolID, id)
		if err != nil {
			return err
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		eventID = &id
	}

	ownerType := c.FormValue("owner_type")
	if ownerType == "" {
		ownerType = "event"
	}
	ownerID, _ := strconv.Atoi(c.FormValue("owner_id"))

	safeName := fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), filepath.Base(file.Filename))
	storedPath := filepath.Join(config.AppConfig.UploadDir, safeName)

	if err := c.SaveFile(file, storedPath); err != nil {
		return err
	}

	record := &models.File{
		SchoolID:   user.SchoolID,
		EventID:    eventID,
		OwnerType:  ownerType,
		OwnerID:    ownerID,
		Filename:   file.Filename,
		Mime:       file.Header.Get("Content-Type"),
		Size:       file.Size,
		Path:       storedPath,
		UploadedBy: &user.ID,
	}
	if err := database.CreateFile(db, record); err != nil {
		// The row is the source of truth; drop the orphaned blob.
		os.Remove(storedPath)
		return err
	}

	database.LogAudit(db, user.ID, "upload", "file", record.ID, nil)

	return c.JSON(fiber.Map{
		"id":       record.ID,
		"filename": record.Filename,
		"message":  "File uploaded",
	})
}

func DownloadFileAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid file ID")
	}

	user := auth.CurrentUser(c)
	record, err := database.GetFile(config.GetDB(), user.SchoolID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "File not found")
		}
		return err
	}

	if _, err := os.Stat(record.Path); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "File not found on disk")
	}

	c.Set("Content-Type", record.Mime)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", record.Filename))
	return c.SendFile(record.Path)
}
