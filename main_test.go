package main

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Uploads up to the 10 MB per-file cap must reach the handlers; the size
// decision belongs to the upload validation, not the framework's body limit.
func TestBodyLimitAdmitsMaxSizeUploads(t *testing.T) {
	app := newApp()
	app.Post("/upload", func(c *fiber.Ctx) error {
		f, err := c.FormFile("file")
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"size": f.Size})
	})

	t.Run("9 MB body reaches the handler", func(t *testing.T) {
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		part, err := w.CreateFormFile("file", "upload.png")
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte{0xAB}, 9*1024*1024))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest("POST", "/upload", &body)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("grossly oversized body is still refused", func(t *testing.T) {
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		part, err := w.CreateFormFile("file", "upload.png")
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte{0xAB}, 13*1024*1024))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest("POST", "/upload", &body)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	})
}
