package files

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(size int64, contentType string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "upload.bin",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidateUpload(t *testing.T) {
	t.Run("accepts a small pdf", func(t *testing.T) {
		assert.NoError(t, validateUpload(header(1024, "application/pdf")))
	})

	t.Run("accepts a file at exactly the limit", func(t *testing.T) {
		assert.NoError(t, validateUpload(header(maxFileSize, "image/png")))
	})

	t.Run("rejects an oversized file", func(t *testing.T) {
		err := validateUpload(header(maxFileSize+1, "image/png"))
		require.Error(t, err)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "File too large (max 10MB)", fe.Message)
	})

	t.Run("rejects a disallowed type even when small", func(t *testing.T) {
		err := validateUpload(header(512, "application/x-msdownload"))
		require.Error(t, err)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "File type not allowed", fe.Message)
	})

	t.Run("rejects a missing content type", func(t *testing.T) {
		assert.Error(t, validateUpload(header(512, "")))
	})

	t.Run("size check runs before the type check", func(t *testing.T) {
		err := validateUpload(header(maxFileSize+1, "application/x-msdownload"))
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "File too large (max 10MB)", fe.Message)
	})
}
