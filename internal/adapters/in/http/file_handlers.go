package http

import (
	"time"

	"transcription/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const presignExpiry = 15 * time.Minute

// GetDownloadURL handles GET /api/v1/files/:id/download-url. Issues a
// time-limited URL for fetching the artifact stored under the file key.
func (s *Server) GetDownloadURL(c echo.Context) error {
	key := c.Param("id")
	if key == "" {
		return fail(c, errs.NewValueIsRequiredError("id"))
	}

	exists, err := s.storage.Exists(c.Request().Context(), key)
	if err != nil {
		return fail(c, err)
	}
	if !exists {
		return fail(c, errs.NewObjectNotFoundError("file", key))
	}

	url, err := s.storage.PresignGet(c.Request().Context(), key, presignExpiry)
	if err != nil {
		return fail(c, err)
	}

	return okData(c, "OK", map[string]string{"url": url})
}

// GetUploadURL handles POST /api/v1/files/:id/upload-url. Issues a
// time-limited URL for uploading an artifact under the file key.
func (s *Server) GetUploadURL(c echo.Context) error {
	key := c.Param("id")
	if key == "" {
		return fail(c, errs.NewValueIsRequiredError("id"))
	}

	url, err := s.storage.PresignPut(c.Request().Context(), key, presignExpiry)
	if err != nil {
		return fail(c, err)
	}

	return okData(c, "OK", map[string]string{"url": url})
}
