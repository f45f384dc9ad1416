package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/models"

	"github.com/gin-gonic/gin"
)

// imageField is the multipart field carrying the optional image.
const imageField = "image"

// formImage opens the optional uploaded image. It returns a nil upload when
// the form has no image. The caller must call the returned close func.
func formImage(c *gin.Context, maxSize int64) (*models.Upload, func(), error) {
	header, err := c.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	if maxSize > 0 && header.Size > maxSize {
		return nil, func() {}, apperrors.ErrFileTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}

	return &models.Upload{
		Filename:    header.Filename,
		ContentType: contentType(header),
		Size:        header.Size,
		Body:        file,
	}, func() { _ = file.Close() }, nil
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
