package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/logging"
	"movie-catalog/internal/metrics"
	"movie-catalog/internal/models"
	"movie-catalog/internal/storage"

	"github.com/google/uuid"
)

// allowedExtensions are the image and document types accepted for upload.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".pdf":  true,
	".svg":  true,
	".webp": true,
}

// FileService validates uploads and writes them to the configured storage backend.
type FileService struct {
	storage storage.Storage
}

// NewFileService creates a new FileService.
func NewFileService(storage storage.Storage) *FileService {
	return &FileService{storage: storage}
}

// SaveImage stores the upload under a fresh "<uuid><ext>" name and returns that name.
// The extension is kept as uploaded.
func (s *FileService) SaveImage(ctx context.Context, file *models.Upload) (string, error) {
	ext := filepath.Ext(file.Filename)
	if !allowedExtensions[strings.ToLower(ext)] {
		metrics.RecordUpload("rejected")
		return "", apperrors.ErrUnsupportedFileFormat
	}

	name := uuid.New().String() + ext
	if err := s.storage.PutObject(ctx, name, file.Body, file.ContentType); err != nil {
		metrics.RecordUpload("failed")
		logging.Ctx(ctx).Error().Err(err).Str("file", name).Msg("Failed to store upload")
		return "", fmt.Errorf("%w: %v", apperrors.ErrFileWrite, err)
	}

	metrics.RecordUpload("stored")
	return name, nil
}
