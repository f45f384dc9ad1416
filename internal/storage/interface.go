package storage

import (
	"context"
	"errors"
	"io"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks movie-catalog/internal/storage Storage

// ErrObjectNotFound is returned by GetObject for unknown keys.
var ErrObjectNotFound = errors.New("object not found")

// Storage defines the interface for object storage operations.
type Storage interface {
	// PutObject uploads an object to storage.
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error
	// GetObject opens a stored object. The caller closes the reader.
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
}

// Ensure both backends implement Storage interface
var (
	_ Storage = (*S3Client)(nil)
	_ Storage = (*LocalStorage)(nil)
)
