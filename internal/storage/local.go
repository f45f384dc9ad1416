package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStorage keeps objects as files in one directory.
type LocalStorage struct {
	dir string
}

// NewLocalStorage returns a storage rooted at dir. The directory is created on first write.
func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

// PutObject writes body to dir/key, creating dir if needed.
func (l *LocalStorage) PutObject(_ context.Context, key string, body io.Reader, _ string) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}

// GetObject opens dir/key.
func (l *LocalStorage) GetObject(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := l.path(key)
	if err != nil {
		return nil, ErrObjectNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return f, nil
}

// path only accepts plain file names so keys cannot escape the directory.
func (l *LocalStorage) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || filepath.Base(key) != key {
		return "", errors.New("invalid object key")
	}
	return filepath.Join(l.dir, key), nil
}
