package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/models"
	storagemocks "movie-catalog/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFileService_SaveImage(t *testing.T) {
	t.Run("stores allowed files under a generated name", func(t *testing.T) {
		for _, name := range []string{"poster.png", "a.jpg", "b.JPEG", "c.gif", "d.bmp", "e.pdf", "f.svg", "g.webp"} {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				store := storagemocks.NewMockStorage(ctrl)
				store.EXPECT().
					PutObject(gomock.Any(), gomock.Any(), gomock.Any(), "image/png").
					DoAndReturn(func(ctx context.Context, key string, body io.Reader, contentType string) error {
						data, err := io.ReadAll(body)
						require.NoError(t, err)
						assert.Equal(t, "bytes", string(data))
						return nil
					})

				saved, err := NewFileService(store).SaveImage(context.Background(), &models.Upload{
					Filename:    name,
					ContentType: "image/png",
					Body:        strings.NewReader("bytes"),
				})

				require.NoError(t, err)
				assert.NotEqual(t, name, saved)
				assert.Equal(t, filepath.Ext(name), filepath.Ext(saved))
				assert.Len(t, strings.TrimSuffix(saved, filepath.Ext(saved)), 36)
			})
		}
	})

	t.Run("generates a different name every time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := storagemocks.NewMockStorage(ctrl)
		store.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		service := NewFileService(store)

		first, err := service.SaveImage(context.Background(), &models.Upload{Filename: "x.png", Body: strings.NewReader("")})
		require.NoError(t, err)
		second, err := service.SaveImage(context.Background(), &models.Upload{Filename: "x.png", Body: strings.NewReader("")})
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("rejects unsupported extensions", func(t *testing.T) {
		for _, name := range []string{"virus.exe", "noext", "archive.tar.gz", "script.js"} {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				saved, err := NewFileService(storagemocks.NewMockStorage(ctrl)).SaveImage(context.Background(), &models.Upload{
					Filename: name,
					Body:     strings.NewReader("MZ"),
				})

				assert.Empty(t, saved)
				assert.Equal(t, apperrors.ErrUnsupportedFileFormat, err)
			})
		}
	})

	t.Run("reports write failures separately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := storagemocks.NewMockStorage(ctrl)
		store.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := NewFileService(store).SaveImage(context.Background(), &models.Upload{
			Filename: "poster.png",
			Body:     strings.NewReader("png"),
		})

		assert.ErrorIs(t, err, apperrors.ErrFileWrite)
		assert.NotErrorIs(t, err, apperrors.ErrUnsupportedFileFormat)
	})
}
