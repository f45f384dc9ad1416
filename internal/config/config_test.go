package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns environment variable value when set", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_VAR", "custom_value")

		result := getEnv("TEST_CONFIG_VAR", "default_value")

		assert.Equal(t, "custom_value", result)
	})

	t.Run("returns default value when env var not set", func(t *testing.T) {
		result := getEnv("NONEXISTENT_CONFIG_VAR_12345", "default_value")

		assert.Equal(t, "default_value", result)
	})

	t.Run("returns default value when env var is empty string", func(t *testing.T) {
		t.Setenv("EMPTY_CONFIG_VAR", "")

		result := getEnv("EMPTY_CONFIG_VAR", "default_value")

		assert.Equal(t, "default_value", result)
	})
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{"minutes", "15m", 15 * time.Minute},
		{"hours", "24h", 24 * time.Hour},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseDuration(tt.input))
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"megabytes", "10MB", 10_000_000},
		{"kilobytes", "512kB", 512_000},
		{"plain bytes", "2048", 2048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseSize(tt.input))
		})
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "testdb")
	t.Setenv("JWT_SECRET", "test-secret-key")
}

func TestLoad(t *testing.T) {
	t.Run("loads config with all env vars", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SERVER_PORT", "3000")
		t.Setenv("GIN_MODE", "release")
		t.Setenv("REDIS_URI", "redis.example.com:6379")
		t.Setenv("JWT_EXPIRY", "30m")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("STORAGE_DRIVER", "S3")
		t.Setenv("MAX_UPLOAD_SIZE", "5MB")
		t.Setenv("S3_ENDPOINT", "s3.example.com:9000")
		t.Setenv("S3_BUCKET", "posters")
		t.Setenv("S3_USE_SSL", "true")

		cfg := Load()

		require.NotNil(t, cfg)
		assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
		assert.Equal(t, "testdb", cfg.MongoDatabase)
		assert.Equal(t, "test-secret-key", cfg.JWTSecret)
		assert.Equal(t, "3000", cfg.ServerPort)
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, "redis.example.com:6379", cfg.RedisURI)
		assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, StorageS3, cfg.StorageDriver)
		assert.Equal(t, int64(5_000_000), cfg.MaxUploadSize)
		assert.Equal(t, "s3.example.com:9000", cfg.S3Endpoint)
		assert.Equal(t, "posters", cfg.S3Bucket)
		assert.True(t, cfg.S3UseSSL)
	})

	t.Run("uses default values for optional env vars", func(t *testing.T) {
		setRequired(t)

		cfg := Load()

		require.NotNil(t, cfg)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "debug", cfg.GinMode)
		assert.Equal(t, "localhost:6379", cfg.RedisURI)
		assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "console", cfg.LogFormat)
		assert.Equal(t, "*", cfg.CORSOrigin)
		assert.Equal(t, StorageLocal, cfg.StorageDriver)
		assert.Equal(t, "static", cfg.StorageDir)
		assert.Equal(t, int64(10_000_000), cfg.MaxUploadSize)
		assert.Equal(t, "minioadmin", cfg.S3AccessKey)
		assert.False(t, cfg.S3UseSSL)
	})
}
