package config

import (
	"os"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/joho/godotenv"

	"movie-catalog/internal/logging"
)

// Storage drivers.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort    string
	GinMode       string
	MongoURI      string
	MongoDatabase string
	RedisURI      string
	JWTSecret     string
	JWTExpiry     time.Duration

	LogLevel  string
	LogFormat string

	CORSOrigin string

	StorageDriver string
	StorageDir    string
	MaxUploadSize int64

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	ginMode := getEnv("GIN_MODE", "debug")
	defaultFormat := "json"
	if ginMode == "debug" {
		defaultFormat = "console"
	}

	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		GinMode:       ginMode,
		MongoURI:      getEnvRequired("MONGO_URI"),
		MongoDatabase: getEnvRequired("MONGO_DATABASE"),
		RedisURI:      getEnv("REDIS_URI", "localhost:6379"),
		JWTSecret:     getEnvRequired("JWT_SECRET"),
		JWTExpiry:     parseDuration(getEnv("JWT_EXPIRY", "24h")),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", defaultFormat),
		CORSOrigin:    getEnv("CORS_ORIGIN", "*"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageLocal)),
		StorageDir:    getEnv("STORAGE_DIR", "static"),
		MaxUploadSize: parseSize(getEnv("MAX_UPLOAD_SIZE", "10MB")),
		S3Endpoint:    getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:   getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:   getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:      getEnv("S3_BUCKET", "movie-catalog"),
		S3UseSSL:      getEnv("S3_USE_SSL", "false") == "true",
	}

	if cfg.StorageDriver != StorageLocal && cfg.StorageDriver != StorageS3 {
		logging.Fatal().Str("driver", cfg.StorageDriver).Msg("STORAGE_DRIVER must be local or s3")
	}

	return cfg
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		logging.Fatal().Str("key", key).Msg("Required environment variable is not set")
	}
	return value
}

// parseDuration parses a duration string, exits on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		logging.Fatal().Str("value", s).Msg("Invalid duration format")
	}
	return d
}

// parseSize parses a human readable size such as "10MB", exits on error
func parseSize(s string) int64 {
	size, err := units.FromHumanSize(s)
	if err != nil || size <= 0 {
		logging.Fatal().Str("value", s).Msg("Invalid size format")
	}
	return size
}
