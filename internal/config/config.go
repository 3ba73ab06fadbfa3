package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/unimarket-dev/unimarket/pkg/database"
)

// Config holds all runtime settings, loaded from the environment with
// an optional .env file for local development.
type Config struct {
	ServiceName   string
	Environment   string
	LogLevel      string
	HTTPPort      string
	JWTSecret     string
	TokenTTL      time.Duration
	UploadDir     string
	UploadPrefix  string
	CORSOrigins   []string
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration
	KafkaBrokers  []string

	Database database.Config
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName:   getEnv("OTEL_SERVICE_NAME", "marketplace"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTL:      getDuration("TOKEN_TTL", 30*time.Minute),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		UploadPrefix:  getEnv("UPLOAD_URL_PREFIX", "/uploads"),
		CORSOrigins:   getList("CORS_ORIGINS", []string{"*"}),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CacheTTL:      getDuration("CACHE_TTL", time.Minute),
		KafkaBrokers:  getList("KAFKA_BROKERS", nil),

		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "marketplacedb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
