package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	TokenSecret string        // Required: symmetric secret for session token signing
	TokenTTL    time.Duration // Session token lifetime (default: 1h)

	DatabaseFile string // Path to the SQLite database file (default: ./userd.db)

	// Super-admin identity seeded by the bootstrap endpoint.
	AdminEmail     string
	AdminUsername  string
	AdminFirstName string
	AdminLastName  string
	AdminPassword  string

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		TokenSecret: os.Getenv("USERD_TOKEN_SECRET"),
		TokenTTL:    getEnvDurationOrDefault("USERD_TOKEN_TTL", time.Hour),

		DatabaseFile: getEnvOrDefault("USERD_DATABASE_FILE", "userd.db"),

		AdminEmail:     getEnvOrDefault("USERD_ADMIN_EMAIL", "admin@localhost"),
		AdminUsername:  getEnvOrDefault("USERD_ADMIN_USERNAME", "superadmin"),
		AdminFirstName: os.Getenv("USERD_ADMIN_FIRST_NAME"),
		AdminLastName:  os.Getenv("USERD_ADMIN_LAST_NAME"),
		AdminPassword:  os.Getenv("USERD_ADMIN_PASSWORD"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	// Integer values are taken as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}
	return defaultValue
}
