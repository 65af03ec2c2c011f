package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	JWTSecret  string        // Required: HMAC secret for session tokens (min 32 bytes)
	JWTIssuer  string        // Optional: issuer claim for tokens (default: studio-api)
	SessionTTL time.Duration // Optional: session token lifetime (default: 24h)

	DatabaseFile  string        // Optional: path to SQLite database file (default: ./studio.db)
	FrontendURL   string        // Optional: base URL for links embedded in emails (default: http://localhost:3000)
	ResetTokenTTL time.Duration // Optional: password reset link lifetime (default: 10m)

	SMTPHost     string // Optional: SMTP relay host (default: localhost)
	SMTPPort     int    // Optional: SMTP relay port (default: 587)
	SMTPUsername string // Optional: SMTP auth username
	SMTPPassword string // Optional: SMTP auth password
	SMTPFrom     string // Optional: From address on outgoing mail

	AdminName     string // Optional: seeded admin display name
	AdminEmail    string // Optional: seeded admin email; seeding skipped when empty
	AdminPassword string // Optional: seeded admin password

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTIssuer:  getEnvOrDefault("JWT_ISSUER", "studio-api"),
		SessionTTL: getEnvDurationOrDefault("JWT_TTL", 24*time.Hour),

		DatabaseFile:  getEnvOrDefault("DATABASE_FILE", "studio.db"),
		FrontendURL:   getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		ResetTokenTTL: getEnvDurationOrDefault("RESET_TOKEN_TTL", 10*time.Minute),

		SMTPHost:     getEnvOrDefault("SMTP_HOST", "localhost"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getEnvOrDefault("SMTP_FROM", "no-reply@pixelgrove.studio"),

		AdminName:     getEnvOrDefault("ADMIN_NAME", "Admin"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
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

	// Accept duration strings ("1h", "30m", "90s") or bare integer minutes.
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
