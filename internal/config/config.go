package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is built once at startup and passed by value to whatever needs it.
type Config struct {
	AppEnv            string
	Addr              string
	DatabaseDSN       string
	JwtSecret         string
	JwtExpiryHours    int
	AdminEmail        string
	AdminPassword     string
	AllowedOriginsRaw string
	ContactMaxPerHour int
	SmtpHost          string
	SmtpPort          int
	SmtpUser          string
	SmtpPass          string
	SmtpFrom          string
	ContactNotifyTo   string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Addr:              getEnv("APP_ADDR", ":8080"),
		DatabaseDSN:       os.Getenv("DATABASE_DSN"),
		JwtSecret:         os.Getenv("JWT_SECRET"),
		JwtExpiryHours:    getEnvInt("JWT_EXPIRY_HOURS", 24),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AllowedOriginsRaw: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		ContactMaxPerHour: getEnvInt("CONTACT_MAX_PER_HOUR", 5),
		SmtpHost:          os.Getenv("SMTP_HOST"),
		SmtpPort:          getEnvInt("SMTP_PORT", 587),
		SmtpUser:          os.Getenv("SMTP_USER"),
		SmtpPass:          os.Getenv("SMTP_PASS"),
		SmtpFrom:          os.Getenv("SMTP_FROM"),
		ContactNotifyTo:   os.Getenv("CONTACT_NOTIFY_TO"),
	}

	missing := []string{}
	if cfg.DatabaseDSN == "" {
		missing = append(missing, "DATABASE_DSN")
	}
	if cfg.JwtSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return cfg, errors.New("missing env: " + strings.Join(missing, ", "))
	}

	return cfg, nil
}

// Production reports whether the server runs with production error redaction.
func (c Config) Production() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// AllowedOrigins splits the comma-separated ALLOWED_ORIGINS value.
func (c Config) AllowedOrigins() []string {
	origins := []string{}
	for _, origin := range strings.Split(c.AllowedOriginsRaw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
