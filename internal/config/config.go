package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBConn   string // empty means in-memory store
	LogLevel string

	JWTSecret   string
	TokenExpiry time.Duration

	CBRURL     string
	KeyRateTTL time.Duration

	HMACSecret    string
	EncryptionKey []byte

	SMTPHost     string // empty disables e-mail
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	BookingHoldTTL  time.Duration
	ExpirySchedule  string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// NewConfig loads configuration from environment variables, reading a .env
// file first when one is present.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using process environment")
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		DBConn:   getEnv("DB_CONN", ""),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		TokenExpiry: getEnvAsDuration("TOKEN_EXPIRY", 24*time.Hour),

		CBRURL:     getEnv("CBR_URL", "https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx"),
		KeyRateTTL: getEnvAsDuration("KEY_RATE_TTL", time.Hour),

		HMACSecret: getEnv("HMAC_SECRET", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "stays@finance-sage.local"),

		BookingHoldTTL:  getEnvAsDuration("BOOKING_HOLD_TTL", 30*time.Minute),
		ExpirySchedule:  getEnv("BOOKING_EXPIRY_SCHEDULE", "*/5 * * * *"),
		ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	key, err := hex.DecodeString(getEnv("ENCRYPTION_KEY", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"))
	if err != nil {
		return nil, fmt.Errorf("ENCRYPTION_KEY must be hex: %w", err)
	}
	cfg.EncryptionKey = key

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be a number, got %q", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.HMACSecret == "" {
		return nil, fmt.Errorf("HMAC_SECRET is required")
	}
	if len(cfg.EncryptionKey) != 16 && len(cfg.EncryptionKey) != 24 && len(cfg.EncryptionKey) != 32 {
		return nil, fmt.Errorf("ENCRYPTION_KEY must decode to 16, 24 or 32 bytes, got %d", len(cfg.EncryptionKey))
	}
	if cfg.BookingHoldTTL <= 0 {
		return nil, fmt.Errorf("BOOKING_HOLD_TTL must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logrus.Warnf("Invalid duration for %s: %q, using default %s", key, value, defaultVal)
		return defaultVal
	}
	return d
}
