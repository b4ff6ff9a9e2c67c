package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv   string
	HTTPPort string

	JWTSecret string
	TokenTTL  time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	MaxRequestBodySize int64

	NotifyQueueSize   int
	NotifySendTimeout time.Duration
}

func Load() *Config {
	return &Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		HTTPPort: getEnv("PORT", "5000"),

		JWTSecret: getEnv("JWT_SECRET", "loadlab-secret-key"),
		TokenTTL:  24 * time.Hour,

		SMTPHost:     getEnv("SMTP_HOST", "smtp.ethereal.email"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", "test@loadlab.com"),
		SMTPPassword: getEnv("SMTP_PASS", "password"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@loadlab.com"),

		RequestTimeout:     30 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		MaxRequestBodySize: 1 << 20, // 1MB

		NotifyQueueSize:   getEnvInt("NOTIFY_QUEUE_SIZE", 256),
		NotifySendTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
