package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// SMTP Configuration (Brevo) - the email-delivery credential set
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string // Verified sender identity
	ContactEmailTo string // Business inbox receiving submissions
	// Site Details
	WhatsAppNumber string
	// Redis/Upstash Configuration (optional shared rate-limit store)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Contact Rate Limiting
	ContactRateLimit  int
	ContactRateWindow time.Duration
	// Outbound email bounded-wait policy
	EmailSendTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", "noreply@fluxtrading.in"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "fluxcapital11@gmail.com"),
		// Site Details
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "+919876543210"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Contact Rate Limiting: 5 submissions per 15 minutes per client
		ContactRateLimit:  getEnvInt("CONTACT_RATE_LIMIT", 5),
		ContactRateWindow: time.Duration(getEnvInt("CONTACT_RATE_WINDOW_MINUTES", 15)) * time.Minute,
		// Email delivery must not hang the handler
		EmailSendTimeout: time.Duration(getEnvInt("EMAIL_SEND_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP credentials missing. Contact form delivery will be unavailable.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting is per-process in-memory only.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
