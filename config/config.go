package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultRecaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Recaptcha RecaptchaConfig
	Mail      MailConfig
	App       AppConfig
}

type ServerConfig struct {
	Port                    string
	CORSAllowedOrigins      []string
	SubmissionRatePerMinute int
	SubmissionBurst         int
	// TrustedProxies are the peers whose X-Forwarded-For is believed. Empty
	// means the socket peer is the client.
	TrustedProxies []string
}

type DatabaseConfig struct {
	URL string
}

type RecaptchaConfig struct {
	SecretKey string
	VerifyURL string
	Timeout   time.Duration
}

// MailConfig holds the SMTP transport settings. From doubles as the SMTP
// username, the same way the no-reply mailbox authenticates itself.
type MailConfig struct {
	Host          string
	Port          int
	From          string
	Password      string
	OperatorEmail string
	Timeout       time.Duration
}

type AppConfig struct {
	Environment string
	LogLevel    string
}

// Load reads configuration from the environment, loading a .env file first
// when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:                    getEnv("PORT", "8080"),
			CORSAllowedOrigins:      getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			SubmissionRatePerMinute: getEnvAsInt("SUBMISSION_RATE_PER_MINUTE", 6),
			SubmissionBurst:         getEnvAsInt("SUBMISSION_BURST", 3),
			TrustedProxies:          getEnvAsList("TRUSTED_PROXIES", nil),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Recaptcha: RecaptchaConfig{
			SecretKey: os.Getenv("RECAPTCHA_SECRET_KEY"),
			VerifyURL: getEnv("RECAPTCHA_VERIFY_URL", defaultRecaptchaVerifyURL),
			Timeout:   getEnvAsDuration("RECAPTCHA_TIMEOUT", 10*time.Second),
		},
		Mail: MailConfig{
			Host:          getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:          getEnvAsInt("SMTP_PORT", 587),
			From:          os.Getenv("NO_REPLY_EMAIL"),
			Password:      os.Getenv("NO_REPLY_PASS"),
			OperatorEmail: os.Getenv("SERVICE_PROVIDER_EMAIL"),
			Timeout:       getEnvAsDuration("SMTP_TIMEOUT", 15*time.Second),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"PORT", c.Server.Port},
		{"DATABASE_URL", c.Database.URL},
		{"RECAPTCHA_SECRET_KEY", c.Recaptcha.SecretKey},
		{"NO_REPLY_EMAIL", c.Mail.From},
		{"NO_REPLY_PASS", c.Mail.Password},
		{"SERVICE_PROVIDER_EMAIL", c.Mail.OperatorEmail},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}

	if c.Server.SubmissionRatePerMinute <= 0 {
		return fmt.Errorf("SUBMISSION_RATE_PER_MINUTE must be positive")
	}
	if c.Server.SubmissionBurst <= 0 {
		return fmt.Errorf("SUBMISSION_BURST must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
