package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config collects every external identity the service needs. It is built once
// in main and passed down; nothing reads the environment after startup.
type Config struct {
	ServerPort string
	BaseURL    string

	SheetsBaseURL     string
	SpreadsheetID     string
	SheetsAccessToken string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	RabbitMQUser string
	RabbitMQPass string
	RabbitMQHost string
	RabbitMQPort string

	EbookPath string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:8080"),

		SheetsBaseURL:     getEnv("SHEETS_BASE_URL", "https://sheets.googleapis.com"),
		SpreadsheetID:     os.Getenv("GOOGLE_SHEETS_ID"),
		SheetsAccessToken: os.Getenv("GOOGLE_SHEETS_ACCESS_TOKEN"),

		MailHost: getEnv("MAIL_HOST", "smtp.gmail.com"),
		MailPort: getEnvInt("MAIL_PORT", 587),
		MailUser: os.Getenv("MAIL_USER"),
		MailPass: os.Getenv("MAIL_PASS"),
		MailFrom: getEnv("MAIL_FROM", os.Getenv("MAIL_USER")),

		RabbitMQUser: getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPass: getEnv("RABBITMQ_PASS", "guest"),
		RabbitMQHost: getEnv("RABBITMQ_HOST", "localhost"),
		RabbitMQPort: getEnv("RABBITMQ_PORT", "5672"),

		EbookPath: os.Getenv("EBOOK_PATH"),
	}
}

// Validate checks the values without which the service cannot take a single
// request. Mail and queue credentials are deliberately not required: the
// notification path is best-effort.
func (c *Config) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("GOOGLE_SHEETS_ID is required")
	}
	if c.SheetsAccessToken == "" {
		return fmt.Errorf("GOOGLE_SHEETS_ACCESS_TOKEN is required")
	}
	return nil
}

func (c *Config) MailConfigured() bool {
	return c.MailUser != "" && c.MailPass != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
