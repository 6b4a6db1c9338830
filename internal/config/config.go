package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/engine"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds everything the server reads from the environment.
type Config struct {
	ServerPort   string
	DataFilePath string
	CORSOrigins  string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	S3BucketName string
	S3Region     string

	Engine engine.Config
}

// LoadConfig reads configuration from the environment, after loading .env
// when one is present. Engine business constants all have production
// defaults and only need env entries when they change.
func LoadConfig() (*Config, error) {
	// A missing .env is fine in production; env vars come from the host.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		DataFilePath: getEnv("DATA_FILE_PATH", "data/mustaqar.json"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:3000"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Mustaqar Studios"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		S3BucketName: os.Getenv("S3_BUCKET_NAME"),
		S3Region:     getEnv("S3_REGION", "me-south-1"),

		Engine: engine.DefaultConfig(),
	}

	var err error
	if cfg.Engine.MinBookingDays, err = getEnvInt("MIN_BOOKING_DAYS", cfg.Engine.MinBookingDays); err != nil {
		return nil, err
	}
	if cfg.Engine.CleaningBufferDays, err = getEnvInt("CLEANING_BUFFER_DAYS", cfg.Engine.CleaningBufferDays); err != nil {
		return nil, err
	}
	if cfg.Engine.CleaningMonthlyThresholdDays, err = getEnvInt("CLEANING_MONTHLY_THRESHOLD_DAYS", cfg.Engine.CleaningMonthlyThresholdDays); err != nil {
		return nil, err
	}
	if cfg.Engine.CleaningWeeklyRate, err = getEnvDecimal("CLEANING_WEEKLY_RATE", cfg.Engine.CleaningWeeklyRate); err != nil {
		return nil, err
	}
	if cfg.Engine.CleaningMonthlyRate, err = getEnvDecimal("CLEANING_MONTHLY_RATE", cfg.Engine.CleaningMonthlyRate); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EmailConfigured reports whether SMTP settings are complete enough to
// send mail.
func (c *Config) EmailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPFromEmail != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func getEnvDecimal(key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a number, got %q", key, v)
	}
	return d, nil
}
