package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseDSN   string
	StripeAPIKey  string
	StripeBaseURL string
	Domain        string
	S3Bucket      string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "7000"),
		DatabaseDSN:   getEnv("DATABASE_DSN", ""),
		StripeAPIKey:  getEnv("STRIPE_API_KEY", ""),
		StripeBaseURL: getEnv("STRIPE_BASE_URL", "https://api.stripe.com"),
		Domain:        getEnv("DOMAIN", ""),
		S3Bucket:      getEnv("S3_BUCKET", "shopline"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}
	if c.StripeAPIKey == "" {
		return fmt.Errorf("STRIPE_API_KEY is required")
	}
	if c.Domain == "" {
		return fmt.Errorf("DOMAIN is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
