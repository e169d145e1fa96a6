package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL      string
	Port             int
	AllowOverpayment bool // lenient payment policy: excess is absorbed, never refunded
	OverdueInterval  int  // seconds between overdue-bill sweeps
	ShutdownTimeout  int  // seconds
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error in production)
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	// Some hosts hand out postgres:// URLs; the driver wants postgresql://
	if strings.HasPrefix(dbURL, "postgres://") {
		dbURL = "postgresql://" + strings.TrimPrefix(dbURL, "postgres://")
	}

	return &Config{
		DatabaseURL:      dbURL,
		Port:             intEnv("PORT", 8080),
		AllowOverpayment: boolEnv("ALLOW_OVERPAYMENT", false),
		OverdueInterval:  intEnv("OVERDUE_INTERVAL", 3600),
		ShutdownTimeout:  intEnv("SHUTDOWN_TIMEOUT", 30),
	}, nil
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("Warning: invalid %s=%q, using default %d\n", key, raw, fallback)
		return fallback
	}
	return v
}

func boolEnv(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		fmt.Printf("Warning: invalid %s=%q, using default %t\n", key, raw, fallback)
		return fallback
	}
	return v
}
