package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds report settings, populated from environment variables.
// Month and threshold act as defaults for the corresponding CLI flags.
type Config struct {
	Month     time.Month
	Threshold float64
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, applying defaults where
// unset. A .env file in the working directory is loaded first if present.
func Load() (*Config, error) {
	// A missing .env file is the normal case, not an error.
	_ = godotenv.Load()

	month, err := parseMonth(envOrDefault("REPORT_MONTH", "8"))
	if err != nil {
		return nil, err
	}

	threshold, err := parseThreshold(envOrDefault("TEMP_THRESHOLD", "33"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Month:     month,
		Threshold: threshold,
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),
	}, nil
}

func parseMonth(s string) (time.Month, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid REPORT_MONTH %q: want 1-12", s)
	}
	return time.Month(n), nil
}

func parseThreshold(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid TEMP_THRESHOLD %q: %w", s, err)
	}
	return v, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
