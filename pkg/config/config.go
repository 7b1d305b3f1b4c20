package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// View geometry
	DayStartHour int
	DayEndHour   int
	SlotHeight   float64

	// Items
	DefaultDurationMin int
	FallbackColor      string
}

// Defaults used when the environment leaves a value unset.
const (
	DefaultDayStartHour  = 6
	DefaultDayEndHour    = 22
	DefaultSlotHeight    = 60.0
	DefaultDurationMin   = 60
	DefaultFallbackColor = "#6b7280"
)

// Default returns a configuration with every value at its package default.
func Default() *Config {
	return &Config{
		AppEnv:   "development",
		LogLevel: "info",

		DayStartHour: DefaultDayStartHour,
		DayEndHour:   DefaultDayEndHour,
		SlotHeight:   DefaultSlotHeight,

		DefaultDurationMin: DefaultDurationMin,
		FallbackColor:      DefaultFallbackColor,
	}
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DayStartHour: getIntEnv("ALMANAC_DAY_START_HOUR", DefaultDayStartHour),
		DayEndHour:   getIntEnv("ALMANAC_DAY_END_HOUR", DefaultDayEndHour),
		SlotHeight:   getFloatEnv("ALMANAC_SLOT_HEIGHT", DefaultSlotHeight),

		DefaultDurationMin: getIntEnv("ALMANAC_DEFAULT_DURATION_MIN", DefaultDurationMin),
		FallbackColor:      getEnv("ALMANAC_FALLBACK_COLOR", DefaultFallbackColor),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
