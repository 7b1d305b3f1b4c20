package config_test

import (
	"testing"

	"github.com/felixgeelhaar/almanac/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.DefaultDayStartHour, cfg.DayStartHour)
	assert.Equal(t, config.DefaultDayEndHour, cfg.DayEndHour)
	assert.Equal(t, config.DefaultSlotHeight, cfg.SlotHeight)
	assert.Equal(t, config.DefaultDurationMin, cfg.DefaultDurationMin)
	assert.Equal(t, config.DefaultFallbackColor, cfg.FallbackColor)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ALMANAC_DAY_START_HOUR", "8")
	t.Setenv("ALMANAC_DAY_END_HOUR", "18")
	t.Setenv("ALMANAC_SLOT_HEIGHT", "48.5")
	t.Setenv("ALMANAC_DEFAULT_DURATION_MIN", "30")
	t.Setenv("ALMANAC_FALLBACK_COLOR", "#112233")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 8, cfg.DayStartHour)
	assert.Equal(t, 18, cfg.DayEndHour)
	assert.Equal(t, 48.5, cfg.SlotHeight)
	assert.Equal(t, 30, cfg.DefaultDurationMin)
	assert.Equal(t, "#112233", cfg.FallbackColor)
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("ALMANAC_DAY_START_HOUR", "not-a-number")
	t.Setenv("ALMANAC_SLOT_HEIGHT", "tall")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultDayStartHour, cfg.DayStartHour)
	assert.Equal(t, config.DefaultSlotHeight, cfg.SlotHeight)
}
