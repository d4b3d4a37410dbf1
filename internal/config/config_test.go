package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.August, cfg.Month)
	assert.Equal(t, 33.0, cfg.Threshold)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("REPORT_MONTH", "12")
	t.Setenv("TEMP_THRESHOLD", "28.5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.December, cfg.Month)
	assert.Equal(t, 28.5, cfg.Threshold)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_InvalidMonth(t *testing.T) {
	for _, v := range []string{"0", "13", "August", "-1"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("REPORT_MONTH", v)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "REPORT_MONTH")
		})
	}
}

func TestLoad_InvalidThreshold(t *testing.T) {
	t.Setenv("TEMP_THRESHOLD", "hot")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEMP_THRESHOLD")
}
