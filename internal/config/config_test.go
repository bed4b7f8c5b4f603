package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetAddr())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	settings := cfg.GameSettings()
	assert.Equal(t, 4, settings.MinPlayers)
	assert.Equal(t, 15, settings.MaxPlayers)
	assert.Equal(t, 120*time.Second, settings.NightDuration)
	assert.Equal(t, 180*time.Second, settings.DayDuration)
	assert.Equal(t, 60*time.Second, settings.VotingDuration)
	assert.Equal(t, 3, settings.MafiaRatio)
	assert.Equal(t, 6, settings.DonThreshold)
	assert.Equal(t, 8, settings.LawyerThreshold)
	assert.Equal(t, 10, settings.SecondDoctorThreshold)
	assert.Equal(t, 12, settings.SecondCommissionerThreshold)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("MIN_PLAYERS", "6")
	t.Setenv("NIGHT_DURATION_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.GetAddr())
	assert.True(t, cfg.IsProduction())

	settings := cfg.GameSettings()
	assert.Equal(t, 6, settings.MinPlayers)
	assert.Equal(t, 30*time.Second, settings.NightDuration)
}
