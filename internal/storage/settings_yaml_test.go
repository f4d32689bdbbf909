package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restwatch/internal/core/model"
	"restwatch/internal/ui/preferences"
)

const testAppName = "RestWatchTest"

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("AppData", dir)
	return dir
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	useTempConfigDir(t)

	loaded, err := LoadSettings(testAppName)
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), loaded)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	settings := preferences.DefaultSettings()
	settings.AlertsEnabled = false
	settings.OverlayOpacity = 0.7
	settings.EyeStrainEnabled = true
	settings.EyeStrainInterval = 25 * time.Minute
	settings.EyeStrainTitle = "Break"
	settings.BedtimeEnabled = true
	settings.BedtimeStart = model.TimeOfDay{Hour: 23, Minute: 30}
	settings.BedtimeEnd = model.TimeOfDay{Hour: 7, Minute: 15}
	settings.BedtimeRepeat = true
	settings.BedtimeRepeatInterval = 10 * time.Minute
	settings.ClockOutEnabled = true
	settings.ClockOutTime = model.TimeOfDay{Hour: 18}
	settings.ClockOutDays = []time.Weekday{time.Monday, time.Friday}
	settings.MiniOverlayEnabled = true
	settings.MiniOverlayDuration = 3150 * time.Millisecond
	settings.MiniOverlayHold = 1500 * time.Millisecond
	settings.SoundEnabled = true
	settings.SoundVolume = 0.8

	require.NoError(t, SaveSettings(testAppName, settings))

	loaded, err := LoadSettings(testAppName)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestLoadSettingsIgnoresInvalidValues(t *testing.T) {
	dir := useTempConfigDir(t)

	configDir := filepath.Join(dir, testAppName)
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	raw := []byte(`
eye_strain_interval_minutes: -5
bedtime_start: "25:00"
clock_out_days: [1, 9, -3, 5]
overlay_opacity: 3.0
sound_volume: 1.5
mini_overlay_duration_seconds: 0
`)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, settingsFileName), raw, 0o644))

	loaded, err := LoadSettings(testAppName)
	require.NoError(t, err)

	defaults := preferences.DefaultSettings()
	assert.Equal(t, defaults.EyeStrainInterval, loaded.EyeStrainInterval)
	assert.Equal(t, defaults.BedtimeStart, loaded.BedtimeStart)
	assert.Equal(t, defaults.OverlayOpacity, loaded.OverlayOpacity)
	assert.Equal(t, defaults.SoundVolume, loaded.SoundVolume)
	assert.Equal(t, defaults.MiniOverlayDuration, loaded.MiniOverlayDuration)
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, loaded.ClockOutDays,
		"out-of-range weekdays dropped, valid ones kept")
}

func TestLoadSettingsMalformedYaml(t *testing.T) {
	dir := useTempConfigDir(t)

	configDir := filepath.Join(dir, testAppName)
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, settingsFileName), []byte("{not yaml"), 0o644))

	loaded, err := LoadSettings(testAppName)
	assert.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), loaded, "defaults still usable on parse failure")
}

func TestSettingsSnapshot(t *testing.T) {
	settings := preferences.DefaultSettings()
	settings.BedtimeEnabled = true
	settings.SoundVolume = 0.3

	cfg := settings.Snapshot()
	assert.True(t, cfg.Bedtime.Enabled)
	assert.Equal(t, model.TimeOfDay{Hour: 22}, cfg.Bedtime.Range.Start)
	assert.Equal(t, 0.3, cfg.Sound.Volume)
	assert.Equal(t, settings.AlertsEnabled, cfg.AlertsEnabled)
}
