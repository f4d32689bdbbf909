package storage

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"restwatch/internal/core/model"
	"restwatch/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	AlertsEnabled             *bool   `yaml:"alerts_enabled"`
	ClickToDismiss            *bool   `yaml:"click_to_dismiss"`
	DisableDuringPresentation *bool   `yaml:"disable_during_presentation"`
	LaunchAtLogin             *bool   `yaml:"launch_at_login"`
	OverlayOpacity            float64 `yaml:"overlay_opacity"`
	Fullscreen                *bool   `yaml:"fullscreen"`

	EyeStrainEnabled             *bool  `yaml:"eye_strain_enabled"`
	EyeStrainIntervalMinutes     int    `yaml:"eye_strain_interval_minutes"`
	EyeStrainTitle               string `yaml:"eye_strain_title"`
	EyeStrainMessage             string `yaml:"eye_strain_message"`
	EyeStrainDismissAfterSeconds int    `yaml:"eye_strain_dismiss_after_seconds"`

	BedtimeEnabled               *bool  `yaml:"bedtime_enabled"`
	BedtimeStart                 string `yaml:"bedtime_start"`
	BedtimeEnd                   string `yaml:"bedtime_end"`
	BedtimeTitle                 string `yaml:"bedtime_title"`
	BedtimeMessage               string `yaml:"bedtime_message"`
	BedtimeDismissAfterSeconds   int    `yaml:"bedtime_dismiss_after_seconds"`
	BedtimeAutoDismiss           *bool  `yaml:"bedtime_auto_dismiss"`
	BedtimeRepeat                *bool  `yaml:"bedtime_repeat"`
	BedtimeRepeatIntervalMinutes int    `yaml:"bedtime_repeat_interval_minutes"`
	BedtimePersistent            *bool  `yaml:"bedtime_persistent"`

	ClockOutEnabled                 *bool  `yaml:"clock_out_enabled"`
	ClockOutTime                    string `yaml:"clock_out_time"`
	ClockOutDays                    []int  `yaml:"clock_out_days"`
	ClockOutUseOverlay              *bool  `yaml:"clock_out_use_overlay"`
	ClockOutReminderEnabled         *bool  `yaml:"clock_out_reminder_enabled"`
	ClockOutReminderIntervalMinutes int    `yaml:"clock_out_reminder_interval_minutes"`

	MiniOverlayEnabled         *bool   `yaml:"mini_overlay_enabled"`
	MiniOverlayIntervalMinutes int     `yaml:"mini_overlay_interval_minutes"`
	MiniOverlayText            string  `yaml:"mini_overlay_text"`
	MiniOverlayIcon            string  `yaml:"mini_overlay_icon"`
	MiniOverlayDurationSeconds float64 `yaml:"mini_overlay_duration_seconds"`
	MiniOverlayHoldSeconds     float64 `yaml:"mini_overlay_hold_seconds"`

	SoundEnabled *bool   `yaml:"sound_enabled"`
	SoundVolume  float64 `yaml:"sound_volume"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned. Missing
// or malformed keys fall back to their defaults individually.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	days := make([]int, 0, len(settings.ClockOutDays))
	for _, day := range settings.ClockOutDays {
		days = append(days, int(day))
	}

	fileData := yamlSettings{
		AlertsEnabled:             &settings.AlertsEnabled,
		ClickToDismiss:            &settings.ClickToDismiss,
		DisableDuringPresentation: &settings.DisableDuringPresentation,
		LaunchAtLogin:             &settings.LaunchAtLogin,
		OverlayOpacity:            settings.OverlayOpacity,
		Fullscreen:                &settings.Fullscreen,

		EyeStrainEnabled:             &settings.EyeStrainEnabled,
		EyeStrainIntervalMinutes:     int(settings.EyeStrainInterval / time.Minute),
		EyeStrainTitle:               settings.EyeStrainTitle,
		EyeStrainMessage:             settings.EyeStrainMessage,
		EyeStrainDismissAfterSeconds: int(settings.EyeStrainDismissAfter / time.Second),

		BedtimeEnabled:               &settings.BedtimeEnabled,
		BedtimeStart:                 settings.BedtimeStart.String(),
		BedtimeEnd:                   settings.BedtimeEnd.String(),
		BedtimeTitle:                 settings.BedtimeTitle,
		BedtimeMessage:               settings.BedtimeMessage,
		BedtimeDismissAfterSeconds:   int(settings.BedtimeDismissAfter / time.Second),
		BedtimeAutoDismiss:           &settings.BedtimeAutoDismiss,
		BedtimeRepeat:                &settings.BedtimeRepeat,
		BedtimeRepeatIntervalMinutes: int(settings.BedtimeRepeatInterval / time.Minute),
		BedtimePersistent:            &settings.BedtimePersistent,

		ClockOutEnabled:                 &settings.ClockOutEnabled,
		ClockOutTime:                    settings.ClockOutTime.String(),
		ClockOutDays:                    days,
		ClockOutUseOverlay:              &settings.ClockOutUseOverlay,
		ClockOutReminderEnabled:         &settings.ClockOutReminderEnabled,
		ClockOutReminderIntervalMinutes: int(settings.ClockOutReminderInterval / time.Minute),

		MiniOverlayEnabled:         &settings.MiniOverlayEnabled,
		MiniOverlayIntervalMinutes: int(settings.MiniOverlayInterval / time.Minute),
		MiniOverlayText:            settings.MiniOverlayText,
		MiniOverlayIcon:            settings.MiniOverlayIcon,
		MiniOverlayDurationSeconds: settings.MiniOverlayDuration.Seconds(),
		MiniOverlayHoldSeconds:     settings.MiniOverlayHold.Seconds(),

		SoundEnabled: &settings.SoundEnabled,
		SoundVolume:  settings.SoundVolume,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	setBool(&settings.AlertsEnabled, fileData.AlertsEnabled)
	setBool(&settings.ClickToDismiss, fileData.ClickToDismiss)
	setBool(&settings.DisableDuringPresentation, fileData.DisableDuringPresentation)
	setBool(&settings.LaunchAtLogin, fileData.LaunchAtLogin)
	setBool(&settings.Fullscreen, fileData.Fullscreen)
	if fileData.OverlayOpacity >= 0.5 && fileData.OverlayOpacity <= 0.95 {
		settings.OverlayOpacity = fileData.OverlayOpacity
	}

	setBool(&settings.EyeStrainEnabled, fileData.EyeStrainEnabled)
	if fileData.EyeStrainIntervalMinutes > 0 {
		settings.EyeStrainInterval = time.Duration(fileData.EyeStrainIntervalMinutes) * time.Minute
	}
	if fileData.EyeStrainTitle != "" {
		settings.EyeStrainTitle = fileData.EyeStrainTitle
	}
	if fileData.EyeStrainMessage != "" {
		settings.EyeStrainMessage = fileData.EyeStrainMessage
	}
	if fileData.EyeStrainDismissAfterSeconds > 0 {
		settings.EyeStrainDismissAfter = time.Duration(fileData.EyeStrainDismissAfterSeconds) * time.Second
	}

	setBool(&settings.BedtimeEnabled, fileData.BedtimeEnabled)
	if parsed, err := model.ParseTimeOfDay(fileData.BedtimeStart); err == nil {
		settings.BedtimeStart = parsed
	}
	if parsed, err := model.ParseTimeOfDay(fileData.BedtimeEnd); err == nil {
		settings.BedtimeEnd = parsed
	}
	if fileData.BedtimeTitle != "" {
		settings.BedtimeTitle = fileData.BedtimeTitle
	}
	if fileData.BedtimeMessage != "" {
		settings.BedtimeMessage = fileData.BedtimeMessage
	}
	if fileData.BedtimeDismissAfterSeconds > 0 {
		settings.BedtimeDismissAfter = time.Duration(fileData.BedtimeDismissAfterSeconds) * time.Second
	}
	setBool(&settings.BedtimeAutoDismiss, fileData.BedtimeAutoDismiss)
	setBool(&settings.BedtimeRepeat, fileData.BedtimeRepeat)
	if fileData.BedtimeRepeatIntervalMinutes > 0 {
		settings.BedtimeRepeatInterval = time.Duration(fileData.BedtimeRepeatIntervalMinutes) * time.Minute
	}
	setBool(&settings.BedtimePersistent, fileData.BedtimePersistent)

	setBool(&settings.ClockOutEnabled, fileData.ClockOutEnabled)
	if parsed, err := model.ParseTimeOfDay(fileData.ClockOutTime); err == nil {
		settings.ClockOutTime = parsed
	}
	if len(fileData.ClockOutDays) > 0 {
		days := make([]time.Weekday, 0, len(fileData.ClockOutDays))
		for _, day := range fileData.ClockOutDays {
			if day >= 0 && day <= 6 {
				days = append(days, time.Weekday(day))
			}
		}
		settings.ClockOutDays = days
	}
	setBool(&settings.ClockOutUseOverlay, fileData.ClockOutUseOverlay)
	setBool(&settings.ClockOutReminderEnabled, fileData.ClockOutReminderEnabled)
	if fileData.ClockOutReminderIntervalMinutes > 0 {
		settings.ClockOutReminderInterval = time.Duration(fileData.ClockOutReminderIntervalMinutes) * time.Minute
	}

	setBool(&settings.MiniOverlayEnabled, fileData.MiniOverlayEnabled)
	if fileData.MiniOverlayIntervalMinutes > 0 {
		settings.MiniOverlayInterval = time.Duration(fileData.MiniOverlayIntervalMinutes) * time.Minute
	}
	if fileData.MiniOverlayText != "" {
		settings.MiniOverlayText = fileData.MiniOverlayText
	}
	if fileData.MiniOverlayIcon != "" {
		settings.MiniOverlayIcon = fileData.MiniOverlayIcon
	}
	if fileData.MiniOverlayDurationSeconds > 0 {
		settings.MiniOverlayDuration = secondsToDuration(fileData.MiniOverlayDurationSeconds)
	}
	if fileData.MiniOverlayHoldSeconds > 0 {
		settings.MiniOverlayHold = secondsToDuration(fileData.MiniOverlayHoldSeconds)
	}

	setBool(&settings.SoundEnabled, fileData.SoundEnabled)
	if fileData.SoundVolume > 0 && fileData.SoundVolume <= 1 {
		settings.SoundVolume = fileData.SoundVolume
	}
}

func setBool(target *bool, value *bool) {
	if value != nil {
		*target = *value
	}
}

// secondsToDuration rounds to whole milliseconds so fractional values
// survive the YAML float round trip.
func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds*1000)) * time.Millisecond
}
