package preferences

import (
	"time"

	"restwatch/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	AlertsEnabled             bool
	ClickToDismiss            bool
	DisableDuringPresentation bool
	LaunchAtLogin             bool
	OverlayOpacity            float64
	Fullscreen                bool

	EyeStrainEnabled      bool
	EyeStrainInterval     time.Duration
	EyeStrainTitle        string
	EyeStrainMessage      string
	EyeStrainDismissAfter time.Duration

	BedtimeEnabled        bool
	BedtimeStart          model.TimeOfDay
	BedtimeEnd            model.TimeOfDay
	BedtimeTitle          string
	BedtimeMessage        string
	BedtimeDismissAfter   time.Duration
	BedtimeAutoDismiss    bool
	BedtimeRepeat         bool
	BedtimeRepeatInterval time.Duration
	BedtimePersistent     bool

	ClockOutEnabled          bool
	ClockOutTime             model.TimeOfDay
	ClockOutDays             []time.Weekday
	ClockOutUseOverlay       bool
	ClockOutReminderEnabled  bool
	ClockOutReminderInterval time.Duration

	MiniOverlayEnabled  bool
	MiniOverlayInterval time.Duration
	MiniOverlayText     string
	MiniOverlayIcon     string
	MiniOverlayDuration time.Duration
	MiniOverlayHold     time.Duration

	SoundEnabled bool
	SoundVolume  float64
}

// DefaultSettings returns default settings for RestWatch.
func DefaultSettings() Settings {
	return Settings{
		AlertsEnabled:             true,
		ClickToDismiss:            true,
		DisableDuringPresentation: true,
		LaunchAtLogin:             false,
		OverlayOpacity:            0.85,
		Fullscreen:                true,

		EyeStrainEnabled:      false,
		EyeStrainInterval:     20 * time.Minute,
		EyeStrainTitle:        "Eye Strain Break",
		EyeStrainMessage:      "Look away from the screen and rest your eyes.",
		EyeStrainDismissAfter: 20 * time.Second,

		BedtimeEnabled:        false,
		BedtimeStart:          model.TimeOfDay{Hour: 22},
		BedtimeEnd:            model.TimeOfDay{Hour: 6},
		BedtimeTitle:          "Bedtime Reminder",
		BedtimeMessage:        "It's time to go to bed and get some rest.",
		BedtimeDismissAfter:   30 * time.Second,
		BedtimeAutoDismiss:    true,
		BedtimeRepeat:         false,
		BedtimeRepeatInterval: 15 * time.Minute,
		BedtimePersistent:     false,

		ClockOutEnabled:          false,
		ClockOutTime:             model.TimeOfDay{Hour: 17},
		ClockOutDays:             []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		ClockOutUseOverlay:       true,
		ClockOutReminderEnabled:  false,
		ClockOutReminderInterval: 15 * time.Minute,

		MiniOverlayEnabled:  false,
		MiniOverlayInterval: 30 * time.Minute,
		MiniOverlayText:     "Posture check",
		MiniOverlayIcon:     "sparkles",
		MiniOverlayDuration: 3150 * time.Millisecond,
		MiniOverlayHold:     1500 * time.Millisecond,

		SoundEnabled: false,
		SoundVolume:  0.5,
	}
}

// Snapshot converts settings to the immutable engine configuration.
func (settings Settings) Snapshot() model.Config {
	return model.Config{
		AlertsEnabled:             settings.AlertsEnabled,
		ClickToDismiss:            settings.ClickToDismiss,
		DisableDuringPresentation: settings.DisableDuringPresentation,
		EyeStrain: model.IntervalReminderConfig{
			Enabled:      settings.EyeStrainEnabled,
			Interval:     settings.EyeStrainInterval,
			Title:        settings.EyeStrainTitle,
			Message:      settings.EyeStrainMessage,
			DismissAfter: settings.EyeStrainDismissAfter,
		},
		MiniOverlay: model.MiniOverlayConfig{
			Enabled:      settings.MiniOverlayEnabled,
			Interval:     settings.MiniOverlayInterval,
			Text:         settings.MiniOverlayText,
			Icon:         settings.MiniOverlayIcon,
			Duration:     settings.MiniOverlayDuration,
			HoldDuration: settings.MiniOverlayHold,
		},
		Bedtime: model.BedtimeConfig{
			Enabled:         settings.BedtimeEnabled,
			Range:           model.TimeRange{Start: settings.BedtimeStart, End: settings.BedtimeEnd},
			Title:           settings.BedtimeTitle,
			Message:         settings.BedtimeMessage,
			DismissAfter:    settings.BedtimeDismissAfter,
			AutoDismiss:     settings.BedtimeAutoDismiss,
			RepeatReminders: settings.BedtimeRepeat,
			RepeatInterval:  settings.BedtimeRepeatInterval,
			Persistent:      settings.BedtimePersistent,
		},
		ClockOut: model.ClockOutConfig{
			Enabled:          settings.ClockOutEnabled,
			Time:             settings.ClockOutTime,
			Days:             append([]time.Weekday(nil), settings.ClockOutDays...),
			UseOverlay:       settings.ClockOutUseOverlay,
			ReminderEnabled:  settings.ClockOutReminderEnabled,
			ReminderInterval: settings.ClockOutReminderInterval,
		},
		Sound: model.SoundConfig{
			Enabled: settings.SoundEnabled,
			Volume:  settings.SoundVolume,
		},
	}
}
