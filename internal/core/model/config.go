package model

import "time"

// ReminderKind identifies which state machine and configuration apply.
type ReminderKind string

const (
	KindEyeStrain   ReminderKind = "eye_strain"
	KindBedtime     ReminderKind = "bedtime"
	KindClockOut    ReminderKind = "clock_out"
	KindMiniOverlay ReminderKind = "mini_overlay"
)

// IntervalReminderConfig drives a countdown-based reminder.
type IntervalReminderConfig struct {
	Enabled      bool
	Interval     time.Duration
	Title        string
	Message      string
	DismissAfter time.Duration
}

// MiniOverlayConfig drives the transient mini-overlay reminder.
type MiniOverlayConfig struct {
	Enabled      bool
	Interval     time.Duration
	Text         string
	Icon         string
	Duration     time.Duration
	HoldDuration time.Duration
}

// BedtimeConfig drives the time-range bedtime reminder.
type BedtimeConfig struct {
	Enabled         bool
	Range           TimeRange
	Title           string
	Message         string
	DismissAfter    time.Duration
	AutoDismiss     bool
	RepeatReminders bool
	RepeatInterval  time.Duration
	Persistent      bool
}

// ClockOutConfig drives the time-of-day clock-out reminder.
type ClockOutConfig struct {
	Enabled          bool
	Time             TimeOfDay
	Days             []time.Weekday
	UseOverlay       bool
	ReminderEnabled  bool
	ReminderInterval time.Duration
}

// ActiveOn reports whether day is one of the configured active weekdays.
func (c ClockOutConfig) ActiveOn(day time.Weekday) bool {
	for _, active := range c.Days {
		if active == day {
			return true
		}
	}
	return false
}

// SoundConfig controls reminder sound playback.
type SoundConfig struct {
	Enabled bool
	Volume  float64
}

// Config is an immutable snapshot of every tunable the engine reads. The
// scheduler takes one snapshot at the top of each tick; writers publish
// whole new snapshots instead of mutating fields in place.
type Config struct {
	AlertsEnabled             bool
	ClickToDismiss            bool
	DisableDuringPresentation bool

	EyeStrain   IntervalReminderConfig
	MiniOverlay MiniOverlayConfig
	Bedtime     BedtimeConfig
	ClockOut    ClockOutConfig

	Sound SoundConfig
}

// FireDecision is the scheduler's handoff to the presentation layer: render
// this, no further scheduling logic required.
type FireDecision struct {
	Kind         ReminderKind
	Title        string
	Message      string
	Icon         string
	DismissAfter time.Duration
	HoldDuration time.Duration
	AutoDismiss  bool
	Dismissable  bool
	UsesOverlay  bool
}
