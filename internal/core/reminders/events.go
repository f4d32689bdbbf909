package reminders

import (
	"fmt"
	"time"

	"restwatch/internal/core/model"
)

// EventType defines the type of scheduler event.
type EventType string

const (
	EventProgress   EventType = "progress"
	EventFire       EventType = "fire"
	EventSuppressed EventType = "suppressed"
)

// Countdowns carries the formatted per-kind countdown strings shown in the
// menu bar. Empty string means the kind is disabled.
type Countdowns struct {
	EyeStrain   string
	MiniOverlay string
	Bedtime     string
	ClockOut    string
}

// Event represents a scheduler update for observers.
type Event struct {
	Type       EventType
	Kind       model.ReminderKind
	Countdowns Countdowns
	At         time.Time
}

// FormatCountdown renders a remaining duration as MM:SS, or HH:MM once it
// reaches an hour.
func FormatCountdown(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	totalSeconds := int(remaining.Seconds())
	if remaining >= time.Hour {
		return fmt.Sprintf("%02d:%02d", totalSeconds/3600, (totalSeconds%3600)/60)
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
