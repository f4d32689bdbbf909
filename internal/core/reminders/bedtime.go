package reminders

import (
	"time"

	"restwatch/internal/core/model"
)

// bedtimeState tracks the bedtime range reminder. Membership of the previous
// tick is stored explicitly so entry into the range is detected as a
// transition rather than inferred from timestamps.
type bedtimeState struct {
	prevInRange    bool
	lastEntryFire  time.Time
	lastRepeatFire time.Time
}

// tick evaluates the bedtime reminder for the current wall-clock time.
// Returns true when the reminder should fire.
func (b *bedtimeState) tick(cfg model.BedtimeConfig, now time.Time) bool {
	if !cfg.Enabled || !cfg.Range.Valid() {
		// Malformed or disabled: inert for this tick, state untouched so a
		// transient misread cannot fabricate a re-entry.
		return false
	}

	inRange := cfg.Range.Contains(model.TimeOfDayFromTime(now))
	fired := false

	switch {
	case !inRange:
		// Leaving the range re-arms both modes.
		b.lastRepeatFire = time.Time{}
	case cfg.RepeatReminders:
		interval := cfg.RepeatInterval
		if interval <= 0 {
			interval = time.Minute
		}
		if b.lastRepeatFire.IsZero() || now.Sub(b.lastRepeatFire) >= interval {
			fired = true
			b.lastRepeatFire = now
		}
	default:
		// Fire exactly on the transition into the range, once per
		// continuous stay.
		if !b.prevInRange {
			fired = true
			b.lastEntryFire = now
			b.lastRepeatFire = now
		}
	}

	b.prevInRange = inRange
	return fired
}

// inRange reports current membership without mutating state. Used by the
// low-frequency persistent check.
func (b *bedtimeState) inRange(cfg model.BedtimeConfig, now time.Time) bool {
	if !cfg.Enabled || !cfg.Range.Valid() {
		return false
	}
	return cfg.Range.Contains(model.TimeOfDayFromTime(now))
}
