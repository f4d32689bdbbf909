package reminders

import (
	"time"

	"restwatch/internal/core/model"
)

// clockOutResult describes what the clock-out machine decided on a tick.
type clockOutResult int

const (
	clockOutNone clockOutResult = iota
	clockOutMain
	clockOutReminder
)

// clockOutState tracks the once-per-day clock-out event and its periodic
// follow-up reminder. The main event is gated by calendar date, not by
// timestamp, so seconds-resolution ticks within the configured minute cannot
// double-fire.
type clockOutState struct {
	lastFired    time.Time
	lastReminder time.Time
}

func (c *clockOutState) tick(cfg model.ClockOutConfig, now time.Time) clockOutResult {
	if !cfg.Enabled || !cfg.Time.Valid() {
		return clockOutNone
	}

	// Day rollover ends the reminder chain until the next main event.
	if !c.lastReminder.IsZero() && !sameDay(c.lastReminder, now) {
		c.lastReminder = time.Time{}
	}

	if !cfg.ActiveOn(now.Weekday()) {
		return clockOutNone
	}

	current := model.TimeOfDayFromTime(now)
	if current == cfg.Time {
		if c.lastFired.IsZero() || !sameDay(c.lastFired, now) {
			c.lastFired = now
			c.lastReminder = now
			return clockOutMain
		}
	}

	if cfg.ReminderEnabled && !c.lastReminder.IsZero() {
		interval := cfg.ReminderInterval
		if interval <= 0 {
			interval = time.Minute
		}
		if now.Sub(c.lastReminder) >= interval {
			c.lastReminder = now
			return clockOutReminder
		}
	}

	return clockOutNone
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
