package reminders

import "time"

// countdown is the interval state machine shared by the eye-strain and
// mini-overlay kinds. remaining never exceeds period and period is always
// positive.
type countdown struct {
	remaining time.Duration
	period    time.Duration
}

func newCountdown(period time.Duration) countdown {
	if period < time.Second {
		period = time.Second
	}
	return countdown{remaining: period, period: period}
}

// tick advances the countdown by one second. period is the currently
// configured interval, so live edits apply without a restart. When paused
// the countdown is left untouched; it is still surfaced for display.
// Returns true when the countdown reached zero and was reset.
func (c *countdown) tick(period time.Duration, paused bool) bool {
	if period < time.Second {
		period = time.Second
	}
	if c.period != period {
		c.period = period
		if c.remaining > period {
			c.remaining = period
		}
	}
	if c.remaining <= 0 {
		c.remaining = period
	}
	if paused {
		return false
	}

	c.remaining -= time.Second
	if c.remaining <= 0 {
		c.remaining = period
		return true
	}
	return false
}

// reset restores the full configured period.
func (c *countdown) reset() {
	c.remaining = c.period
}
