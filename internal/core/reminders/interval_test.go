package reminders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdownFiresAfterPeriod(t *testing.T) {
	c := newCountdown(3 * time.Second)

	assert.False(t, c.tick(3*time.Second, false))
	assert.False(t, c.tick(3*time.Second, false))
	assert.True(t, c.tick(3*time.Second, false))
	assert.Equal(t, 3*time.Second, c.remaining, "reset to full period after firing")
}

func TestCountdownPauseHoldsRemaining(t *testing.T) {
	c := newCountdown(5 * time.Second)

	c.tick(5*time.Second, false)
	heldAt := c.remaining
	for i := 0; i < 10; i++ {
		assert.False(t, c.tick(5*time.Second, true))
	}
	assert.Equal(t, heldAt, c.remaining)

	// Resuming picks up where it left off.
	assert.False(t, c.tick(5*time.Second, false))
	assert.Equal(t, heldAt-time.Second, c.remaining)
}

func TestCountdownLiveIntervalShrink(t *testing.T) {
	c := newCountdown(20 * time.Second)
	c.tick(20*time.Second, false)

	// Shrinking the interval below remaining clamps immediately.
	c.tick(5*time.Second, false)
	assert.LessOrEqual(t, c.remaining, 5*time.Second)
}

func TestCountdownLiveIntervalGrow(t *testing.T) {
	c := newCountdown(3 * time.Second)
	c.tick(3*time.Second, false)

	// Growing the interval leaves the running countdown alone until reset.
	c.tick(10*time.Second, false)
	assert.Equal(t, time.Second, c.remaining)
	assert.True(t, c.tick(10*time.Second, false))
	assert.Equal(t, 10*time.Second, c.remaining)
}

func TestCountdownReset(t *testing.T) {
	c := newCountdown(10 * time.Second)
	c.tick(10*time.Second, false)
	c.tick(10*time.Second, false)

	c.reset()
	assert.Equal(t, 10*time.Second, c.remaining)
}

func TestCountdownMinimumPeriod(t *testing.T) {
	c := newCountdown(0)
	assert.Equal(t, time.Second, c.period)
	assert.True(t, c.tick(0, false))
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		want      string
	}{
		{90 * time.Second, "01:30"},
		{59 * time.Minute, "59:00"},
		{time.Hour, "01:00"},
		{90 * time.Minute, "01:30"},
		{0, "00:00"},
		{-time.Second, "00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCountdown(tt.remaining), "remaining %v", tt.remaining)
	}
}
