package reminders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"restwatch/internal/core/model"
)

func bedtimeConfig() model.BedtimeConfig {
	return model.BedtimeConfig{
		Enabled: true,
		Range: model.TimeRange{
			Start: model.TimeOfDay{Hour: 22},
			End:   model.TimeOfDay{Hour: 6},
		},
	}
}

func clock(hour, minute, second int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, second, 0, time.UTC)
}

func TestBedtimeFiresOnEntry(t *testing.T) {
	var state bedtimeState
	cfg := bedtimeConfig()

	assert.False(t, state.tick(cfg, clock(21, 59, 59)))
	assert.True(t, state.tick(cfg, clock(22, 0, 0)), "transition into range")
	assert.False(t, state.tick(cfg, clock(22, 0, 1)), "still inside, no re-fire")
	assert.False(t, state.tick(cfg, clock(23, 30, 0)))
}

func TestBedtimeLongStaySingleFire(t *testing.T) {
	var state bedtimeState
	cfg := bedtimeConfig()

	fires := 0
	now := clock(22, 0, 0)
	for i := 0; i < 100; i++ {
		if state.tick(cfg, now) {
			fires++
		}
		now = now.Add(time.Second)
	}
	assert.Equal(t, 1, fires)
}

func TestBedtimeRearmsAfterLeavingRange(t *testing.T) {
	var state bedtimeState
	cfg := bedtimeConfig()

	assert.True(t, state.tick(cfg, clock(22, 0, 0)))
	assert.False(t, state.tick(cfg, clock(5, 59, 0)))
	assert.False(t, state.tick(cfg, clock(6, 1, 0)), "left the range")
	assert.True(t, state.tick(cfg, clock(22, 0, 0)), "re-entry fires again")
}

func TestBedtimeStartupInsideRange(t *testing.T) {
	// First ever tick landing inside the range counts as an entry.
	var state bedtimeState
	assert.True(t, state.tick(bedtimeConfig(), clock(23, 0, 0)))
}

func TestBedtimeRepeatMode(t *testing.T) {
	var state bedtimeState
	cfg := bedtimeConfig()
	cfg.RepeatReminders = true
	cfg.RepeatInterval = 15 * time.Minute

	assert.True(t, state.tick(cfg, clock(22, 0, 0)), "fires at entry")
	assert.False(t, state.tick(cfg, clock(22, 14, 59)))
	assert.True(t, state.tick(cfg, clock(22, 15, 0)), "fires at interval")
	assert.False(t, state.tick(cfg, clock(22, 16, 0)))
	assert.True(t, state.tick(cfg, clock(22, 30, 0)))
}

func TestBedtimeRepeatClearedOnExit(t *testing.T) {
	var state bedtimeState
	cfg := bedtimeConfig()
	cfg.RepeatReminders = true
	cfg.RepeatInterval = 15 * time.Minute

	assert.True(t, state.tick(cfg, clock(22, 0, 0)))
	assert.False(t, state.tick(cfg, clock(6, 1, 0)), "outside range")
	assert.True(t, state.tick(cfg, clock(22, 0, 0)), "fresh chain next night")
}

func TestBedtimeDisabled(t *testing.T) {
	var state bedtimeState
	cfg := bedtimeConfig()
	cfg.Enabled = false

	assert.False(t, state.tick(cfg, clock(22, 0, 0)))
	assert.False(t, state.prevInRange, "disabled ticks leave state untouched")
}

func TestBedtimeInvalidRangeInert(t *testing.T) {
	var state bedtimeState
	cfg := bedtimeConfig()

	assert.True(t, state.tick(cfg, clock(22, 0, 0)))

	broken := cfg
	broken.Range.Start = model.TimeOfDay{Hour: 99}
	assert.False(t, state.tick(broken, clock(23, 0, 0)))
	assert.True(t, state.prevInRange, "invalid config must not reset membership")

	// Config restored: still inside the same continuous stay, no re-fire.
	assert.False(t, state.tick(cfg, clock(23, 1, 0)))
}

func TestBedtimeInRangeQueryDoesNotMutate(t *testing.T) {
	var state bedtimeState
	cfg := bedtimeConfig()

	assert.True(t, state.inRange(cfg, clock(23, 0, 0)))
	assert.False(t, state.prevInRange)
	assert.True(t, state.tick(cfg, clock(23, 0, 0)), "entry still detected")
}

func TestBedtimeRepeatDefaultInterval(t *testing.T) {
	var state bedtimeState
	cfg := bedtimeConfig()
	cfg.RepeatReminders = true
	// Zero interval falls back to one minute instead of firing every tick.

	assert.True(t, state.tick(cfg, clock(22, 0, 0)))
	assert.False(t, state.tick(cfg, clock(22, 0, 30)))
	assert.True(t, state.tick(cfg, clock(22, 1, 0)))
}
