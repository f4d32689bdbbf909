package reminders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"restwatch/internal/core/model"
)

func clockOutConfig() model.ClockOutConfig {
	return model.ClockOutConfig{
		Enabled: true,
		Time:    model.TimeOfDay{Hour: 17},
		Days: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
	}
}

// 2026-03-10 is a Tuesday.
func workday(hour, minute, second int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, second, 0, time.UTC)
}

func TestClockOutFiresOncePerDay(t *testing.T) {
	var state clockOutState
	cfg := clockOutConfig()

	assert.Equal(t, clockOutNone, state.tick(cfg, workday(16, 59, 59)))
	assert.Equal(t, clockOutMain, state.tick(cfg, workday(17, 0, 0)))

	// Seconds-resolution ticks inside the same minute must not double-fire.
	assert.Equal(t, clockOutNone, state.tick(cfg, workday(17, 0, 1)))
	assert.Equal(t, clockOutNone, state.tick(cfg, workday(17, 0, 30)))
}

func TestClockOutFiresAgainNextDay(t *testing.T) {
	var state clockOutState
	cfg := clockOutConfig()

	assert.Equal(t, clockOutMain, state.tick(cfg, workday(17, 0, 0)))
	nextDay := workday(17, 0, 0).AddDate(0, 0, 1)
	assert.Equal(t, clockOutMain, state.tick(cfg, nextDay))
}

func TestClockOutSkipsInactiveDays(t *testing.T) {
	var state clockOutState
	cfg := clockOutConfig()

	saturday := time.Date(2026, 3, 14, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, clockOutNone, state.tick(cfg, saturday))
}

func TestClockOutReminderChain(t *testing.T) {
	var state clockOutState
	cfg := clockOutConfig()
	cfg.ReminderEnabled = true
	cfg.ReminderInterval = 15 * time.Minute

	assert.Equal(t, clockOutMain, state.tick(cfg, workday(17, 0, 0)))
	assert.Equal(t, clockOutNone, state.tick(cfg, workday(17, 14, 59)))
	assert.Equal(t, clockOutReminder, state.tick(cfg, workday(17, 15, 0)))
	assert.Equal(t, clockOutNone, state.tick(cfg, workday(17, 16, 0)))
	assert.Equal(t, clockOutReminder, state.tick(cfg, workday(17, 30, 0)))
}

func TestClockOutReminderNeedsMainEventFirst(t *testing.T) {
	var state clockOutState
	cfg := clockOutConfig()
	cfg.ReminderEnabled = true
	cfg.ReminderInterval = 15 * time.Minute

	// No main event yet today: reminders stay silent.
	assert.Equal(t, clockOutNone, state.tick(cfg, workday(18, 0, 0)))
}

func TestClockOutReminderChainEndsAtDayRollover(t *testing.T) {
	var state clockOutState
	cfg := clockOutConfig()
	cfg.ReminderEnabled = true
	cfg.ReminderInterval = 15 * time.Minute

	assert.Equal(t, clockOutMain, state.tick(cfg, workday(17, 0, 0)))
	assert.Equal(t, clockOutReminder, state.tick(cfg, workday(17, 15, 0)))

	// Next morning the stale chain is gone; only the main event restarts it.
	nextMorning := workday(9, 0, 0).AddDate(0, 0, 1)
	assert.Equal(t, clockOutNone, state.tick(cfg, nextMorning))
	assert.Equal(t, clockOutNone, state.tick(cfg, nextMorning.Add(15*time.Minute)))
}

func TestClockOutDisabledOrInvalid(t *testing.T) {
	var state clockOutState

	disabled := clockOutConfig()
	disabled.Enabled = false
	assert.Equal(t, clockOutNone, state.tick(disabled, workday(17, 0, 0)))

	invalid := clockOutConfig()
	invalid.Time = model.TimeOfDay{Hour: 24}
	assert.Equal(t, clockOutNone, state.tick(invalid, workday(17, 0, 0)))
}
