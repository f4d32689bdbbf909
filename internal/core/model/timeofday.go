package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock instant with minute resolution.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// TimeOfDayFromTime extracts the hour and minute of t.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: expected HH:MM", value)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", value, err)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", value, err)
	}
	parsed := TimeOfDay{Hour: hour, Minute: minute}
	if !parsed.Valid() {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: out of range", value)
	}
	return parsed, nil
}

// Valid reports whether both components are in range.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// MinutesSinceMidnight converts to minutes past 00:00.
func (t TimeOfDay) MinutesSinceMidnight() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TimeRange is a daily wall-clock window. End before Start means the range
// wraps past midnight (22:00-06:00 covers the overnight span). Start equal
// to End is a single-minute range, not a full day.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Valid reports whether both endpoints are in range.
func (r TimeRange) Valid() bool {
	return r.Start.Valid() && r.End.Valid()
}

// Contains reports whether t falls inside the range. Both endpoints are
// inclusive.
func (r TimeRange) Contains(t TimeOfDay) bool {
	if !r.Valid() || !t.Valid() {
		return false
	}
	start := r.Start.MinutesSinceMidnight()
	end := r.End.MinutesSinceMidnight()
	current := t.MinutesSinceMidnight()

	if end < start {
		return current >= start || current <= end
	}
	return current >= start && current <= end
}

// UntilStart returns the duration from now until the next occurrence of the
// range start, rounded down to whole minutes. Zero when now is inside the
// range.
func (r TimeRange) UntilStart(now time.Time) time.Duration {
	if !r.Valid() {
		return 0
	}
	current := TimeOfDayFromTime(now)
	if r.Contains(current) {
		return 0
	}
	return minutesUntil(current, r.Start)
}

// UntilNext returns the duration from now until the next occurrence of
// target, rounded down to whole minutes.
func (target TimeOfDay) UntilNext(now time.Time) time.Duration {
	if !target.Valid() {
		return 0
	}
	return minutesUntil(TimeOfDayFromTime(now), target)
}

func minutesUntil(from, to TimeOfDay) time.Duration {
	delta := to.MinutesSinceMidnight() - from.MinutesSinceMidnight()
	if delta < 0 {
		delta += 24 * 60
	}
	return time.Duration(delta) * time.Minute
}
