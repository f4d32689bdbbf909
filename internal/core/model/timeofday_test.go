package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{"22:00", TimeOfDay{Hour: 22}, false},
		{"06:30", TimeOfDay{Hour: 6, Minute: 30}, false},
		{"0:0", TimeOfDay{}, false},
		{"23:59", TimeOfDay{Hour: 23, Minute: 59}, false},
		{"24:00", TimeOfDay{}, true},
		{"12:60", TimeOfDay{}, true},
		{"-1:00", TimeOfDay{}, true},
		{"noon", TimeOfDay{}, true},
		{"12", TimeOfDay{}, true},
		{"", TimeOfDay{}, true},
	}

	for _, tt := range tests {
		parsed, err := ParseTimeOfDay(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, parsed, "input %q", tt.input)
	}
}

func TestTimeRangeContains(t *testing.T) {
	tests := []struct {
		name    string
		r       TimeRange
		t       TimeOfDay
		want    bool
	}{
		{"inside same-day range", span(9, 0, 17, 0), TimeOfDay{Hour: 12}, true},
		{"before same-day range", span(9, 0, 17, 0), TimeOfDay{Hour: 8, Minute: 59}, false},
		{"after same-day range", span(9, 0, 17, 0), TimeOfDay{Hour: 17, Minute: 1}, false},
		{"start inclusive", span(9, 0, 17, 0), TimeOfDay{Hour: 9}, true},
		{"end inclusive", span(9, 0, 17, 0), TimeOfDay{Hour: 17}, true},
		{"overnight evening side", span(22, 0, 6, 0), TimeOfDay{Hour: 23}, true},
		{"overnight morning side", span(22, 0, 6, 0), TimeOfDay{Hour: 2}, true},
		{"overnight start inclusive", span(22, 0, 6, 0), TimeOfDay{Hour: 22}, true},
		{"overnight end inclusive", span(22, 0, 6, 0), TimeOfDay{Hour: 6}, true},
		{"overnight midday outside", span(22, 0, 6, 0), TimeOfDay{Hour: 12}, false},
		{"overnight just before start", span(22, 0, 6, 0), TimeOfDay{Hour: 21, Minute: 59}, false},
		{"overnight just after end", span(22, 0, 6, 0), TimeOfDay{Hour: 6, Minute: 1}, false},
		{"single minute inside", span(12, 30, 12, 30), TimeOfDay{Hour: 12, Minute: 30}, true},
		{"single minute outside", span(12, 30, 12, 30), TimeOfDay{Hour: 12, Minute: 31}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(tt.t))
		})
	}
}

func TestTimeRangeContainsInvalid(t *testing.T) {
	r := TimeRange{Start: TimeOfDay{Hour: 25}, End: TimeOfDay{Hour: 6}}
	assert.False(t, r.Contains(TimeOfDay{Hour: 3}))
	assert.False(t, r.Valid())
}

func TestUntilStart(t *testing.T) {
	r := span(22, 0, 6, 0)

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
	}

	assert.Equal(t, 10*time.Hour, r.UntilStart(at(12, 0)))
	assert.Equal(t, time.Minute, r.UntilStart(at(21, 59)))
	assert.Equal(t, time.Duration(0), r.UntilStart(at(23, 0)), "inside range")
	assert.Equal(t, time.Duration(0), r.UntilStart(at(3, 0)), "inside wrapped range")
}

func TestUntilNext(t *testing.T) {
	target := TimeOfDay{Hour: 17}
	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
	}

	assert.Equal(t, 5*time.Hour, target.UntilNext(at(12, 0)))
	assert.Equal(t, time.Duration(0), target.UntilNext(at(17, 0)))
	assert.Equal(t, 23*time.Hour, target.UntilNext(at(18, 0)), "wraps to tomorrow")
}

func span(startHour, startMinute, endHour, endMinute int) TimeRange {
	return TimeRange{
		Start: TimeOfDay{Hour: startHour, Minute: startMinute},
		End:   TimeOfDay{Hour: endHour, Minute: endMinute},
	}
}
