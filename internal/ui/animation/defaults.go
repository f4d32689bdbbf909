package animation

import "time"

// DefaultConfig returns the timing the mini-overlay was tuned against: a
// 3.15s envelope with short ease-in/ease-out tails.
func DefaultConfig() Config {
	return Config{
		BaselineEnvelope: 3150 * time.Millisecond,
		AppearDuration:   750 * time.Millisecond,
		DepartDuration:   700 * time.Millisecond,
		CountdownStep:    time.Second,
	}
}
