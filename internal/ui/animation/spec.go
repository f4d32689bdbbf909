package animation

import "time"

// Phase identifies a stage of the transient overlay animation.
type Phase int

const (
	PhaseAppear Phase = iota
	PhaseHold
	PhaseDepart
	PhaseDone
)

// TransientSpec defines the timing envelope for one transient overlay run.
// Duration is the overall animation envelope; Hold extends the fully
// visible middle stage.
type TransientSpec struct {
	Duration time.Duration
	Hold     time.Duration
}

// Multiplier scales the fixed phase timings against the baseline envelope.
func (spec TransientSpec) Multiplier(baseline time.Duration) float64 {
	if baseline <= 0 || spec.Duration <= 0 {
		return 1
	}
	return float64(spec.Duration) / float64(baseline)
}
