package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains animation timing values. Appear and Depart are expressed
// against the baseline envelope and scaled when a run uses a different one.
type Config struct {
	BaselineEnvelope time.Duration
	AppearDuration   time.Duration
	DepartDuration   time.Duration
	CountdownStep    time.Duration
}

// Engine runs time-based animation sequences for the overlay windows. One
// sequence is active at a time; starting a new one cancels the previous.
type Engine struct {
	mu     sync.Mutex
	config Config
	cancel context.CancelFunc
}

// New creates a new animation engine.
func New(config Config) *Engine {
	if config.CountdownStep <= 0 {
		config.CountdownStep = time.Second
	}
	return &Engine{config: config}
}

// StartTransient walks the mini-overlay through its appear/hold/depart
// phases, invoking onPhase at each boundary. PhaseDone is always delivered
// last unless the run is cancelled.
func (engine *Engine) StartTransient(ctx context.Context, spec TransientSpec, onPhase func(Phase)) {
	multiplier := spec.Multiplier(engine.config.BaselineEnvelope)
	appear := scale(engine.config.AppearDuration, multiplier)
	depart := scale(engine.config.DepartDuration, multiplier)
	hold := spec.Duration - appear - depart
	if hold < 0 {
		hold = 0
	}
	hold += spec.Hold

	engine.start(ctx, func(runCtx context.Context) {
		onPhase(PhaseAppear)
		if !sleepWithContext(runCtx, appear) {
			return
		}
		onPhase(PhaseHold)
		if !sleepWithContext(runCtx, hold) {
			return
		}
		onPhase(PhaseDepart)
		if !sleepWithContext(runCtx, depart) {
			return
		}
		onPhase(PhaseDone)
	})
}

// StartCountdown ticks down from remaining, invoking onTick once per step
// with the value left, until zero or cancellation.
func (engine *Engine) StartCountdown(ctx context.Context, remaining time.Duration, onTick func(time.Duration)) {
	step := engine.config.CountdownStep
	engine.start(ctx, func(runCtx context.Context) {
		for remaining > 0 {
			onTick(remaining)
			if !sleepWithContext(runCtx, step) {
				return
			}
			remaining -= step
		}
		onTick(0)
	})
}

// Stop terminates any active sequence.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func scale(value time.Duration, multiplier float64) time.Duration {
	return time.Duration(float64(value) * multiplier)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
