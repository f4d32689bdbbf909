// Package overlay owns the lifecycle of reminder overlays: at most one
// blocking overlay and one transient mini-overlay at a time, with stale
// delayed dismissals rejected by generation token.
package overlay

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"restwatch/internal/core/model"
)

// DismissReason records why an overlay went away.
type DismissReason string

const (
	DismissTimeout  DismissReason = "timeout"
	DismissManual   DismissReason = "manual"
	DismissReplaced DismissReason = "replaced"
)

// Dismissal is emitted when a blocking overlay is torn down.
type Dismissal struct {
	ID     uuid.UUID
	Kind   model.ReminderKind
	Reason DismissReason
	At     time.Time
}

// Presenter renders overlay content on screen. The coordinator decides when;
// the presenter decides how.
type Presenter interface {
	ShowBlocking(decision model.FireDecision)
	HideBlocking()
	ShowTransient(decision model.FireDecision)
	HideTransient()
}

// Coordinator exclusively owns the currently displayed overlays. No other
// component opens or closes overlay windows directly.
type Coordinator struct {
	mu        sync.Mutex
	presenter Presenter
	mayFire   func(isPreview bool) bool

	blockingID     uuid.UUID
	blockingKind   model.ReminderKind
	blockingTimer  *time.Timer
	transientID    uuid.UUID
	transientTimer *time.Timer

	subscribers []chan Dismissal
}

// New creates a Coordinator. mayFire is consulted before every presentation;
// a nil func admits everything.
func New(presenter Presenter, mayFire func(isPreview bool) bool) *Coordinator {
	if mayFire == nil {
		mayFire = func(bool) bool { return true }
	}
	return &Coordinator{presenter: presenter, mayFire: mayFire}
}

// Subscribe registers a dismissal observer channel.
func (c *Coordinator) Subscribe(buffer int) <-chan Dismissal {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Dismissal, buffer)
	c.mu.Lock()
	c.subscribers = append(c.subscribers, ch)
	c.mu.Unlock()
	return ch
}

// ShowBlocking presents a blocking overlay, tearing down any previous one
// first. Returns false when suppressed (and not a preview); the overlay was
// not shown.
func (c *Coordinator) ShowBlocking(decision model.FireDecision, isPreview bool) bool {
	if !c.mayFire(isPreview) {
		return false
	}

	c.mu.Lock()
	if c.blockingID != uuid.Nil {
		c.teardownBlockingLocked(DismissReplaced)
	}

	id := uuid.New()
	c.blockingID = id
	c.blockingKind = decision.Kind
	c.presenter.ShowBlocking(decision)

	if decision.AutoDismiss && decision.DismissAfter > 0 {
		c.blockingTimer = time.AfterFunc(decision.DismissAfter, func() {
			c.dismissGeneration(id, DismissTimeout)
		})
	}
	c.mu.Unlock()
	return true
}

// ShowTransient presents a transient mini-overlay. Transients never block
// further firing and do not affect Active.
func (c *Coordinator) ShowTransient(decision model.FireDecision, isPreview bool) bool {
	if !c.mayFire(isPreview) {
		return false
	}

	lifetime := decision.DismissAfter + decision.HoldDuration
	if lifetime <= 0 {
		lifetime = 3 * time.Second
	}

	c.mu.Lock()
	if c.transientID != uuid.Nil {
		c.teardownTransientLocked()
	}

	id := uuid.New()
	c.transientID = id
	c.presenter.ShowTransient(decision)
	c.transientTimer = time.AfterFunc(lifetime, func() {
		c.mu.Lock()
		if c.transientID == id {
			c.teardownTransientLocked()
		}
		c.mu.Unlock()
	})
	c.mu.Unlock()
	return true
}

// DismissBlocking tears down the current blocking overlay, if any. Used by
// the dismiss click, menu action and hotkey paths.
func (c *Coordinator) DismissBlocking(reason DismissReason) {
	c.mu.Lock()
	if c.blockingID != uuid.Nil {
		c.teardownBlockingLocked(reason)
	}
	c.mu.Unlock()
}

// DismissAll tears down both overlays.
func (c *Coordinator) DismissAll() {
	c.mu.Lock()
	if c.blockingID != uuid.Nil {
		c.teardownBlockingLocked(DismissManual)
	}
	if c.transientID != uuid.Nil {
		c.teardownTransientLocked()
	}
	c.mu.Unlock()
}

// Active reports whether a blocking overlay is currently showing. The
// scheduler reads this every tick to pause interval countdowns.
func (c *Coordinator) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.blockingID != uuid.Nil
}

// dismissGeneration tears down the blocking overlay only when it still is
// the one the delayed task was scheduled for. A timer racing a replacement
// finds a different id and becomes a no-op.
func (c *Coordinator) dismissGeneration(id uuid.UUID, reason DismissReason) {
	c.mu.Lock()
	if c.blockingID == id {
		c.teardownBlockingLocked(reason)
	}
	c.mu.Unlock()
}

func (c *Coordinator) teardownBlockingLocked(reason DismissReason) {
	if c.blockingTimer != nil {
		c.blockingTimer.Stop()
		c.blockingTimer = nil
	}
	dismissal := Dismissal{
		ID:     c.blockingID,
		Kind:   c.blockingKind,
		Reason: reason,
		At:     time.Now(),
	}
	c.blockingID = uuid.Nil
	c.blockingKind = ""
	c.presenter.HideBlocking()
	c.emitLocked(dismissal)
}

func (c *Coordinator) teardownTransientLocked() {
	if c.transientTimer != nil {
		c.transientTimer.Stop()
		c.transientTimer = nil
	}
	c.transientID = uuid.Nil
	c.presenter.HideTransient()
}

func (c *Coordinator) emitLocked(dismissal Dismissal) {
	for _, ch := range c.subscribers {
		select {
		case ch <- dismissal:
		default:
		}
	}
}
