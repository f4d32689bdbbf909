package overlay

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"restwatch/internal/core/model"
)

type fakePresenter struct {
	mu             sync.Mutex
	blockingShown  []model.FireDecision
	blockingHidden int
	transientShown []model.FireDecision
	transientHides int
}

func (f *fakePresenter) ShowBlocking(decision model.FireDecision) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blockingShown = append(f.blockingShown, decision)
}

func (f *fakePresenter) HideBlocking() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blockingHidden++
}

func (f *fakePresenter) ShowTransient(decision model.FireDecision) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transientShown = append(f.transientShown, decision)
}

func (f *fakePresenter) HideTransient() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transientHides++
}

func (f *fakePresenter) counts() (shown, hidden int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.blockingShown), f.blockingHidden
}

func blockingDecision(kind model.ReminderKind) model.FireDecision {
	return model.FireDecision{
		Kind:        kind,
		Title:       "title",
		AutoDismiss: false,
		UsesOverlay: true,
	}
}

func TestCoordinatorShowsBlocking(t *testing.T) {
	presenter := &fakePresenter{}
	c := New(presenter, nil)

	assert.True(t, c.ShowBlocking(blockingDecision(model.KindEyeStrain), false))
	assert.True(t, c.Active())
	shown, hidden := presenter.counts()
	assert.Equal(t, 1, shown)
	assert.Equal(t, 0, hidden)
}

func TestCoordinatorReplacesNeverStacks(t *testing.T) {
	presenter := &fakePresenter{}
	c := New(presenter, nil)
	dismissals := c.Subscribe(4)

	c.ShowBlocking(blockingDecision(model.KindEyeStrain), false)
	c.ShowBlocking(blockingDecision(model.KindBedtime), false)

	shown, hidden := presenter.counts()
	assert.Equal(t, 2, shown)
	assert.Equal(t, 1, hidden, "previous overlay torn down before the next")
	assert.True(t, c.Active())

	dismissal := <-dismissals
	assert.Equal(t, model.KindEyeStrain, dismissal.Kind)
	assert.Equal(t, DismissReplaced, dismissal.Reason)
}

func TestCoordinatorSuppressedShowIsNoOp(t *testing.T) {
	presenter := &fakePresenter{}
	c := New(presenter, func(isPreview bool) bool { return isPreview })

	assert.False(t, c.ShowBlocking(blockingDecision(model.KindEyeStrain), false))
	assert.False(t, c.Active())
	shown, _ := presenter.counts()
	assert.Equal(t, 0, shown)

	assert.True(t, c.ShowBlocking(blockingDecision(model.KindEyeStrain), true), "preview bypasses the gate")
}

func TestCoordinatorAutoDismiss(t *testing.T) {
	presenter := &fakePresenter{}
	c := New(presenter, nil)
	dismissals := c.Subscribe(4)

	decision := blockingDecision(model.KindEyeStrain)
	decision.AutoDismiss = true
	decision.DismissAfter = 20 * time.Millisecond
	c.ShowBlocking(decision, false)

	select {
	case dismissal := <-dismissals:
		assert.Equal(t, DismissTimeout, dismissal.Reason)
	case <-time.After(time.Second):
		t.Fatal("auto dismiss never happened")
	}
	assert.False(t, c.Active())
}

func TestCoordinatorStaleTimerIsNoOp(t *testing.T) {
	presenter := &fakePresenter{}
	c := New(presenter, nil)
	dismissals := c.Subscribe(4)

	first := blockingDecision(model.KindEyeStrain)
	first.AutoDismiss = true
	first.DismissAfter = 20 * time.Millisecond
	c.ShowBlocking(first, false)

	// Replace before the first timer fires; its delayed dismissal must not
	// tear down the successor.
	second := blockingDecision(model.KindBedtime)
	c.ShowBlocking(second, false)

	dismissal := <-dismissals
	assert.Equal(t, DismissReplaced, dismissal.Reason)

	time.Sleep(60 * time.Millisecond)
	assert.True(t, c.Active(), "successor survived the stale timer")

	select {
	case unexpected := <-dismissals:
		t.Fatalf("stale timer dismissed the successor: %+v", unexpected)
	default:
	}
}

func TestCoordinatorManualDismissCancelsTimer(t *testing.T) {
	presenter := &fakePresenter{}
	c := New(presenter, nil)
	dismissals := c.Subscribe(4)

	decision := blockingDecision(model.KindBedtime)
	decision.AutoDismiss = true
	decision.DismissAfter = 30 * time.Millisecond
	c.ShowBlocking(decision, false)

	c.DismissBlocking(DismissManual)
	dismissal := <-dismissals
	assert.Equal(t, DismissManual, dismissal.Reason)

	time.Sleep(60 * time.Millisecond)
	select {
	case unexpected := <-dismissals:
		t.Fatalf("cancelled timer still fired: %+v", unexpected)
	default:
	}
}

func TestCoordinatorTransientDoesNotBlock(t *testing.T) {
	presenter := &fakePresenter{}
	c := New(presenter, nil)

	transient := model.FireDecision{
		Kind:         model.KindMiniOverlay,
		DismissAfter: time.Minute,
		UsesOverlay:  true,
	}
	assert.True(t, c.ShowTransient(transient, false))
	assert.False(t, c.Active(), "transients never pause the scheduler")

	assert.True(t, c.ShowBlocking(blockingDecision(model.KindEyeStrain), false))
	assert.True(t, c.Active())
}

func TestCoordinatorDismissAll(t *testing.T) {
	presenter := &fakePresenter{}
	c := New(presenter, nil)

	c.ShowBlocking(blockingDecision(model.KindEyeStrain), false)
	c.ShowTransient(model.FireDecision{Kind: model.KindMiniOverlay, DismissAfter: time.Minute}, false)

	c.DismissAll()

	assert.False(t, c.Active())
	presenter.mu.Lock()
	defer presenter.mu.Unlock()
	assert.Equal(t, 1, presenter.blockingHidden)
	assert.Equal(t, 1, presenter.transientHides)
}

func TestCoordinatorDismissWithoutOverlayIsNoOp(t *testing.T) {
	presenter := &fakePresenter{}
	c := New(presenter, nil)

	c.DismissBlocking(DismissManual)
	c.DismissAll()

	_, hidden := presenter.counts()
	assert.Equal(t, 0, hidden)
}
