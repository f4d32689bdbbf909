// Package reminders holds the tick-driven reminder engine: one independent
// state machine per reminder kind, driven once per second from a single
// scheduler loop.
package reminders

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"restwatch/internal/core/gate"
	"restwatch/internal/core/model"
)

// OverlaySink presents overlay content. Implemented by the overlay
// coordinator; it owns the replace-not-stack rule and the final gate check.
type OverlaySink interface {
	ShowBlocking(decision model.FireDecision, isPreview bool) bool
	ShowTransient(decision model.FireDecision, isPreview bool) bool
	Active() bool
}

// NotificationSink delivers plain system notifications, best effort.
type NotificationSink interface {
	Send(title, body string) error
}

// SoundSink plays the reminder chime, best effort.
type SoundSink interface {
	Play(cfg model.SoundConfig)
}

// Options contains runtime options for the Scheduler.
type Options struct {
	TickInterval            time.Duration
	PersistentCheckInterval time.Duration
}

// Scheduler drives every reminder state machine from a single one-second
// tick loop. All collaborators are injected at construction; the scheduler
// holds no ambient global state.
type Scheduler struct {
	mu       sync.Mutex
	snapshot func() model.Config
	signal   func() gate.Signal
	overlay  OverlaySink
	notify   NotificationSink
	sound    SoundSink
	options  Options

	eyeStrain   countdown
	miniOverlay countdown
	bedtime     bedtimeState
	clockOut    clockOutState

	events  []chan Event
	stopCh  chan struct{}
	running bool
	cron    gocron.Scheduler
}

// New creates a Scheduler with the provided collaborators.
func New(snapshot func() model.Config, signal func() gate.Signal, overlay OverlaySink, notify NotificationSink, sound SoundSink, options Options) *Scheduler {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.PersistentCheckInterval <= 0 {
		options.PersistentCheckInterval = 2 * time.Second
	}

	cfg := snapshot()
	return &Scheduler{
		snapshot:    snapshot,
		signal:      signal,
		overlay:     overlay,
		notify:      notify,
		sound:       sound,
		options:     options,
		eyeStrain:   newCountdown(cfg.EyeStrain.Interval),
		miniOverlay: newCountdown(cfg.MiniOverlay.Interval),
		stopCh:      make(chan struct{}),
	}
}

// Subscribe registers a new observer channel.
func (s *Scheduler) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	s.mu.Lock()
	s.events = append(s.events, ch)
	s.mu.Unlock()
	return ch
}

// Start launches the ticking loop and the low-frequency persistent bedtime
// check.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.startPersistentBedtime()
	go s.run()
}

// Stop terminates the ticking loop and closes observers.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	close(s.stopCh)
	s.running = false
	events := s.events
	s.events = nil
	cron := s.cron
	s.cron = nil
	s.mu.Unlock()

	if cron != nil {
		if err := cron.Shutdown(); err != nil {
			log.Printf("stop persistent bedtime check: %v", err)
		}
	}
	for _, ch := range events {
		close(ch)
	}
}

// ResetCountdowns restores every interval countdown to its full configured
// period. Bound to a menu action; independent of tick timing.
func (s *Scheduler) ResetCountdowns() {
	s.mu.Lock()
	s.eyeStrain.reset()
	s.miniOverlay.reset()
	s.mu.Unlock()
}

// Preview presents the given kind immediately, bypassing suppression. The
// coordinator's replace-not-stack rule still applies.
func (s *Scheduler) Preview(kind model.ReminderKind) {
	cfg := s.snapshot()
	switch kind {
	case model.KindEyeStrain:
		s.overlay.ShowBlocking(eyeStrainDecision(cfg), true)
	case model.KindBedtime:
		s.overlay.ShowBlocking(bedtimeDecision(cfg), true)
	case model.KindMiniOverlay:
		s.overlay.ShowTransient(miniOverlayDecision(cfg), true)
	case model.KindClockOut:
		decision := clockOutMainDecision(cfg, time.Now())
		if decision.UsesOverlay {
			s.overlay.ShowBlocking(decision, true)
		} else if err := s.notify.Send(decision.Title, decision.Message); err != nil {
			log.Printf("clock-out preview notification: %v", err)
		}
	}
}

func (s *Scheduler) run() {
	ticker := time.NewTicker(s.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case tickTime := <-ticker.C:
			s.tick(tickTime)
		}
	}
}

// tick runs one evaluation cycle. The configuration is read exactly once and
// used consistently by all state machines for the whole tick.
func (s *Scheduler) tick(now time.Time) {
	cfg := s.snapshot()
	allowed := gate.MayFire(s.signal(), false)
	paused := s.overlay.Active()

	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}

	var decisions []model.FireDecision

	s.evaluateKind("eye strain", func() {
		if cfg.EyeStrain.Enabled && s.eyeStrain.tick(cfg.EyeStrain.Interval, paused) {
			decisions = append(decisions, eyeStrainDecision(cfg))
		}
	})
	s.evaluateKind("mini overlay", func() {
		if cfg.MiniOverlay.Enabled && s.miniOverlay.tick(cfg.MiniOverlay.Interval, paused) {
			decisions = append(decisions, miniOverlayDecision(cfg))
		}
	})
	s.evaluateKind("bedtime", func() {
		if s.bedtime.tick(cfg.Bedtime, now) {
			decisions = append(decisions, bedtimeDecision(cfg))
		}
	})
	s.evaluateKind("clock out", func() {
		switch s.clockOut.tick(cfg.ClockOut, now) {
		case clockOutMain:
			decisions = append(decisions, clockOutMainDecision(cfg, now))
		case clockOutReminder:
			decisions = append(decisions, clockOutReminderDecision())
		}
	})

	countdowns := s.countdownsLocked(cfg, now)
	s.mu.Unlock()

	for _, decision := range decisions {
		s.deliver(decision, cfg, allowed, now)
	}
	s.emit(Event{Type: EventProgress, Countdowns: countdowns, At: now})
}

// evaluateKind isolates one kind's evaluation so a panic in one machine
// cannot suppress the others firing in the same tick.
func (s *Scheduler) evaluateKind(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("reminder evaluation %s: %v", name, r)
		}
	}()
	fn()
}

func (s *Scheduler) deliver(decision model.FireDecision, cfg model.Config, allowed bool, now time.Time) {
	if !allowed {
		s.emit(Event{Type: EventSuppressed, Kind: decision.Kind, At: now})
		return
	}

	if !decision.UsesOverlay {
		if err := s.notify.Send(decision.Title, decision.Message); err != nil {
			log.Printf("send %s notification: %v", decision.Kind, err)
		}
		s.emit(Event{Type: EventFire, Kind: decision.Kind, At: now})
		return
	}

	var shown bool
	if decision.Kind == model.KindMiniOverlay {
		shown = s.overlay.ShowTransient(decision, false)
	} else {
		shown = s.overlay.ShowBlocking(decision, false)
	}
	if shown {
		s.sound.Play(cfg.Sound)
		s.emit(Event{Type: EventFire, Kind: decision.Kind, At: now})
	}
}

func (s *Scheduler) countdownsLocked(cfg model.Config, now time.Time) Countdowns {
	var countdowns Countdowns
	if cfg.EyeStrain.Enabled {
		countdowns.EyeStrain = FormatCountdown(s.eyeStrain.remaining)
	}
	if cfg.MiniOverlay.Enabled {
		countdowns.MiniOverlay = FormatCountdown(s.miniOverlay.remaining)
	}
	if cfg.Bedtime.Enabled && cfg.Bedtime.Range.Valid() {
		countdowns.Bedtime = FormatCountdown(cfg.Bedtime.Range.UntilStart(now))
	}
	if cfg.ClockOut.Enabled && cfg.ClockOut.Time.Valid() {
		countdowns.ClockOut = FormatCountdown(cfg.ClockOut.Time.UntilNext(now))
	}
	return countdowns
}

func (s *Scheduler) startPersistentBedtime() {
	cron, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("create persistent bedtime scheduler: %v", err)
		return
	}
	_, err = cron.NewJob(
		gocron.DurationJob(s.options.PersistentCheckInterval),
		gocron.NewTask(s.persistentBedtimeCheck),
	)
	if err != nil {
		log.Printf("schedule persistent bedtime check: %v", err)
		return
	}
	cron.Start()

	s.mu.Lock()
	s.cron = cron
	s.mu.Unlock()
}

// persistentBedtimeCheck re-asserts the bedtime overlay while inside the
// range. It never fires while a blocking overlay from any kind is already
// showing, and is a supplement to the primary bedtime logic, not a
// replacement.
func (s *Scheduler) persistentBedtimeCheck() {
	cfg := s.snapshot()
	if !cfg.Bedtime.Enabled || !cfg.Bedtime.Persistent {
		return
	}
	if s.overlay.Active() {
		return
	}
	if !gate.MayFire(s.signal(), false) {
		return
	}

	now := time.Now()
	s.mu.Lock()
	inRange := s.bedtime.inRange(cfg.Bedtime, now)
	s.mu.Unlock()
	if !inRange {
		return
	}

	if s.overlay.ShowBlocking(bedtimeDecision(cfg), false) {
		s.sound.Play(cfg.Sound)
		s.emit(Event{Type: EventFire, Kind: model.KindBedtime, At: now})
	}
}

func (s *Scheduler) emit(event Event) {
	s.mu.Lock()
	events := append([]chan Event(nil), s.events...)
	s.mu.Unlock()
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}

func eyeStrainDecision(cfg model.Config) model.FireDecision {
	return model.FireDecision{
		Kind:         model.KindEyeStrain,
		Title:        cfg.EyeStrain.Title,
		Message:      cfg.EyeStrain.Message,
		DismissAfter: cfg.EyeStrain.DismissAfter,
		AutoDismiss:  true,
		Dismissable:  cfg.ClickToDismiss,
		UsesOverlay:  true,
	}
}

func bedtimeDecision(cfg model.Config) model.FireDecision {
	return model.FireDecision{
		Kind:         model.KindBedtime,
		Title:        cfg.Bedtime.Title,
		Message:      cfg.Bedtime.Message,
		DismissAfter: cfg.Bedtime.DismissAfter,
		AutoDismiss:  cfg.Bedtime.AutoDismiss,
		Dismissable:  cfg.ClickToDismiss,
		UsesOverlay:  true,
	}
}

func miniOverlayDecision(cfg model.Config) model.FireDecision {
	return model.FireDecision{
		Kind:         model.KindMiniOverlay,
		Title:        cfg.MiniOverlay.Text,
		Message:      cfg.MiniOverlay.Text,
		Icon:         cfg.MiniOverlay.Icon,
		DismissAfter: cfg.MiniOverlay.Duration,
		HoldDuration: cfg.MiniOverlay.HoldDuration,
		AutoDismiss:  true,
		Dismissable:  false,
		UsesOverlay:  true,
	}
}

func clockOutMainDecision(cfg model.Config, now time.Time) model.FireDecision {
	if !cfg.ClockOut.UseOverlay {
		return model.FireDecision{
			Kind:        model.KindClockOut,
			Title:       "Clock Out",
			Message:     "It's time to clock out!",
			UsesOverlay: false,
		}
	}
	return model.FireDecision{
		Kind:         model.KindClockOut,
		Title:        "Time to clock out",
		Message:      fmt.Sprintf("The time is %s", now.Format("15:04")),
		DismissAfter: 5 * time.Second,
		AutoDismiss:  true,
		Dismissable:  cfg.ClickToDismiss,
		UsesOverlay:  true,
	}
}

func clockOutReminderDecision() model.FireDecision {
	return model.FireDecision{
		Kind:        model.KindClockOut,
		Title:       "Clock Out Reminder",
		Message:     "Don't forget to clock out!",
		UsesOverlay: false,
	}
}
