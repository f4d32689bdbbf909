package platform

import (
	"log"
	"strings"
	"sync"
	"time"
)

// DefaultPresentationProcesses lists process names treated as active
// presentations when found running.
var DefaultPresentationProcesses = []string{
	"keynote",
	"powerpnt",
	"soffice.bin",
	"libreoffice",
	"impress",
	"obs",
	"zoom",
	"teams",
}

// PresentationDetector polls the process table for known presentation
// applications and exposes whether one is currently running.
type PresentationDetector struct {
	mu        sync.Mutex
	processes []string
	interval  time.Duration
	active    bool
	stopCh    chan struct{}
	running   bool
}

// NewPresentationDetector creates a detector watching the given process
// names. Pass nil to watch the default set.
func NewPresentationDetector(processes []string, interval time.Duration) *PresentationDetector {
	if len(processes) == 0 {
		processes = DefaultPresentationProcesses
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	lowered := make([]string, len(processes))
	for i, name := range processes {
		lowered[i] = strings.ToLower(name)
	}
	return &PresentationDetector{
		processes: lowered,
		interval:  interval,
	}
}

// Start begins background polling. Calling Start twice is a no-op.
func (detector *PresentationDetector) Start() {
	detector.mu.Lock()
	if detector.running {
		detector.mu.Unlock()
		return
	}
	detector.running = true
	detector.stopCh = make(chan struct{})
	stopCh := detector.stopCh
	detector.mu.Unlock()

	go detector.poll(stopCh)
}

// Stop halts background polling.
func (detector *PresentationDetector) Stop() {
	detector.mu.Lock()
	defer detector.mu.Unlock()
	if !detector.running {
		return
	}
	detector.running = false
	close(detector.stopCh)
}

// Active reports whether a watched presentation process was seen on the
// most recent poll.
func (detector *PresentationDetector) Active() bool {
	detector.mu.Lock()
	defer detector.mu.Unlock()
	return detector.active
}

func (detector *PresentationDetector) poll(stopCh chan struct{}) {
	detector.check()
	ticker := time.NewTicker(detector.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			detector.check()
		case <-stopCh:
			return
		}
	}
}

func (detector *PresentationDetector) check() {
	names, err := listProcessNames()
	if err != nil {
		log.Printf("presentation check failed: %v", err)
		return
	}

	found := false
	for _, name := range names {
		lowered := strings.ToLower(name)
		for _, watched := range detector.processes {
			if strings.Contains(lowered, watched) {
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	detector.mu.Lock()
	detector.active = found
	detector.mu.Unlock()
}
