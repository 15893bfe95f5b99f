package service

import (
	"context"
	"log"
	"sync"
	"time"

	"claimconnect/internal/client"
	"claimconnect/internal/model"
)

// BreakerState is the tracker's circuit breaker position
type BreakerState int

const (
	// Armed means events are forwarded to the collector
	Armed BreakerState = iota
	// TrippedOpen means the collector rejected an event and forwarding
	// is disabled for the life of this tracker
	TrippedOpen
)

// EventRecorder is the slice of the analytics client the tracker needs
type EventRecorder interface {
	Record(ctx context.Context, ev model.EngagementEvent) error
}

// TrackerService forwards engagement events with a one-way circuit
// breaker: the first non-timeout failure disables the collector so a
// broken analytics backend never degrades the funnel.
type TrackerService struct {
	recorder   EventRecorder
	timeout    time.Duration
	simulation bool

	mu    sync.Mutex
	state BreakerState
}

// NewTrackerService creates a new tracker. In simulation events are
// logged locally and never reach the collector.
func NewTrackerService(recorder EventRecorder, simulation bool) *TrackerService {
	return &TrackerService{
		recorder:   recorder,
		timeout:    3 * time.Second,
		simulation: simulation,
		state:      Armed,
	}
}

// State returns the current breaker position
func (s *TrackerService) State() BreakerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Track records one event. Returns status "success", "skipped" (breaker
// open) or "error". Timeouts do not trip the breaker; the collector may
// just be slow.
func (s *TrackerService) Track(ctx context.Context, ev model.EngagementEvent) model.APIResult {
	if s.simulation {
		log.Printf("[Tracker] simulation: %s %s", ev.Action, ev.StateCode)
		return model.APIResult{Status: "success", Message: "simulation"}
	}

	s.mu.Lock()
	if s.state == TrippedOpen {
		s.mu.Unlock()
		return model.APIResult{Status: "skipped", Message: "analytics disabled after earlier failure"}
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.recorder.Record(ctx, ev)
	if err == nil {
		return model.APIResult{Status: "success"}
	}

	if client.IsTimeout(err) {
		log.Printf("[Tracker] collector timeout (state=%s action=%s): %v", ev.StateCode, ev.Action, err)
		return model.APIResult{Status: "error", Message: err.Error()}
	}

	s.mu.Lock()
	s.state = TrippedOpen
	s.mu.Unlock()
	log.Printf("[Tracker] collector failure, disabling analytics: %v", err)
	return model.APIResult{Status: "error", Message: err.Error()}
}

// TrackAsync records an event in the background, detached from the
// request lifecycle
func (s *TrackerService) TrackAsync(ev model.EngagementEvent) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Tracker] PANIC in async track: %v", r)
			}
		}()
		s.Track(context.Background(), ev)
	}()
}
