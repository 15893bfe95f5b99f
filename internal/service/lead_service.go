package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"claimconnect/internal/cache"
	"claimconnect/internal/model"
)

var (
	// ErrNotQualified is returned when submission is attempted before a
	// qualifying decision exists
	ErrNotQualified = errors.New("session has not qualified")

	// ErrAlreadySubmitted is returned for repeat submissions
	ErrAlreadySubmitted = errors.New("lead already submitted")

	// ErrSubmitInFlight is returned when a concurrent submission holds
	// the session's submit lock
	ErrSubmitInFlight = errors.New("submission already in progress")
)

// ContactValidationError carries per-field validation failures
type ContactValidationError struct {
	Fields map[string]string
}

func (e *ContactValidationError) Error() string {
	return fmt.Sprintf("contact info invalid: %d field(s)", len(e.Fields))
}

// LeadSubmitter is the slice of the buyer client the lead service needs
type LeadSubmitter interface {
	SubmitLead(ctx context.Context, rec model.LeadRecord) model.APIResult
}

// LeadService orchestrates the final submission: validates the session,
// collects the consent certificate, posts to the buyer network and
// hands the accepted lead to the relay pipeline.
type LeadService struct {
	sessions   *SessionService
	guard      cache.SessionCache
	buyer      LeadSubmitter
	consent    *ConsentService
	relay      *RelayService
	tracker    *TrackerService
	simulation bool
}

// NewLeadService creates a new lead service
func NewLeadService(sessions *SessionService, guard cache.SessionCache, buyer LeadSubmitter, consent *ConsentService, relay *RelayService, tracker *TrackerService, simulation bool) *LeadService {
	return &LeadService{
		sessions:   sessions,
		guard:      guard,
		buyer:      buyer,
		consent:    consent,
		relay:      relay,
		tracker:    tracker,
		simulation: simulation,
	}
}

// SubmitResult is the outcome returned to the client
type SubmitResult struct {
	Status    string `json:"status"`
	LeadID    string `json:"leadId,omitempty"`
	Simulated bool   `json:"simulated,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Submit runs the full submission pipeline for a session
func (s *LeadService) Submit(ctx context.Context, sessionID string) (SubmitResult, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return SubmitResult{}, err
	}
	if state.Qualified == nil || !*state.Qualified {
		return SubmitResult{}, ErrNotQualified
	}
	if state.Submitted {
		return SubmitResult{}, ErrAlreadySubmitted
	}
	if fields := state.Contact.Validate(); len(fields) > 0 {
		return SubmitResult{}, &ContactValidationError{Fields: fields}
	}

	acquired, err := s.guard.AcquireSubmit(ctx, sessionID)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	if !acquired {
		return SubmitResult{}, ErrSubmitInFlight
	}

	// Take whatever certificate has arrived by now; a missing one is
	// submitted as empty and never holds up the buyer call
	if cert := s.consent.Current(ctx, sessionID); cert != "" && cert != state.TrustedFormCertURL {
		state, err = s.sessions.Update(ctx, sessionID, model.Update{TrustedFormCertURL: &cert})
		if err != nil {
			s.releaseGuard(sessionID)
			return SubmitResult{}, err
		}
	}

	rec := model.BuildLeadRecord(state, s.simulation)
	result := s.buyer.SubmitLead(ctx, rec)

	if result.Status != "success" {
		if !s.simulation {
			// Leave the session submittable; the buyer may recover
			s.releaseGuard(sessionID)
			s.tracker.TrackAsync(model.EngagementEvent{StateCode: rec.IncidentState, Action: "submit_error"})
			return SubmitResult{Status: "error", Message: result.Message}, nil
		}
		// Outside production a buyer outage should not block the funnel
		log.Printf("[Lead] simulation: coercing buyer failure to synthetic success: %s", result.Message)
		result = model.APIResult{
			Status: "success",
			Data:   map[string]any{"leadId": fmt.Sprintf("LEAD-%d", time.Now().UnixMilli())},
		}
	}

	state.Submitted = true
	if err := s.sessions.Save(ctx, state); err != nil {
		log.Printf("[Lead] WARNING: submitted but failed to persist flag: %v", err)
	}

	buyerLeadID := result.LeadID()
	if buyerLeadID == "" {
		buyerLeadID = rec.LeadID
	}

	s.tracker.TrackAsync(model.EngagementEvent{StateCode: rec.IncidentState, Action: "form_submit"})
	s.relay.ProcessAsync(rec)

	log.Printf("[Lead] submitted session %s as lead %s (buyer id %s)", sessionID, rec.LeadID, buyerLeadID)
	return SubmitResult{Status: "success", LeadID: buyerLeadID, Simulated: s.simulation}, nil
}

func (s *LeadService) releaseGuard(sessionID string) {
	if err := s.guard.ReleaseSubmit(context.Background(), sessionID); err != nil {
		log.Printf("[Lead] WARNING: failed to release submit lock: %v", err)
	}
}
