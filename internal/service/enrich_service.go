package service

import (
	"context"
	"log"
	"time"

	"claimconnect/internal/client"
	"claimconnect/internal/model"
)

// CallInfo is what the client needs to place the call
type CallInfo struct {
	TelURL   string `json:"telUrl"`
	Number   string `json:"number"`
	Enriched bool   `json:"enriched"`
}

// EnrichService prepares click-to-call: it pushes the session's answers
// to the call routing platform so the agent sees context, then hands
// back the dial target. The dial target never waits on enrichment.
type EnrichService struct {
	sessions   *SessionService
	enricher   CallEnricher
	tracker    *TrackerService
	callCenter string
	simulation bool
}

// NewEnrichService creates a new enrich service
func NewEnrichService(sessions *SessionService, enricher CallEnricher, tracker *TrackerService, callCenter string, simulation bool) *EnrichService {
	return &EnrichService{
		sessions:   sessions,
		enricher:   enricher,
		tracker:    tracker,
		callCenter: callCenter,
		simulation: simulation,
	}
}

// PrepareCall returns the dial target immediately and enriches in the
// background. Enrichment only fires once the funnel has the minimum
// context an agent can use: an accident date and a jurisdiction.
func (s *EnrichService) PrepareCall(ctx context.Context, sessionID string) (CallInfo, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return CallInfo{}, err
	}

	info := CallInfo{
		TelURL: "tel:" + s.callCenter,
		Number: s.callCenter,
	}

	if state.Answers.Date("accidentDate") == "" || state.IncidentState == "" {
		log.Printf("[Enrich] session %s lacks call context, dialing without enrichment", sessionID)
		return info, nil
	}

	info.Enriched = true
	s.tracker.TrackAsync(model.EngagementEvent{StateCode: state.IncidentState, Action: "call"})

	params := client.EnrichParams{
		IsTest:          s.simulation,
		CallerID:        state.CallerID,
		SourceID:        state.SourceID,
		IncidentState:   state.IncidentState,
		IncidentDateISO: state.Answers.Date("accidentDate"),
		AtFault:         state.Answers.Choice("atFault") == "yes",
		Attorney:        state.Answers.Choice("hasAttorney") == "yes",
		Settlement:      state.Answers.Bool("priorSettlement"),
		ClaimantName:    state.ClaimantName,
		ClaimantEmail:   state.ClaimantEmail,
		CertURL:         state.TrustedFormCertURL,
		PubID:           state.PubID,
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Enrich] PANIC enriching session %s: %v", sessionID, r)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if result := s.enricher.Enrich(ctx, params); result.Status == "error" {
			log.Printf("[Enrich] enrichment failed for session %s: %s", sessionID, result.Message)
		}
	}()

	return info, nil
}
