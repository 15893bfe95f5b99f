package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"claimconnect/internal/client"
	"claimconnect/internal/model"
	"claimconnect/internal/repository"
)

// CertClaimer is the slice of the consent vendor the relay needs
type CertClaimer interface {
	Claim(ctx context.Context, certURL string, rec model.LeadRecord) error
	IsConfigured() bool
}

// CallEnricher pushes accepted leads to the call routing platform
type CallEnricher interface {
	Enrich(ctx context.Context, p client.EnrichParams) model.APIResult
}

// RelayService is the ingestion pipeline for accepted leads: archive
// the raw payload, persist the structured lead, claim its consent
// certificate and forward it for call transfer. The last two steps are
// best-effort; an archived lead is never lost to a vendor outage.
type RelayService struct {
	leads    repository.LeadRepository
	archive  repository.ArchiveRepository
	claimer  CertClaimer
	enricher CallEnricher
}

// NewRelayService creates a new relay service
func NewRelayService(leads repository.LeadRepository, archive repository.ArchiveRepository, claimer CertClaimer, enricher CallEnricher) *RelayService {
	return &RelayService{
		leads:    leads,
		archive:  archive,
		claimer:  claimer,
		enricher: enricher,
	}
}

// Process runs the relay pipeline for one lead
func (s *RelayService) Process(ctx context.Context, rec model.LeadRecord) (model.RelayResult, error) {
	if rec.LeadID == "" {
		rec.LeadID = model.NewLeadID()
	}

	raw := map[string]any{}
	if data, err := json.Marshal(rec); err == nil {
		_ = json.Unmarshal(data, &raw)
	}
	path, err := s.archive.Put(ctx, rec.LeadID, raw)
	if err != nil {
		return model.RelayResult{}, fmt.Errorf("failed to archive lead: %w", err)
	}
	log.Printf("[Relay] archived lead %s at %s", rec.LeadID, path)

	lead := &model.Lead{
		LeadID:        rec.LeadID,
		FirstName:     rec.FirstName,
		LastName:      rec.LastName,
		Mobile:        rec.Mobile,
		Email:         rec.Email,
		IncidentState: rec.IncidentState,
		IncidentDate:  rec.IncidentDate,
		SourceID:      rec.SourceID,
		IsTest:        rec.IsTest,
		CertURL:       rec.TrustedFormCertURL,
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return model.RelayResult{}, fmt.Errorf("failed to persist lead: %w", err)
	}

	if rec.TrustedFormCertURL != "" && s.claimer.IsConfigured() {
		if err := s.claimer.Claim(ctx, rec.TrustedFormCertURL, rec); err != nil {
			log.Printf("[Relay] certificate claim failed for lead %s: %v", rec.LeadID, err)
		} else if err := s.leads.MarkCertClaimed(ctx, rec.LeadID); err != nil {
			log.Printf("[Relay] WARNING: failed to record cert claim: %v", err)
		}
	}

	result := s.enricher.Enrich(ctx, client.EnrichParams{
		IsTest:          rec.IsTest,
		CallerID:        rec.Mobile,
		SourceID:        rec.SourceID,
		IncidentState:   rec.IncidentState,
		IncidentDateISO: rec.IncidentDate,
		ClaimantName:    rec.FirstName + " " + rec.LastName,
		ClaimantEmail:   rec.Email,
		CertURL:         rec.TrustedFormCertURL,
		PubID:           rec.PubID,
	})
	if result.Status == "success" {
		if err := s.leads.MarkForwarded(ctx, rec.LeadID); err != nil {
			log.Printf("[Relay] WARNING: failed to record forward: %v", err)
		}
	} else if result.Status == "error" {
		log.Printf("[Relay] call transfer forward failed for lead %s: %s", rec.LeadID, result.Message)
	}

	return model.RelayResult{Message: "Lead processed successfully", LeadID: rec.LeadID}, nil
}

// ProcessAsync runs the pipeline detached from the request that
// produced the lead
func (s *RelayService) ProcessAsync(rec model.LeadRecord) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Relay] PANIC processing lead %s: %v", rec.LeadID, r)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := s.Process(ctx, rec); err != nil {
			log.Printf("[Relay] ERROR processing lead %s: %v", rec.LeadID, err)
		}
	}()
}
