package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"claimconnect/internal/config"
	"claimconnect/internal/model"
)

// CertificateProvider yields the consent certificate for a session once
// the visitor's page has produced one
type CertificateProvider interface {
	Certificate(ctx context.Context, sessionID string) (string, error)
}

// ConsentService manages consent certificate capture. Clients post the
// certificate URL their page was issued; Await gives slow pages a
// bounded window to do so before submission proceeds without one.
type ConsentService struct {
	cfg        config.TrustedFormConfig
	sessions   *SessionService
	provider   CertificateProvider
	simulation bool
}

// NewConsentService creates a new consent service. A nil provider polls
// the session store.
func NewConsentService(cfg config.TrustedFormConfig, sessions *SessionService, provider CertificateProvider, simulation bool) *ConsentService {
	s := &ConsentService{
		cfg:        cfg,
		sessions:   sessions,
		simulation: simulation,
	}
	if provider == nil {
		provider = &sessionCertProvider{sessions: sessions}
	}
	s.provider = provider
	return s
}

type sessionCertProvider struct {
	sessions *SessionService
}

func (p *sessionCertProvider) Certificate(ctx context.Context, sessionID string) (string, error) {
	state, err := p.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return state.TrustedFormCertURL, nil
}

// Accept records the certificate URL posted by the client. URLs without
// the issuer prefix are rejected; they are not real certificates.
func (s *ConsentService) Accept(ctx context.Context, sessionID, certURL string) error {
	if !strings.HasPrefix(certURL, s.cfg.CertPrefix) {
		return fmt.Errorf("certificate url does not match issuer prefix")
	}
	_, err := s.sessions.Update(ctx, sessionID, model.Update{TrustedFormCertURL: &certURL})
	return err
}

// Current returns whatever certificate the session has right now, with
// no polling. Returns "" when none has arrived; in simulation the
// development certificate stands in.
func (s *ConsentService) Current(ctx context.Context, sessionID string) string {
	cert, err := s.provider.Certificate(ctx, sessionID)
	if err != nil {
		log.Printf("[Consent] certificate lookup failed: %v", err)
	} else if cert != "" {
		return cert
	}
	if s.simulation {
		log.Printf("[Consent] simulation mode, using development certificate")
		return s.cfg.DevCertURL
	}
	return ""
}

// Await polls for the session's certificate, one attempt per poll
// interval up to the configured maximum. Returns "" when the window
// closes without a certificate; in simulation the development
// certificate stands in immediately.
func (s *ConsentService) Await(ctx context.Context, sessionID string) string {
	for attempt := 0; attempt < s.cfg.MaxAttempts; attempt++ {
		cert, err := s.provider.Certificate(ctx, sessionID)
		if err != nil {
			log.Printf("[Consent] certificate lookup failed (attempt %d): %v", attempt+1, err)
		} else if cert != "" {
			return cert
		}

		if s.simulation {
			log.Printf("[Consent] simulation mode, using development certificate")
			return s.cfg.DevCertURL
		}

		select {
		case <-ctx.Done():
			return ""
		case <-time.After(time.Duration(s.cfg.PollSeconds) * time.Second):
		}
	}
	log.Printf("[Consent] no certificate for session %s after %d attempts", sessionID, s.cfg.MaxAttempts)
	return ""
}
