package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"claimconnect/internal/cache"
	"claimconnect/internal/model"
)

// ErrSessionNotFound is returned when a session ID resolves to nothing
var ErrSessionNotFound = errors.New("session not found")

// SessionService owns funnel session lifecycle and state persistence
type SessionService struct {
	sessions cache.SessionCache
	geo      *GeoService
}

// NewSessionService creates a new session service
func NewSessionService(sessions cache.SessionCache, geo *GeoService) *SessionService {
	return &SessionService{
		sessions: sessions,
		geo:      geo,
	}
}

// Create starts a fresh session, pre-resolving the visitor's
// jurisdiction so the funnel opens with localized content
func (s *SessionService) Create(ctx context.Context, visitorID string) (*model.FormState, ResolvedState, error) {
	resolved := s.geo.Resolve(ctx, visitorID)

	state := model.NewFormState(
		uuid.New().String(),
		fmt.Sprintf("cc_lead_%d", time.Now().UnixMilli()),
	)
	state.IncidentState = resolved.StateCode

	if err := s.sessions.Set(ctx, state); err != nil {
		return nil, ResolvedState{}, fmt.Errorf("failed to persist session: %w", err)
	}
	return state, resolved, nil
}

// Get loads a session, mapping absence to ErrSessionNotFound
func (s *SessionService) Get(ctx context.Context, sessionID string) (*model.FormState, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if state == nil {
		return nil, ErrSessionNotFound
	}
	return state, nil
}

// Update applies a partial update and persists the result
func (s *SessionService) Update(ctx context.Context, sessionID string, u model.Update) (*model.FormState, error) {
	state, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Apply(u)
	if err := s.sessions.Set(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return state, nil
}

// Save persists a session snapshot mutated by a caller
func (s *SessionService) Save(ctx context.Context, state *model.FormState) error {
	state.UpdatedAt = time.Now().UTC()
	if err := s.sessions.Set(ctx, state); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
