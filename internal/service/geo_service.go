package service

import (
	"context"
	"fmt"
	"log"

	"claimconnect/internal/cache"
	"claimconnect/internal/client"
	"claimconnect/internal/geo"
	"claimconnect/internal/model"
)

// ResolvedState is a jurisdiction with its content bundle and how it was
// determined
type ResolvedState struct {
	StateCode string           `json:"stateCode"`
	StateName string           `json:"stateName"`
	Supported bool             `json:"supported"`
	Source    string           `json:"source"` // "saved", "geoip" or "default"
	Content   geo.StateContent `json:"content"`
}

// GeoService resolves which jurisdiction's content a visitor sees
type GeoService struct {
	visitors cache.VisitorCache
	geoip    *client.GeoIPClient
	tracker  *TrackerService
}

// NewGeoService creates a new geo service
func NewGeoService(visitors cache.VisitorCache, geoip *client.GeoIPClient, tracker *TrackerService) *GeoService {
	return &GeoService{
		visitors: visitors,
		geoip:    geoip,
		tracker:  tracker,
	}
}

// Resolve determines the visitor's jurisdiction: a previously saved
// choice wins, then IP geolocation, then the default. Resolution never
// fails; every fallback lands on a usable content bundle.
func (s *GeoService) Resolve(ctx context.Context, visitorID string) ResolvedState {
	if visitorID != "" {
		saved, err := s.visitors.GetState(ctx, visitorID)
		if err != nil {
			log.Printf("[Geo] visitor cache read failed: %v", err)
		} else if saved != "" && geo.IsValidState(saved) {
			s.tracker.TrackAsync(model.EngagementEvent{StateCode: saved, Action: "geo_resolve"})
			return s.resolved(saved, "saved")
		}
	}

	code, err := s.geoip.Lookup(ctx)
	if err == nil && geo.IsValidState(code) {
		if visitorID != "" {
			if err := s.visitors.SetState(ctx, visitorID, code); err != nil {
				log.Printf("[Geo] visitor cache write failed: %v", err)
			}
		}
		s.tracker.TrackAsync(model.EngagementEvent{StateCode: code, Action: "geo_resolve"})
		return s.resolved(code, "geoip")
	}
	if err != nil {
		log.Printf("[Geo] geolocation unavailable, using default: %v", err)
	}

	// The default is only a safe landing spot here, not a real
	// resolution, so it is not reported as supported
	fallback := s.resolved(geo.DefaultState, "default")
	fallback.Supported = false
	s.tracker.TrackAsync(model.EngagementEvent{StateCode: fallback.StateCode, Action: "geo_resolve"})
	return fallback
}

// Override records an explicit jurisdiction choice made by the visitor
func (s *GeoService) Override(ctx context.Context, visitorID, stateCode string) (ResolvedState, error) {
	if !geo.IsValidState(stateCode) {
		return ResolvedState{}, fmt.Errorf("unknown state code %q", stateCode)
	}
	if visitorID != "" {
		if err := s.visitors.SetState(ctx, visitorID, stateCode); err != nil {
			return ResolvedState{}, fmt.Errorf("failed to save state choice: %w", err)
		}
	}
	s.tracker.TrackAsync(model.EngagementEvent{StateCode: stateCode, Action: "manual_select"})
	return s.resolved(stateCode, "saved"), nil
}

// States lists every selectable jurisdiction
func (s *GeoService) States() map[string]string {
	return geo.AllStates
}

func (s *GeoService) resolved(code, source string) ResolvedState {
	return ResolvedState{
		StateCode: code,
		StateName: geo.StateName(code),
		Supported: geo.IsSupported(code),
		Source:    source,
		Content:   geo.ContentFor(code),
	}
}
