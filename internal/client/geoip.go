package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"claimconnect/internal/config"
)

// GeoIPClient resolves the visitor's state from their IP address via the
// ipapi.co lookup service
type GeoIPClient struct {
	cfg        config.GeoIPConfig
	httpClient *http.Client
}

// NewGeoIPClient creates a new geolocation client
func NewGeoIPClient(cfg config.GeoIPConfig) *GeoIPClient {
	return &GeoIPClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

type geoIPResponse struct {
	RegionCode string `json:"region_code"`
	Country    string `json:"country"`
	Error      bool   `json:"error"`
	Reason     string `json:"reason"`
}

// Lookup returns the two-letter region code for the calling IP. The
// lookup service rate-limits aggressively, so failures are expected and
// returned for the caller to fall back on.
func (c *GeoIPClient) Lookup(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[GeoIP] ERROR: lookup failed: %v", err)
		return "", fmt.Errorf("geoip lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("[GeoIP] ERROR: lookup returned %d", resp.StatusCode)
		return "", fmt.Errorf("geoip lookup returned %d", resp.StatusCode)
	}

	var body geoIPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to parse geoip response: %w", err)
	}
	if body.Error {
		return "", fmt.Errorf("geoip lookup rejected: %s", body.Reason)
	}
	if body.RegionCode == "" {
		return "", fmt.Errorf("geoip response missing region code")
	}

	log.Printf("[GeoIP] Resolved region %s (%s)", body.RegionCode, body.Country)
	return body.RegionCode, nil
}
