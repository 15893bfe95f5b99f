package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"claimconnect/internal/config"
	"claimconnect/internal/model"
)

// AnalyticsClient forwards engagement events to the analytics collector
type AnalyticsClient struct {
	cfg        config.AnalyticsConfig
	httpClient *http.Client
}

// NewAnalyticsClient creates a new analytics client
func NewAnalyticsClient(cfg config.AnalyticsConfig) *AnalyticsClient {
	return &AnalyticsClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Record posts one engagement event. The collector is best-effort
// infrastructure; callers decide what a failure means.
func (c *AnalyticsClient) Record(ctx context.Context, ev model.EngagementEvent) error {
	if ev.PartnerID == "" {
		ev.PartnerID = c.cfg.PartnerID
	}
	if ev.Timestamp == "" {
		ev.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("analytics request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[Analytics] ERROR: collector returned %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("analytics collector returned %d", resp.StatusCode)
	}
	return nil
}

// IsTimeout reports whether an error from Record was a deadline or
// network timeout rather than a collector rejection
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
