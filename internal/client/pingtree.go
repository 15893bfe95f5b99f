package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"claimconnect/internal/config"
	"claimconnect/internal/model"
)

// PingtreeClient submits leads to the Pingtree buyer network
type PingtreeClient struct {
	cfg        config.PingtreeConfig
	httpClient *http.Client
}

// NewPingtreeClient creates a new Pingtree API client
func NewPingtreeClient(cfg config.PingtreeConfig) *PingtreeClient {
	if cfg.BearerToken == "" {
		log.Println("Warning: PINGTREE_TOKEN not set")
	}
	return &PingtreeClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsConfigured returns true if the bearer token is set
func (c *PingtreeClient) IsConfigured() bool {
	return c.cfg.IsEnabled()
}

// SubmitLead posts a lead as form-encoded data. Transport and API
// failures are folded into an error-status result rather than returned,
// so a buyer outage never propagates as a Go error.
func (c *PingtreeClient) SubmitLead(ctx context.Context, rec model.LeadRecord) model.APIResult {
	form := url.Values{}
	form.Set("first_name", rec.FirstName)
	form.Set("last_name", rec.LastName)
	form.Set("mobile", rec.Mobile)
	form.Set("email", rec.Email)
	form.Set("incident_state", rec.IncidentState)
	form.Set("crid", c.cfg.CreativeID)
	form.Set("channel", c.cfg.Channel)
	form.Set("subscription_key", c.cfg.SubscriptionKey)
	form.Set("source_id", rec.SourceID)
	if rec.IsTest {
		form.Set("is_test", "1")
	} else {
		form.Set("is_test", "0")
	}

	endpoint := c.cfg.LeadEndpoint()
	log.Printf("[Pingtree] POST %s (lead %s, state %s, test=%v)", endpoint, rec.LeadID, rec.IncidentState, rec.IsTest)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		log.Printf("[Pingtree] ERROR: Failed to create request: %v", err)
		return model.APIResult{Status: "error", Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.cfg.BearerToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[Pingtree] ERROR: HTTP request failed: %v", err)
		return model.APIResult{Status: "error", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[Pingtree] ERROR: Failed to read response body: %v", err)
		return model.APIResult{Status: "error", Message: err.Error()}
	}

	if resp.StatusCode >= 400 {
		log.Printf("[Pingtree] ERROR: API returned %d: %s", resp.StatusCode, string(body))
		return model.APIResult{
			Status:  "error",
			Message: fmt.Sprintf("pingtree API returned %d: %s", resp.StatusCode, string(body)),
		}
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		log.Printf("[Pingtree] ERROR: Failed to parse response: %v", err)
		return model.APIResult{Status: "error", Message: "unparseable pingtree response"}
	}

	log.Printf("[Pingtree] SUCCESS: lead %s accepted", rec.LeadID)
	return model.APIResult{Status: "success", Data: data}
}
