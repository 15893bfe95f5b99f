package client

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"claimconnect/internal/config"
	"claimconnect/internal/model"
)

// EnrichParams is the call context pushed to the call routing platform
type EnrichParams struct {
	IsTest          bool
	CallerID        string
	SourceID        string
	IncidentState   string
	IncidentDateISO string
	AtFault         bool
	Attorney        bool
	Settlement      bool
	ClaimantName    string
	ClaimantEmail   string
	CertURL         string
	PubID           string
}

// RingbaClient pushes call context to the Ringba enrichment endpoint so
// the call center sees the caller's funnel answers
type RingbaClient struct {
	cfg        config.RingbaConfig
	httpClient *http.Client
}

// NewRingbaClient creates a new Ringba enrichment client
func NewRingbaClient(cfg config.RingbaConfig) *RingbaClient {
	return &RingbaClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func zeroOne(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// Enrich sends a caller snapshot as query parameters. Boolean answers
// map to Yes/No strings per the endpoint's contract.
func (c *RingbaClient) Enrich(ctx context.Context, p EnrichParams) model.APIResult {
	if c.cfg.EnrichURL == "" {
		return model.APIResult{Status: "skipped", Message: "ringba enrichment not configured"}
	}

	q := url.Values{}
	q.Set("isTest", zeroOne(p.IsTest))
	q.Set("callerid", p.CallerID)
	q.Set("sourceId", p.SourceID)
	q.Set("incidentState", p.IncidentState)
	q.Set("incidentDate", model.FormatIncidentDate(p.IncidentDateISO))
	q.Set("atFault", yesNo(p.AtFault))
	q.Set("attorney", yesNo(p.Attorney))
	q.Set("settlement", yesNo(p.Settlement))
	if p.ClaimantName != "" {
		q.Set("claimantName", p.ClaimantName)
	}
	if p.ClaimantEmail != "" {
		q.Set("claimantEmail", p.ClaimantEmail)
	}
	if p.CertURL != "" {
		q.Set("trustedFormCertURL", p.CertURL)
	}
	if p.PubID != "" {
		q.Set("pubID", p.PubID)
	}

	endpoint := c.cfg.EnrichURL + "?" + q.Encode()
	log.Printf("[Ringba] GET enrich (caller %s, state %s)", p.CallerID, p.IncidentState)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("[Ringba] ERROR: Failed to create request: %v", err)
		return model.APIResult{Status: "error", Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[Ringba] ERROR: HTTP request failed: %v", err)
		return model.APIResult{Status: "error", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[Ringba] ERROR: Failed to read response body: %v", err)
		return model.APIResult{Status: "error", Message: err.Error()}
	}
	if resp.StatusCode >= 400 {
		log.Printf("[Ringba] ERROR: API returned %d: %s", resp.StatusCode, string(body))
		return model.APIResult{Status: "error", Message: string(body)}
	}

	// Enrichment responses are loosely typed; keep whatever came back
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		data = map[string]any{"raw": string(body)}
	}

	log.Printf("[Ringba] SUCCESS: enrichment accepted for caller %s", p.CallerID)
	return model.APIResult{Status: "success", Data: data}
}
