package client

import (
	"context"
	"encoding/base64"
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

// TrustedFormClient claims consent certificates with the TrustedForm API
type TrustedFormClient struct {
	cfg        config.TrustedFormConfig
	httpClient *http.Client
}

// NewTrustedFormClient creates a new certificate claim client
func NewTrustedFormClient(cfg config.TrustedFormConfig) *TrustedFormClient {
	if cfg.APIKey == "" {
		log.Println("Warning: TRUSTEDFORM_API_KEY not set, certificate claims disabled")
	}
	return &TrustedFormClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// IsConfigured returns true if the API key is set
func (c *TrustedFormClient) IsConfigured() bool {
	return c.cfg.APIKey != ""
}

// ValidCertURL reports whether a certificate URL carries the expected
// issuer prefix
func (c *TrustedFormClient) ValidCertURL(certURL string) bool {
	return strings.HasPrefix(certURL, c.cfg.CertPrefix)
}

// Claim retains a certificate by POSTing to its URL with Basic auth,
// binding it to the lead's contact identity
func (c *TrustedFormClient) Claim(ctx context.Context, certURL string, rec model.LeadRecord) error {
	if !c.IsConfigured() {
		return fmt.Errorf("trustedform API key not configured")
	}
	if !c.ValidCertURL(certURL) {
		return fmt.Errorf("invalid certificate url: %s", certURL)
	}

	form := url.Values{}
	form.Set("reference", rec.LeadID)
	form.Set("email", rec.Email)
	form.Set("phone_1", rec.Mobile)
	form.Set("firstname", rec.FirstName)
	form.Set("lastname", rec.LastName)
	form.Set("source", "ClaimConnect Form")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, certURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create claim request: %w", err)
	}
	auth := base64.StdEncoding.EncodeToString([]byte(c.cfg.APIKey + ":"))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	log.Printf("[TrustedForm] Claiming certificate %s", certURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[TrustedForm] ERROR: claim request failed: %v", err)
		return fmt.Errorf("certificate claim failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		log.Printf("[TrustedForm] ERROR: claim returned %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("certificate claim returned %d", resp.StatusCode)
	}

	log.Printf("[TrustedForm] SUCCESS: certificate claimed")
	return nil
}
