package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"claimconnect/internal/config"
)

func TestEnrichSendsQueryParams(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := NewRingbaClient(config.RingbaConfig{EnrichURL: srv.URL, TimeoutMS: 5000})
	result := c.Enrich(context.Background(), EnrichParams{
		IsTest:          true,
		CallerID:        "2125551234",
		SourceID:        "cc_lead_1",
		IncidentState:   "TX",
		IncidentDateISO: "2025-06-15",
		AtFault:         false,
		Attorney:        true,
		Settlement:      false,
		ClaimantName:    "Jane Doe",
		ClaimantEmail:   "jane@example.com",
		CertURL:         "https://cert.trustedform.com/abc",
		PubID:           "pub-1",
	})

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "1", got.Get("isTest"))
	assert.Equal(t, "2125551234", got.Get("callerid"))
	assert.Equal(t, "cc_lead_1", got.Get("sourceId"))
	assert.Equal(t, "TX", got.Get("incidentState"))
	assert.Equal(t, "06/15/2025", got.Get("incidentDate"))
	assert.Equal(t, "No", got.Get("atFault"))
	assert.Equal(t, "Yes", got.Get("attorney"))
	assert.Equal(t, "No", got.Get("settlement"))
	assert.Equal(t, "Jane Doe", got.Get("claimantName"))
	assert.Equal(t, "jane@example.com", got.Get("claimantEmail"))
	assert.Equal(t, "https://cert.trustedform.com/abc", got.Get("trustedFormCertURL"))
	assert.Equal(t, "pub-1", got.Get("pubID"))
}

func TestEnrichOmitsEmptyOptionalParams(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewRingbaClient(config.RingbaConfig{EnrichURL: srv.URL, TimeoutMS: 5000})
	c.Enrich(context.Background(), EnrichParams{CallerID: "2125551234"})

	_, hasName := got["claimantName"]
	_, hasCert := got["trustedFormCertURL"]
	assert.False(t, hasName)
	assert.False(t, hasCert)
	assert.Equal(t, "0", got.Get("isTest"))
}

func TestEnrichUnconfiguredSkips(t *testing.T) {
	c := NewRingbaClient(config.RingbaConfig{TimeoutMS: 5000})
	result := c.Enrich(context.Background(), EnrichParams{})
	assert.Equal(t, "skipped", result.Status)
}

func TestEnrichNonJSONBodyStillSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c := NewRingbaClient(config.RingbaConfig{EnrichURL: srv.URL, TimeoutMS: 5000})
	result := c.Enrich(context.Background(), EnrichParams{})
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "OK", result.Data["raw"])
}
