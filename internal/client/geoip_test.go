package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimconnect/internal/config"
)

func TestLookupReturnsRegionCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"region_code":"TX","country":"US"}`))
	}))
	defer srv.Close()

	c := NewGeoIPClient(config.GeoIPConfig{Endpoint: srv.URL, TimeoutMS: 5000})
	code, err := c.Lookup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TX", code)
}

func TestLookupRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":true,"reason":"RateLimited"}`))
	}))
	defer srv.Close()

	c := NewGeoIPClient(config.GeoIPConfig{Endpoint: srv.URL, TimeoutMS: 5000})
	_, err := c.Lookup(context.Background())
	assert.Error(t, err)
}

func TestLookupMissingRegion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"country":"US"}`))
	}))
	defer srv.Close()

	c := NewGeoIPClient(config.GeoIPConfig{Endpoint: srv.URL, TimeoutMS: 5000})
	_, err := c.Lookup(context.Background())
	assert.Error(t, err)
}

func TestLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewGeoIPClient(config.GeoIPConfig{Endpoint: srv.URL, TimeoutMS: 5000})
	_, err := c.Lookup(context.Background())
	assert.Error(t, err)
}
