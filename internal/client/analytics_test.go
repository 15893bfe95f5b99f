package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimconnect/internal/config"
	"claimconnect/internal/model"
)

func TestRecordFillsDefaults(t *testing.T) {
	var got model.EngagementEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := NewAnalyticsClient(config.AnalyticsConfig{Endpoint: srv.URL, PartnerID: "B40i8", TimeoutMS: 3000})
	err := c.Record(context.Background(), model.EngagementEvent{
		StateCode: "TX",
		Action:    "view",
		Platform:  "MacIntel",
		Pathname:  "/tx",
		Hostname:  "claims.example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "B40i8", got.PartnerID)
	assert.Equal(t, "TX", got.StateCode)
	assert.Equal(t, "view", got.Action)
	assert.NotEmpty(t, got.Timestamp)
	assert.Equal(t, "MacIntel", got.Platform)
	assert.Equal(t, "/tx", got.Pathname)
	assert.Equal(t, "claims.example.com", got.Hostname)
}

func TestRecordCollectorRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad event", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewAnalyticsClient(config.AnalyticsConfig{Endpoint: srv.URL, TimeoutMS: 3000})
	err := c.Record(context.Background(), model.EngagementEvent{StateCode: "TX"})
	assert.Error(t, err)
	assert.False(t, IsTimeout(err))
}

func TestIsTimeout(t *testing.T) {
	assert.False(t, IsTimeout(nil))
	assert.False(t, IsTimeout(errors.New("plain")))
	assert.True(t, IsTimeout(context.DeadlineExceeded))
}

func TestRecordTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewAnalyticsClient(config.AnalyticsConfig{Endpoint: srv.URL, TimeoutMS: 3000})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Record(ctx, model.EngagementEvent{StateCode: "TX"})
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}
