package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"claimconnect/internal/client"
	"claimconnect/internal/config"
	"claimconnect/internal/model"
)

func TestTrackerSuccessKeepsBreakerArmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	tracker := NewTrackerService(client.NewAnalyticsClient(config.AnalyticsConfig{Endpoint: srv.URL, TimeoutMS: 3000}), false)
	result := tracker.Track(context.Background(), model.EngagementEvent{StateCode: "TX", Action: "view"})

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, Armed, tracker.State())
}

func TestTrackerTripsOnCollectorRejection(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	tracker := NewTrackerService(client.NewAnalyticsClient(config.AnalyticsConfig{Endpoint: srv.URL, TimeoutMS: 3000}), false)

	result := tracker.Track(context.Background(), model.EngagementEvent{StateCode: "TX", Action: "view"})
	assert.Equal(t, "error", result.Status)
	assert.Equal(t, TrippedOpen, tracker.State())

	// Second event is skipped without touching the collector
	result = tracker.Track(context.Background(), model.EngagementEvent{StateCode: "TX", Action: "call"})
	assert.Equal(t, "skipped", result.Status)
	assert.Equal(t, int32(1), calls.Load())
}

func TestTrackerSimulationSkipsCollector(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	tracker := NewTrackerService(client.NewAnalyticsClient(config.AnalyticsConfig{Endpoint: srv.URL, TimeoutMS: 3000}), true)

	result := tracker.Track(context.Background(), model.EngagementEvent{StateCode: "TX", Action: "view"})
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, Armed, tracker.State())
}

type timeoutRecorder struct{}

func (timeoutRecorder) Record(ctx context.Context, ev model.EngagementEvent) error {
	return context.DeadlineExceeded
}

func TestTrackerTimeoutDoesNotTrip(t *testing.T) {
	tracker := NewTrackerService(timeoutRecorder{}, false)

	result := tracker.Track(context.Background(), model.EngagementEvent{StateCode: "TX"})
	assert.Equal(t, "error", result.Status)
	assert.Equal(t, Armed, tracker.State())
}
