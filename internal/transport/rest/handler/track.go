package handler

import (
	"encoding/json"
	"net/http"

	"claimconnect/internal/model"
	"claimconnect/internal/service"
)

// TrackHandler handles engagement tracking
type TrackHandler struct {
	tracker *service.TrackerService
}

// NewTrackHandler creates a new track handler
func NewTrackHandler(tracker *service.TrackerService) *TrackHandler {
	return &TrackHandler{tracker: tracker}
}

// Record handles POST /v1/track
func (h *TrackHandler) Record(w http.ResponseWriter, r *http.Request) {
	var ev model.EngagementEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if ev.StateCode == "" {
		writeError(w, http.StatusBadRequest, "stateCode is required")
		return
	}
	if ev.UserAgent == "" {
		ev.UserAgent = r.UserAgent()
	}
	if ev.Referrer == "" {
		ev.Referrer = r.Referer()
	}
	if ev.Hostname == "" {
		ev.Hostname = r.Host
	}

	result := h.tracker.Track(r.Context(), ev)
	writeJSON(w, http.StatusOK, result)
}
