package handler

import (
	"encoding/json"
	"net/http"

	"claimconnect/internal/model"
	"claimconnect/internal/service"
)

// LeadHandler handles the relay ingestion endpoint
type LeadHandler struct {
	relay *service.RelayService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(relay *service.RelayService) *LeadHandler {
	return &LeadHandler{relay: relay}
}

// Ingest handles POST /v1/leads
func (h *LeadHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var rec model.LeadRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if rec.FirstName == "" || rec.LastName == "" || rec.Mobile == "" {
		writeError(w, http.StatusBadRequest, "first_name, last_name and mobile are required")
		return
	}

	result, err := h.relay.Process(r.Context(), rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}
