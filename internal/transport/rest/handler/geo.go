package handler

import (
	"encoding/json"
	"net/http"

	"claimconnect/internal/service"
)

// GeoHandler handles jurisdiction endpoints
type GeoHandler struct {
	geo *service.GeoService
}

// NewGeoHandler creates a new geo handler
func NewGeoHandler(geo *service.GeoService) *GeoHandler {
	return &GeoHandler{geo: geo}
}

// Resolve handles GET /v1/geo
func (h *GeoHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	resolved := h.geo.Resolve(r.Context(), r.Header.Get(visitorHeader))
	writeJSON(w, http.StatusOK, resolved)
}

// Select handles POST /v1/geo
func (h *GeoHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StateCode string `json:"stateCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resolved, err := h.geo.Override(r.Context(), r.Header.Get(visitorHeader), req.StateCode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resolved)
}

// States handles GET /v1/states
func (h *GeoHandler) States(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.geo.States())
}
