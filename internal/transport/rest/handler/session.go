package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"claimconnect/internal/model"
	"claimconnect/internal/service"
)

// SessionHandler handles funnel session endpoints
type SessionHandler struct {
	sessions *service.SessionService
	flow     *service.FlowService
	consent  *service.ConsentService
	leads    *service.LeadService
	enrich   *service.EnrichService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService, flow *service.FlowService, consent *service.ConsentService, leads *service.LeadService, enrich *service.EnrichService) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		flow:     flow,
		consent:  consent,
		leads:    leads,
		enrich:   enrich,
	}
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	state, resolved, err := h.sessions.Create(r.Context(), r.Header.Get(visitorHeader))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"session": state,
		"geo":     resolved,
	})
}

// CurrentQuestion handles GET /v1/sessions/{id}/question
func (h *SessionHandler) CurrentQuestion(w http.ResponseWriter, r *http.Request) {
	status, err := h.flow.Current(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// Answer handles POST /v1/sessions/{id}/answers
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuestionID string          `json:"questionId"`
		Value      json.RawMessage `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" || len(req.Value) == 0 {
		writeError(w, http.StatusBadRequest, "questionId and value are required")
		return
	}

	status, err := h.flow.Answer(r.Context(), mux.Vars(r)["id"], req.QuestionID, req.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// Back handles POST /v1/sessions/{id}/back
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	status, err := h.flow.Back(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// GetState handles GET /v1/sessions/{id}/state
func (h *SessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// UpdateState handles PUT /v1/sessions/{id}/state
func (h *SessionHandler) UpdateState(w http.ResponseWriter, r *http.Request) {
	var update model.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.sessions.Update(r.Context(), mux.Vars(r)["id"], update)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Consent handles POST /v1/sessions/{id}/consent
func (h *SessionHandler) Consent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CertURL string `json:"certUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CertURL == "" {
		writeError(w, http.StatusBadRequest, "certUrl is required")
		return
	}

	if err := h.consent.Accept(r.Context(), mux.Vars(r)["id"], req.CertURL); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}

// Submit handles POST /v1/sessions/{id}/submit
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.leads.Submit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if result.Status != "success" {
		writeJSON(w, http.StatusBadGateway, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Call handles POST /v1/sessions/{id}/call
func (h *SessionHandler) Call(w http.ResponseWriter, r *http.Request) {
	info, err := h.enrich.PrepareCall(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
