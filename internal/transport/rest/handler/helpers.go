package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"claimconnect/internal/flow"
	"claimconnect/internal/service"
)

// visitorHeader identifies a browser across sessions
const visitorHeader = "X-Visitor-Id"

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeFieldErrors(w http.ResponseWriter, status int, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error":  "validation failed",
		"fields": fields,
	})
}

// writeServiceError maps known service errors to HTTP statuses
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *flow.ValidationError
	var cErr *service.ContactValidationError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, flow.ErrFlowComplete),
		errors.Is(err, flow.ErrUnknownQuestion),
		errors.Is(err, service.ErrNotQualified),
		errors.Is(err, service.ErrAlreadySubmitted):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrSubmitInFlight):
		writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.As(err, &vErr):
		writeError(w, http.StatusUnprocessableEntity, vErr.Error())
	case errors.As(err, &cErr):
		writeFieldErrors(w, http.StatusUnprocessableEntity, cErr.Fields)
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
