package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"claimconnect/internal/service"
	"claimconnect/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	SessionService *service.SessionService
	FlowService    *service.FlowService
	GeoService     *service.GeoService
	ConsentService *service.ConsentService
	LeadService    *service.LeadService
	EnrichService  *service.EnrichService
	RelayService   *service.RelayService
	TrackerService *service.TrackerService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(c.SessionService, c.FlowService, c.ConsentService, c.LeadService, c.EnrichService)
	geoHandler := handler.NewGeoHandler(c.GeoService)
	leadHandler := handler.NewLeadHandler(c.RelayService)
	trackHandler := handler.NewTrackHandler(c.TrackerService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Session funnel
	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/question", sessionHandler.CurrentQuestion).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/answers", sessionHandler.Answer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/back", sessionHandler.Back).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/state", sessionHandler.GetState).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/state", sessionHandler.UpdateState).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/consent", sessionHandler.Consent).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/submit", sessionHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/call", sessionHandler.Call).Methods("POST", "OPTIONS")

	// Jurisdiction
	v1.HandleFunc("/geo", geoHandler.Resolve).Methods("GET", "OPTIONS")
	v1.HandleFunc("/geo", geoHandler.Select).Methods("POST", "OPTIONS")
	v1.HandleFunc("/states", geoHandler.States).Methods("GET", "OPTIONS")

	// Relay ingestion
	v1.HandleFunc("/leads", leadHandler.Ingest).Methods("POST", "OPTIONS")

	// Analytics
	v1.HandleFunc("/track", trackHandler.Record).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization, X-Visitor-Id"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
