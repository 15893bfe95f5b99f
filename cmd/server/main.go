package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"claimconnect/internal/cache"
	"claimconnect/internal/client"
	"claimconnect/internal/config"
	"claimconnect/internal/flow"
	"claimconnect/internal/repository"
	"claimconnect/internal/service"
	"claimconnect/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env")
	}

	cfg := config.Load()
	vendors := config.DefaultVendorConfig()

	log.Printf("Environment: %s", cfg.Env)
	if cfg.IsSimulation() {
		log.Println("Simulation mode: buyer failures become synthetic accepts")
	}
	if vendors.Pingtree.IsEnabled() {
		log.Println("Pingtree: configured")
	} else {
		log.Println("Pingtree: NOT SET (submissions will fail outside simulation)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	leadRepo := repository.NewLeadRepository(mongoClient, cfg.MongoDB)
	archiveRepo := repository.NewArchiveRepository(mongoClient, cfg.MongoDB)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)
	visitorCache := cache.NewVisitorCache(rdb)

	// Initialize vendor clients
	pingtree := client.NewPingtreeClient(vendors.Pingtree)
	ringba := client.NewRingbaClient(vendors.Ringba)
	trustedform := client.NewTrustedFormClient(vendors.TrustedForm)
	analytics := client.NewAnalyticsClient(vendors.Analytics)
	geoip := client.NewGeoIPClient(vendors.GeoIP)

	// Initialize services
	trackerSvc := service.NewTrackerService(analytics, cfg.IsSimulation())
	geoSvc := service.NewGeoService(visitorCache, geoip, trackerSvc)
	sessionSvc := service.NewSessionService(sessionCache, geoSvc)
	engine := flow.NewEngine(flow.DefaultQuestions(), nil)
	flowSvc := service.NewFlowService(engine, sessionSvc)
	consentSvc := service.NewConsentService(vendors.TrustedForm, sessionSvc, nil, cfg.IsSimulation())
	relaySvc := service.NewRelayService(leadRepo, archiveRepo, trustedform, ringba)
	leadSvc := service.NewLeadService(sessionSvc, sessionCache, pingtree, consentSvc, relaySvc, trackerSvc, cfg.IsSimulation())
	enrichSvc := service.NewEnrichService(sessionSvc, ringba, trackerSvc, vendors.CallCenter, cfg.IsSimulation())

	// Create router with container
	container := &rest.Container{
		SessionService: sessionSvc,
		FlowService:    flowSvc,
		GeoService:     geoSvc,
		ConsentService: consentSvc,
		LeadService:    leadSvc,
		EnrichService:  enrichSvc,
		RelayService:   relaySvc,
		TrackerService: trackerSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/sessions")
		log.Println("  GET  /v1/sessions/{id}/question")
		log.Println("  POST /v1/sessions/{id}/answers")
		log.Println("  POST /v1/sessions/{id}/back")
		log.Println("  GET/PUT /v1/sessions/{id}/state")
		log.Println("  POST /v1/sessions/{id}/consent")
		log.Println("  POST /v1/sessions/{id}/submit")
		log.Println("  POST /v1/sessions/{id}/call")
		log.Println("  GET/POST /v1/geo")
		log.Println("  GET  /v1/states")
		log.Println("  POST /v1/leads")
		log.Println("  POST /v1/track")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
