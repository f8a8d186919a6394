package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-itinerary-service/internal/infrastructure/config"
	"travel-itinerary-service/internal/infrastructure/persistence"
	mongoRepo "travel-itinerary-service/internal/interface/repository"
	"travel-itinerary-service/internal/interface/rest"
	"travel-itinerary-service/internal/usecase"
	"travel-itinerary-service/pkg/logger"
	"travel-itinerary-service/pkg/metrics"
	"travel-itinerary-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Itinerary Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection for timeline snapshots
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up PostgreSQL connection for the order store
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	normalizer := utils.NewPayloadNormalizer(log)
	serviceRepository := mongoRepo.NewGormOrderServiceRepository(gormDB, normalizer)
	travellerRepository := mongoRepo.NewGormTravellerRepository(gormDB)
	airportRepository := mongoRepo.NewGormAirportRepository(gormDB)
	snapshotRepository := mongoRepo.NewMongoSnapshotRepository(db, cfg.SnapshotTTL)

	// Set up timeline service
	appMetrics := metrics.NewMetrics("itinerary")
	timelineService := usecase.NewTimelineService(
		serviceRepository,
		travellerRepository,
		airportRepository,
		snapshotRepository,
		appMetrics,
		log,
	)

	// Set up HTTP server
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	rest.NewTimelineHandler(timelineService, log).Register(mux)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Itinerary Service stopped")
}
