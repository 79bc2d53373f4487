package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/chris/fintech-checker-api/pkg/api"
	"github.com/chris/fintech-checker-api/pkg/config"
	"github.com/chris/fintech-checker-api/pkg/handlers"
	wshandlers "github.com/chris/fintech-checker-api/pkg/handlers/websockets"
	appmiddleware "github.com/chris/fintech-checker-api/pkg/middleware"
	"github.com/chris/fintech-checker-api/pkg/scheduler"
	"github.com/chris/fintech-checker-api/pkg/scoring"
	"github.com/chris/fintech-checker-api/pkg/seed"
	"github.com/chris/fintech-checker-api/pkg/storage/memory"
	"github.com/chris/fintech-checker-api/pkg/websockets"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Create our storage implementation
	store := memory.New()
	if cfg.SeedData {
		if err := seed.Load(context.Background(), store); err != nil {
			logger.Error("failed to load sample data", "error", err)
			os.Exit(1)
		}
		logger.Info("sample data loaded")
	}

	// Airtime purchases complete on their own after the configured delay and
	// each completion is pushed to /events subscribers
	hub := websockets.NewHub(logger)
	timers := scheduler.NewTimerScheduler(store, logger, scheduler.WithPublisher(hub))

	handler := handlers.NewApiHandler(store, handlers.Options{
		Pricer:       scoring.NewPricer(nil),
		Scheduler:    timers,
		AirtimeDelay: cfg.AirtimeCompletionDelay,
		Logger:       logger,
	})

	router := chi.NewRouter()
	router.Use(appmiddleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appmiddleware.NewStructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", appmiddleware.RequestIDHeader},
		ExposedHeaders:   []string{appmiddleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Long-lived event streams must not inherit the request timeout
	router.Handle("/events", wshandlers.NewHandler(hub, cfg.CorsAllowedOrigins, logger))

	router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
		// Mount the API routes on the router
		api.HandlerFromMux(handler, r)
	})

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", "port", cfg.ServerPort, "airtimeCompletionDelay", cfg.AirtimeCompletionDelay.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	timers.Stop()

	logger.Info("server exited")
}
