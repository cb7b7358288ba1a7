package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/swasthya/triage/internal/config"
	"github.com/swasthya/triage/internal/domain/eligibility"
	"github.com/swasthya/triage/internal/domain/hospital"
	"github.com/swasthya/triage/internal/domain/reminder"
	"github.com/swasthya/triage/internal/domain/triage"
	"github.com/swasthya/triage/internal/platform/geo"
	"github.com/swasthya/triage/internal/platform/llm"
	"github.com/swasthya/triage/internal/platform/middleware"
	"github.com/swasthya/triage/internal/platform/notification"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "triage-server",
		Short: "Swasthya Saathi symptom-triage API server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the triage API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}
	if cfg.OpenAIAPIKey == "" {
		logger.Warn().Msg("OPENAI_API_KEY not set, classifier will always use the fallback result")
	}

	defaultOrigin := geo.Coordinate{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng}

	// Datasets, loaded once and shared read-only across requests
	catalog := hospital.LoadCatalog(cfg.DataDir, logger)
	ranker := hospital.NewRanker(catalog)

	// Session and reminder stores
	sessionRepo, err := triage.NewFileSessionRepo(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open session store")
	}
	reminderRepo, err := reminder.NewFileRepo(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open reminder store")
	}

	// External classifier
	generator := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.LLMTimeout())
	classifier := triage.NewClassifier(generator, logger)

	// Services
	var sender notification.SMSSender
	if cfg.IsDev() {
		sender = notification.LogSender{Logger: logger}
	}
	smsSvc := notification.NewService(sender, logger)

	triageSvc := triage.NewService(classifier, ranker, sessionRepo, smsSvc, defaultOrigin, logger)
	reminderSvc := reminder.NewService(reminderRepo)
	eligibilitySvc := eligibility.NewService(cfg.AyushmanValidUntil)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Status endpoints
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":   "Swasthya Saathi AI Triage API is running!",
			"status":    "active",
			"version":   version,
			"timestamp": time.Now().UTC(),
		})
	})
	e.GET("/health", func(c echo.Context) error {
		classifierStatus := "configured"
		if cfg.OpenAIAPIKey == "" {
			classifierStatus = "not_configured"
		}
		return c.JSON(http.StatusOK, map[string]string{
			"status":            "healthy",
			"service":           "swasthya-triage",
			"classifier_status": classifierStatus,
		})
	})

	// API routes
	api := e.Group("/api/v1")
	triage.NewHandler(triageSvc).RegisterRoutes(api)
	hospital.NewHandler(ranker, defaultOrigin).RegisterRoutes(api)
	eligibility.NewHandler(eligibilitySvc).RegisterRoutes(api)
	reminder.NewHandler(reminderSvc).RegisterRoutes(api)
	notification.NewHandler(smsSvc).RegisterRoutes(api)

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting triage server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
		return err
	}
	return nil
}
