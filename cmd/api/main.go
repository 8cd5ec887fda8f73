package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/farouk24967/dashbord-genrator/internal/api/router"
	appconfig "github.com/farouk24967/dashbord-genrator/internal/config"
	"github.com/farouk24967/dashbord-genrator/internal/generation"
	"github.com/farouk24967/dashbord-genrator/internal/http/handlers"
	"github.com/farouk24967/dashbord-genrator/internal/inquiries"
	"github.com/farouk24967/dashbord-genrator/internal/observability/metrics"
	"github.com/farouk24967/dashbord-genrator/internal/workspace"
	"github.com/farouk24967/dashbord-genrator/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set env vars directly
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting dashbord-genrator API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Metrics registry
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	promReg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	genMetrics := metrics.NewGenerationMetrics(promReg)
	recMetrics := metrics.NewRecordMetrics(promReg)

	// Gemini client is optional: without a key the gateway serves the
	// built-in demo dataset on every request.
	var textClient generation.TextClient
	if cfg.GeminiAPIKey != "" {
		client, err := generation.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to initialize Gemini client", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		textClient = client
		logger.Info("Gemini client initialized", "model", cfg.GeminiModelID)
	} else {
		logger.Warn("GEMINI_API_KEY not set; serving fallback datasets only")
	}
	generator := generation.NewService(textClient, logger, genMetrics)

	// Demo workspaces live in memory only
	registry := workspace.NewRegistry()

	inquiriesRepo := inquiries.NewInMemoryRepository()

	routerCfg := &router.Config{
		Logger:             logger,
		Pages:              handlers.NewPages(),
		Workspaces:         handlers.NewWorkspaceHandler(registry, generator, logger),
		Patients:           handlers.NewPatientHandler(registry, logger, recMetrics),
		Appointments:       handlers.NewAppointmentHandler(registry, logger, recMetrics),
		Inquiries:          inquiries.NewHandler(inquiriesRepo, logger),
		MetricsHandler:     promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MaxLogoBytes:       cfg.MaxLogoBytes,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
