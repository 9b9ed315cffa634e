package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/insightlabs/insighttrader-go/internal/alerts"
	"github.com/insightlabs/insighttrader-go/internal/api"
	"github.com/insightlabs/insighttrader-go/internal/config"
	"github.com/insightlabs/insighttrader-go/internal/logging"
	"github.com/insightlabs/insighttrader-go/internal/scheduler"
	"github.com/insightlabs/insighttrader-go/internal/services"
	"github.com/insightlabs/insighttrader-go/internal/simulator"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.Environment)

	// Seed the simulator before the first request can land
	sim := simulator.New(cfg.Simulator)
	sim.Initialize()
	logger.WithField("points", len(sim.History())).Info("Market simulator initialized")

	alertStore := alerts.NewStore(cfg.Simulator.Asset)
	marketService := services.NewMarketService(sim, alertStore, logger)

	// Start the periodic price tick
	tickScheduler := scheduler.New(logger)
	if err := tickScheduler.Register(cfg.TickInterval(), scheduler.TickJob(sim, logger)); err != nil {
		return fmt.Errorf("failed to register tick schedule: %w", err)
	}
	tickScheduler.Start()
	defer tickScheduler.Stop()

	// Setup Gin router
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	api.SetupRoutes(router, cfg, sim, marketService, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server exited")
	return nil
}
