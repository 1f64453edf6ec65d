package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/routeburn/product-flow/internal/api"
	"github.com/routeburn/product-flow/internal/api/handlers"
	"github.com/routeburn/product-flow/internal/repository"
	"github.com/routeburn/product-flow/internal/services"
	"github.com/routeburn/product-flow/pkg/config"
	"github.com/routeburn/product-flow/pkg/database"
	"github.com/routeburn/product-flow/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting Product Flow API",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	// Connect to database
	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Initialize repositories
	ideaRepo := repository.NewIdeaRepository(db, cfg.StoreTimeout)
	portfolioRepo := repository.NewPortfolioRepository(db, cfg.StoreTimeout)
	kbRepo := repository.NewKBRepository(db, cfg.StoreTimeout)
	studioRepo := repository.NewStudioRepository(db, cfg.StoreTimeout)

	// Initialize services
	secret := []byte(cfg.SessionSecret)
	ideaSvc := services.NewIdeaService(ideaRepo)
	portfolioSvc := services.NewPortfolioService(portfolioRepo)
	kbSvc := services.NewKBService(kbRepo)
	authSvc := services.NewAuthService(studioRepo, secret, cfg.SessionTTL)

	// Create router with dependencies
	router := api.NewRouter(api.Dependencies{
		HMACSecret:        secret,
		AuthHandler:       handlers.NewAuthHandler(authSvc),
		PortfoliosHandler: handlers.NewPortfoliosHandler(portfolioSvc),
		IdeasHandler:      handlers.NewIdeasHandler(ideaSvc),
		KBHandler:         handlers.NewKBHandler(kbSvc),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
