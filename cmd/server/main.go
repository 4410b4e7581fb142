// Command server runs the participation request API.
//
// @title Explore With Me participation API
// @version 1.0
// @description Participation requests and capacity enforcement for events.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

//go:generate swag init --dir ../../ --generalInfo cmd/server/main.go --output ../../docs --outputTypes go

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"explorewithme/config"
	"explorewithme/internal/adapters/auth"
	"explorewithme/internal/adapters/stats"
	httpdelivery "explorewithme/internal/delivery/http"
	"explorewithme/internal/delivery/http/controllers"
	"explorewithme/internal/domain"
	"explorewithme/internal/repository/postgres"
	"explorewithme/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if cfg.Migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}
	logger.Info("connected to postgres")

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)
	requestRepo := postgres.NewRequestRepository(db)
	statsClient := stats.NewHTTPClient(&http.Client{Timeout: cfg.ContextTimeout}, cfg.StatsURL)

	requestSvc := services.NewRequestService(postgres.NewTransactor(db), eventRepo, userRepo, requestRepo, logger, cfg.ContextTimeout)
	eventSvc := services.NewEventService(eventRepo, requestRepo, statsClient, cfg.AppName, logger, cfg.ContextTimeout)

	var verifier domain.TokenVerifier
	if cfg.AuthEnabled() {
		verifier = auth.NewJWTVerifier(cfg.JWTSecret)
	} else {
		logger.Warn("JWT_SECRET not set, private routes are unauthenticated")
	}

	router := httpdelivery.NewRouter(httpdelivery.RouterConfig{
		Requests:    controllers.NewRequestController(logger, requestSvc),
		Events:      controllers.NewEventController(logger, eventSvc),
		Verifier:    verifier,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
