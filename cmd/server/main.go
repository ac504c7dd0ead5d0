package main

import (
	"context"
	"errors"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vncsmyrnk/rentas/internal/adapters/handler/http"
	"github.com/vncsmyrnk/rentas/internal/adapters/password"
	"github.com/vncsmyrnk/rentas/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/rentas/internal/adapters/token"
	"github.com/vncsmyrnk/rentas/internal/config"
	"github.com/vncsmyrnk/rentas/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := cfg.ValidateAuth(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := cfg.Log.ConfigureZerolog()
	log.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Postgres.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize Repositories
	userRepo := postgres.NewUserRepository(db)
	agencyRepo := postgres.NewAgencyRepository(db)
	propertyRepo := postgres.NewPropertyRepository(db)
	conceptRepo := postgres.NewPaymentConceptRepository(db)
	surchargeRepo := postgres.NewSurchargeConfigRepository(db)
	contractRepo := postgres.NewRentalContractRepository(db)

	// Initialize Services
	tokens := token.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiration)
	authService := services.NewAuthService(userRepo, password.NewBcryptHasher(0), tokens)

	handler := http.NewHandler(http.Handlers{
		Auth:            http.NewAuthHandler(authService),
		Agencies:        http.NewAgencyHandler(services.NewAgencyService(agencyRepo)),
		Properties:      http.NewPropertyHandler(services.NewPropertyService(propertyRepo, agencyRepo)),
		PaymentConcepts: http.NewPaymentConceptHandler(services.NewPaymentConceptService(conceptRepo)),
		Surcharges:      http.NewSurchargeConfigHandler(services.NewSurchargeConfigService(surchargeRepo)),
		Contracts:       http.NewContractHandler(services.NewRentalContractService(contractRepo, propertyRepo, cfg.NotificationDefaultDays)),
	}, tokens, logger)

	server := &stdhttp.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("shutdown failed")
	}
}
