package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vncsmyrnk/rentas/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/rentas/internal/config"
	"github.com/vncsmyrnk/rentas/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := cfg.Log.ConfigureZerolog()

	// Bound the whole run.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Postgres.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	expiration := services.NewContractExpirationService(postgres.NewRentalContractRepository(db), cfg.NotificationDefaultDays)

	logger.Info().Msg("starting contract expiration job")

	expired, err := expiration.ExpireOverdue(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to expire overdue contracts")
	}
	logger.Info().Int64("expired", expired).Msg("overdue contracts marked as expired")

	pending, err := expiration.PendingNotifications(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to list pending notifications")
	}
	for _, c := range pending {
		event := logger.Info().
			Int64("contract_id", c.ID).
			Int64("property_id", c.PropertyID).
			Time("end_date", c.EndDate)
		if c.NotificationContact != nil {
			event = event.Str("contact", *c.NotificationContact)
		}
		event.Msg("contract expiration notice due")
	}

	logger.Info().Int("pending_notifications", len(pending)).Msg("contract expiration job completed")
}
