package main

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vncsmyrnk/rentas/internal/adapters/password"
	"github.com/vncsmyrnk/rentas/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/rentas/internal/config"
	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

// seed creates the bootstrap administrator if no user holds its username.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := cfg.Log.ConfigureZerolog()

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Fatal().Msg("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Postgres.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	users := postgres.NewUserRepository(db)
	existing, err := users.GetByUsername(ctx, cfg.Admin.Username)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to look up admin user")
	}
	if existing != nil {
		logger.Info().Str("username", existing.Username).Msg("admin user already exists")
		return
	}

	if err := createAdmin(ctx, users, password.NewBcryptHasher(0), cfg.Admin); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			logger.Warn().Err(err).Msg("admin user conflicts with an existing account")
			return
		}
		logger.Fatal().Err(err).Msg("failed to create admin user")
	}
	logger.Info().Str("username", cfg.Admin.Username).Msg("admin user created")
}

func createAdmin(ctx context.Context, users ports.UserRepository, hasher ports.PasswordHasher, admin config.AdminConfig) error {
	hash, err := hasher.Hash(admin.Password)
	if err != nil {
		return err
	}
	user := domain.NewUser(admin.Username, admin.Email, hash, []domain.Role{domain.RoleAdmin})
	return users.Create(ctx, user)
}
