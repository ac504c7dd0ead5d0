package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vncsmyrnk/rentas/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/rentas/internal/config"
)

var (
	cfg *config.Config
	db  *sql.DB
)

var rootCmd = &cobra.Command{
	Use:   "migrations",
	Short: "Applies the embedded database migrations",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		log.Logger = cfg.Log.ConfigureZerolog()
		applyFlagOverrides(cmd, &cfg.Postgres)

		db, err = postgres.Open(cmd.Context(), cfg.Postgres.DSN())
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every up migration in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return postgres.Migrate(cmd.Context(), db, postgres.Up)
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Apply every down migration in reverse order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return postgres.Migrate(cmd.Context(), db, postgres.Down)
	},
}

var runCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Apply the single migration file matching name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := postgres.RunMigration(cmd.Context(), db, args[0]); err != nil {
			return err
		}
		log.Info().Str("migration", args[0]).Msg("migration file executed successfully")
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db-host", "", "Database host")
	flags.String("db-port", "", "Database port")
	flags.String("db-user", "", "Database user")
	flags.String("db-pass", "", "Database password")
	flags.String("db-name", "", "Database name")

	rootCmd.AddCommand(upCmd, downCmd, runCmd)
}

func applyFlagOverrides(cmd *cobra.Command, pg *config.PostgresConfig) {
	flags := cmd.Flags()
	for name, target := range map[string]*string{
		"db-host": &pg.Host,
		"db-port": &pg.Port,
		"db-user": &pg.User,
		"db-pass": &pg.Password,
		"db-name": &pg.DB,
	} {
		if flags.Changed(name) {
			*target, _ = flags.GetString(name)
		}
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
