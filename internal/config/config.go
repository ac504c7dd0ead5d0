package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	HTTPAddr                string
	Log                     LogConfig
	Postgres                PostgresConfig
	Auth                    AuthConfig
	NotificationDefaultDays int
	Admin                   AdminConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DB       string
	SSLMode  string
}

type AuthConfig struct {
	JWTSecret     string
	JWTExpiration time.Duration
}

// AdminConfig holds the bootstrap administrator created by cmd/seed.
type AdminConfig struct {
	Username string
	Email    string
	Password string
}

// Load reads an optional .env file and then the process environment. Auth
// settings are checked separately by ValidateAuth.
func Load() (*Config, error) {
	_ = godotenv.Load()

	expiration, err := durationEnv("JWT_EXPIRATION", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	notifyDays, err := intEnv("NOTIFICATION_DEFAULT_DAYS", 30)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr: env("HTTP_ADDR", "0.0.0.0:8080"),
		Log: LogConfig{
			Level:  env("LOG_LEVEL", "info"),
			Format: env("LOG_FORMAT", "json"),
		},
		Postgres: PostgresConfig{
			Host:     env("POSTGRES_HOST", "localhost"),
			Port:     env("POSTGRES_PORT", "5432"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DB:       os.Getenv("POSTGRES_DB"),
			SSLMode:  env("POSTGRES_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			JWTExpiration: expiration,
		},
		NotificationDefaultDays: notifyDays,
		Admin: AdminConfig{
			Username: env("ADMIN_USERNAME", "admin"),
			Email:    os.Getenv("ADMIN_EMAIL"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
	}

	if cfg.NotificationDefaultDays < 1 {
		return nil, fmt.Errorf("NOTIFICATION_DEFAULT_DAYS must be at least 1")
	}
	return cfg, nil
}

// ValidateAuth checks the settings only the API server needs.
func (c *Config) ValidateAuth() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.Auth.JWTExpiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive")
	}
	return nil
}

func (p PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     p.Host + ":" + p.Port,
		Path:     "/" + p.DB,
		RawQuery: "sslmode=" + url.QueryEscape(p.SSLMode),
	}
	return u.String()
}

// ConfigureZerolog sets the global level and output format.
func (c *LogConfig) ConfigureZerolog() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if strings.EqualFold(c.Format, "console") {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
