package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/vncsmyrnk/rentas/internal/adapters/handler/http"
	"github.com/vncsmyrnk/rentas/internal/adapters/password"
	repo "github.com/vncsmyrnk/rentas/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/rentas/internal/adapters/token"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
	"github.com/vncsmyrnk/rentas/internal/core/services"
)

const testSecret = "test-secret"

type TestApp struct {
	DB            *sql.DB
	Server        *httptest.Server
	Client        *http.Client
	ExpirationSvc ports.ContractExpirationService
	DBContainer   testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := repo.Open(ctx, dbURL)
	require.NoError(t, err)

	require.NoError(t, repo.Migrate(ctx, db, repo.Up))

	userRepo := repo.NewUserRepository(db)
	agencyRepo := repo.NewAgencyRepository(db)
	propertyRepo := repo.NewPropertyRepository(db)
	conceptRepo := repo.NewPaymentConceptRepository(db)
	surchargeRepo := repo.NewSurchargeConfigRepository(db)
	contractRepo := repo.NewRentalContractRepository(db)

	tokens := token.NewJWTService(testSecret, 15*time.Minute)
	authSvc := services.NewAuthService(userRepo, password.NewBcryptHasher(4), tokens)

	router := handler.NewHandler(handler.Handlers{
		Auth:            handler.NewAuthHandler(authSvc),
		Agencies:        handler.NewAgencyHandler(services.NewAgencyService(agencyRepo)),
		Properties:      handler.NewPropertyHandler(services.NewPropertyService(propertyRepo, agencyRepo)),
		PaymentConcepts: handler.NewPaymentConceptHandler(services.NewPaymentConceptService(conceptRepo)),
		Surcharges:      handler.NewSurchargeConfigHandler(services.NewSurchargeConfigService(surchargeRepo)),
		Contracts:       handler.NewContractHandler(services.NewRentalContractService(contractRepo, propertyRepo, 30)),
	}, tokens, zerolog.Nop())

	server := httptest.NewServer(router)

	return &TestApp{
		DB:            db,
		Server:        server,
		Client:        server.Client(),
		ExpirationSvc: services.NewContractExpirationService(contractRepo, 30),
		DBContainer:   dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// do sends a JSON request and decodes the response into out when out is not nil.
func (app *TestApp) do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, app.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// signUpAndSignIn registers a user with the given roles and returns its token.
func (app *TestApp) signUpAndSignIn(t *testing.T, username string, roles ...string) string {
	t.Helper()

	status := app.do(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
		"role":     roles,
	}, nil)
	require.Equal(t, http.StatusOK, status)

	var signin struct {
		Token string `json:"token"`
	}
	status = app.do(t, http.MethodPost, "/api/v1/auth/signin", "", map[string]any{
		"username": username,
		"password": "secret123",
	}, &signin)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, signin.Token)
	return signin.Token
}
