//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"marketplace-api/internal/auth"
	"marketplace-api/internal/config"
	"marketplace-api/internal/database"
	"marketplace-api/internal/handler"
	"marketplace-api/internal/middleware"
	"marketplace-api/internal/repository"
	"marketplace-api/internal/router"
	"marketplace-api/internal/service"
)

// openDatabase connects to TEST_DATABASE_URL, applies migrations and empties
// every table. Tests are skipped when the variable is unset.
func openDatabase(t *testing.T) *database.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, database.Options{URL: url, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))
	_, err = db.Pool.Exec(ctx, `TRUNCATE contact_messages, products, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return db
}

func newServer(t *testing.T, db *database.DB) *httptest.Server {
	t.Helper()

	tokens, err := auth.NewTokenManager("test-secret", 15*time.Minute)
	require.NoError(t, err)
	authService, err := service.NewAuthService(repository.NewUserRepository(db.Pool), tokens, bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
		RequestTimeout:   10 * time.Second,
		MaxBodyBytes:     1 << 20,
	}

	server := httptest.NewServer(router.New(cfg, middleware.NewAuthMiddleware(authService), router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Product: handler.NewProductHandler(service.NewProductService(repository.NewProductRepository(db.Pool))),
		Contact: handler.NewContactHandler(service.NewContactService(repository.NewContactRepository(db.Pool))),
		Health:  handler.NewHealthHandler(db),
	}))
	t.Cleanup(server.Close)

	return server
}

func doJSON(t *testing.T, method string, url string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}
