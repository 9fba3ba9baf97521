//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/carla-io/inventory-backend/internal/adapter/postgres/component"
	"github.com/carla-io/inventory-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/carla-io/inventory-backend/internal/adapter/postgres/user"
	"github.com/carla-io/inventory-backend/internal/config"
	authsvc "github.com/carla-io/inventory-backend/internal/service/auth"
	"github.com/carla-io/inventory-backend/internal/service/inventory"
	"github.com/carla-io/inventory-backend/internal/transport/middleware"
	"github.com/carla-io/inventory-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	// 3. Repositories.
	componentRepo := component.New(pool)
	userRepo := userrepo.New(pool)

	// 4. Services. MinCost keeps registration fast under test.
	inventoryService := inventory.NewService(logger, componentRepo)
	authService := authsvc.NewService(logger, userRepo, config.AuthConfig{
		PasswordHashCost: bcrypt.MinCost,
	})

	// 5. Router.
	mux := rest.NewRouter(rest.Handlers{
		Inventory: rest.NewInventoryHandler(inventoryService, logger),
		Reports:   rest.NewReportsHandler(inventoryService, logger),
		Auth:      rest.NewAuthHandler(authService, logger),
		Health:    rest.NewHealthHandler(pool, "test-version"),
	}, config.MetricsConfig{Enabled: false})

	// 6. Middleware chain, same order as production.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Logger(logger),
	)(mux)

	// 7. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// postJSON sends a POST request with a JSON body and returns the status
// code plus the decoded response body.
func (ts *testServer) postJSON(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()
	return ts.sendJSON(t, http.MethodPost, path, body)
}

// putJSON sends a PUT request with a JSON body.
func (ts *testServer) putJSON(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()
	return ts.sendJSON(t, http.MethodPut, path, body)
}

func (ts *testServer) sendJSON(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(jsonBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeBody(t, resp)
}

// getJSON sends a GET request and returns the status code plus the
// decoded response body.
func (ts *testServer) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeBody(t, resp)
}

// deleteJSON sends a DELETE request and returns the status code plus
// the decoded response body.
func (ts *testServer) deleteJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, ts.URL+path, nil)
	require.NoError(t, err)

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return result
}

// ---------------------------------------------------------------------------
// Fixture helpers.
// ---------------------------------------------------------------------------

// uniqueName appends a random suffix so parallel tests never collide on
// component or user names.
func uniqueName(prefix string) string {
	return fmt.Sprintf("%s %s", prefix, uuid.New().String()[:8])
}

// createComponent inserts a component over the API and returns its full
// representation from the response.
func (ts *testServer) createComponent(t *testing.T, name string, stock, minStock int) map[string]any {
	t.Helper()

	status, body := ts.postJSON(t, "/add-electronics", map[string]any{
		"name":           name,
		"category":       "Microcontroller",
		"stock":          stock,
		"min_stock":      minStock,
		"specifications": "ATmega328P, 16 MHz",
		"supplier":       "Arduino LLC",
	})
	require.Equal(t, http.StatusCreated, status, "create component: %v", body)

	electronics, ok := body["electronics"].(map[string]any)
	require.True(t, ok, "expected electronics object in response")
	return electronics
}
