// File: internal/router/router_test.go
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-hub/internal/api"
	"project-hub/internal/config"
	"project-hub/internal/logging"
	"project-hub/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testSettings() *config.Settings {
	return &config.Settings{
		AppName:         "project-hub",
		AppVersion:      "0.0.0-test",
		Environment:     "development",
		DefaultPageSize: 100,
		MaxPageSize:     100,
	}
}

func newRouter(cfg *config.Settings) *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	Setup(e, nil, cfg, logging.New("error", true))
	return e
}

func TestSetupRoutes(t *testing.T) {
	e := newRouter(testSettings())

	want := map[string]string{
		"/":                                   http.MethodGet,
		"/health":                             http.MethodGet,
		"/info":                               http.MethodGet,
		"/v1/users":                           http.MethodPost,
		"/v1/users/:user_id":                  http.MethodPut,
		"/v1/projects":                        http.MethodPost,
		"/v1/projects/:project_id":            http.MethodDelete,
		"/v1/projects/:project_id/users":      http.MethodGet,
		"/v1/projects/user/:user_id/projects": http.MethodGet,
	}

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for path, method := range want {
		require.True(t, registered[method+" "+path], "missing route %s %s", method, path)
	}
	require.True(t, registered[http.MethodGet+" /v1/users"])
	require.True(t, registered[http.MethodGet+" /v1/users/:user_id"])
	require.True(t, registered[http.MethodDelete+" /v1/users/:user_id"])
	require.True(t, registered[http.MethodGet+" /v1/projects"])
	require.True(t, registered[http.MethodGet+" /v1/projects/:project_id"])
	require.True(t, registered[http.MethodPut+" /v1/projects/:project_id"])
	require.True(t, registered[http.MethodPost+" /v1/projects/:project_id/users/:user_id"])
	require.True(t, registered[http.MethodDelete+" /v1/projects/:project_id/users/:user_id"])
}

func TestSetupCorrelationIDOnEveryResponse(t *testing.T) {
	e := newRouter(testSettings())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(middleware.HeaderCorrelationID))
}

func TestSetupPropagatesCorrelationID(t *testing.T) {
	e := newRouter(testSettings())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.HeaderCorrelationID, "caller-supplied-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, "caller-supplied-id", rec.Header().Get(middleware.HeaderCorrelationID))
}

func TestSetupUnknownRouteEnvelope(t *testing.T) {
	e := newRouter(testSettings())

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "not_found", resp.Error)
	require.Equal(t, resp.CorrelationID, rec.Header().Get(middleware.HeaderCorrelationID))
}

func TestSetupTrailingSlashNormalized(t *testing.T) {
	e := newRouter(testSettings())

	req := httptest.NewRequest(http.MethodGet, "/health/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSetupCORSDisabledByDefault(t *testing.T) {
	e := newRouter(testSettings())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "https://example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestSetupCORSEnabled(t *testing.T) {
	cfg := testSettings()
	cfg.EnableCORS = true
	cfg.AllowedHosts = []string{"*"}
	e := newRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "https://example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
