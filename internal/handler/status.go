// File: internal/handler/status.go
package handler

import (
	"net/http"
	"time"

	"project-hub/internal/api"
	"project-hub/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RootHandler reports the fixed status payload.
// @Summary     Application status
// @Description Returns a fixed message, running status and the current timestamp
// @Tags        status
// @Produce     json
// @Success     200 {object} api.StatusResponse
// @Router      / [get]
func RootHandler(cfg *config.Settings) echo.HandlerFunc {
	return func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("root endpoint accessed")
		return c.JSON(http.StatusOK, api.StatusResponse{
			Message:   "Hello World",
			Status:    "running",
			Timestamp: time.Now(),
			Version:   cfg.AppVersion,
		})
	}
}

// HealthHandler is the liveness probe.
// @Summary     Health check
// @Tags        status
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Router      /health [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Debug().Msg("health endpoint accessed")
		return c.JSON(http.StatusOK, api.HealthResponse{Status: "healthy"})
	}
}

// InfoHandler describes the running application.
// @Summary     Application info
// @Tags        status
// @Produce     json
// @Success     200 {object} api.InfoResponse
// @Router      /info [get]
func InfoHandler(cfg *config.Settings) echo.HandlerFunc {
	return func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("info endpoint accessed")
		return c.JSON(http.StatusOK, api.InfoResponse{
			AppName:        cfg.AppName,
			Version:        cfg.AppVersion,
			Environment:    cfg.Environment,
			Debug:          cfg.Debug,
			MetricsEnabled: cfg.EnableMetrics,
		})
	}
}
