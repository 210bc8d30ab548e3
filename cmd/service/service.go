// File: cmd/service/service.go
package main

import (
	"context"
	"fmt"
	"os"

	"project-hub/internal/api"
	"project-hub/internal/config"
	"project-hub/internal/database"
	"project-hub/internal/logging"
	"project-hub/internal/router"

	"github.com/labstack/echo/v4"

	_ "project-hub/docs" // swag generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// Indirections for the failure-path tests.
var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	log := logging.New(cfg.LogLevel, cfg.JSONLogs)
	log.Info().
		Str("app", cfg.AppName).
		Str("version", cfg.AppVersion).
		Str("environment", cfg.Environment).
		Bool("debug", cfg.Debug).
		Msg("application starting")

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	e.Validator = api.NewValidator()

	router.Setup(e, db, cfg, log)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.Info().Str("addr", cfg.Addr()).Msg("listening")
	return startServer(e, cfg.Addr())
}
