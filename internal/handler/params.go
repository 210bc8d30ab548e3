// File: internal/handler/params.go
package handler

import (
	"fmt"
	"strconv"

	"project-hub/internal/config"
	"project-hub/internal/service"

	"github.com/labstack/echo/v4"
)

// PathID parses an integer path parameter. A non-integer value is a
// validation failure, not a routing concern.
func PathID(c echo.Context, name string) (int, error) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, service.NewValidationError(name, "must be a positive integer", "invalid_id")
	}
	return id, nil
}

// PageParams reads skip/limit from the query string, applying the configured
// default and upper bound.
func PageParams(c echo.Context, cfg *config.Settings) (skip, limit int, err error) {
	skip = 0
	limit = cfg.DefaultPageSize

	if raw := c.QueryParam("skip"); raw != "" {
		skip, err = strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return 0, 0, service.NewValidationError("skip", "must be zero or greater", "invalid_skip")
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return 0, 0, service.NewValidationError("limit", "must be a positive integer", "invalid_limit")
		}
	}
	if limit > cfg.MaxPageSize {
		return 0, 0, service.NewValidationError(
			"limit",
			fmt.Sprintf("must be %d or less", cfg.MaxPageSize),
			"invalid_limit",
		)
	}
	return skip, limit, nil
}

// BindBody binds the JSON body and normalizes bind failures into the
// validation taxonomy.
func BindBody(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return service.NewValidationError("body", "malformed request body", "invalid_body")
	}
	return nil
}
