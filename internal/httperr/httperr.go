// File: internal/httperr/httperr.go

// Package httperr is the single boundary translating the closed set of
// domain errors into transport-level status codes and the uniform error
// envelope. Handlers return errors; nothing else writes error responses.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"project-hub/internal/api"
	"project-hub/internal/middleware"
	"project-hub/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Handler returns the echo.HTTPErrorHandler for the whole application.
func Handler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		cid := middleware.CorrelationIDFrom(c)
		c.Response().Header().Set(middleware.HeaderCorrelationID, cid)

		status, resp := shape(err)
		resp.CorrelationID = cid

		log := zerolog.Ctx(c.Request().Context())
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", status).Msg("request failed")
		} else {
			log.Warn().Err(err).Int("status", status).Msg("request rejected")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, resp)
		}
		if writeErr != nil {
			log.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}

func shape(err error) (int, api.ErrorResponse) {
	var (
		notFound   *service.NotFoundError
		conflict   *service.ConflictError
		validation *service.ValidationError
		fieldErrs  validator.ValidationErrors
		httpErr    *echo.HTTPError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, api.ErrorResponse{
			Error:   "not_found",
			Message: notFound.Error(),
			Details: []api.FieldError{},
		}

	case errors.As(err, &conflict):
		details := conflict.Details
		if details == nil {
			details = []api.FieldError{}
		}
		return http.StatusConflict, api.ErrorResponse{
			Error:   "conflict",
			Message: conflict.Message,
			Details: details,
		}

	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity, api.ErrorResponse{
			Error:   "validation_error",
			Message: "validation failed",
			Details: validation.Details,
		}

	case errors.As(err, &fieldErrs):
		details := make([]api.FieldError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, api.FieldError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
				Code:    fe.Tag(),
			})
		}
		return http.StatusUnprocessableEntity, api.ErrorResponse{
			Error:   "validation_error",
			Message: "validation failed",
			Details: details,
		}

	case errors.As(err, &httpErr):
		msg := fmt.Sprintf("%v", httpErr.Message)
		return httpErr.Code, api.ErrorResponse{
			Error:   errorCode(httpErr.Code),
			Message: msg,
			Details: []api.FieldError{},
		}
	}

	// Unanticipated faults are logged with full context server-side and
	// rendered opaque to the caller.
	return http.StatusInternalServerError, api.ErrorResponse{
		Error:   "internal_error",
		Message: "internal server error",
		Details: []api.FieldError{},
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed validation on '%s'", fe.Tag())
	}
}

func errorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusUnprocessableEntity:
		return "validation_error"
	case http.StatusBadRequest:
		return "bad_request"
	default:
		return http.StatusText(status)
	}
}
