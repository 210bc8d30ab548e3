package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-hub/internal/api"
	"project-hub/internal/middleware"
	"project-hub/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, err error) (*httptest.ResponseRecorder, api.ErrorResponse) {
	t.Helper()
	e := echo.New()
	e.Validator = api.NewValidator()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextCorrelationIDKey, "test-cid")

	Handler()(err, c)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestHandlerNotFound(t *testing.T) {
	rec, resp := perform(t, service.NewNotFound("user", 999))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "not_found", resp.Error)
	require.Contains(t, resp.Message, "999")
	require.NotNil(t, resp.Details)
	require.Empty(t, resp.Details)
	require.Equal(t, "test-cid", resp.CorrelationID)
	require.Equal(t, "test-cid", rec.Header().Get(middleware.HeaderCorrelationID))
}

func TestHandlerConflict(t *testing.T) {
	rec, resp := perform(t, &service.ConflictError{
		Message: "a user with this email already exists",
		Details: []api.FieldError{{Field: "email", Message: "email address is already in use", Code: "email_exists"}},
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "conflict", resp.Error)
	require.Len(t, resp.Details, 1)
	require.Equal(t, "email", resp.Details[0].Field)
	require.Equal(t, "test-cid", resp.CorrelationID)
}

func TestHandlerConflictNoDetails(t *testing.T) {
	rec, resp := perform(t, &service.ConflictError{Message: "duplicate membership"})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, resp.Details)
	require.Empty(t, resp.Details)
}

func TestHandlerValidationError(t *testing.T) {
	rec, resp := perform(t, service.NewValidationError("user_id", "must be a positive integer", "invalid_id"))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "validation_error", resp.Error)
	require.Len(t, resp.Details, 1)
	require.Equal(t, "user_id", resp.Details[0].Field)
	require.Equal(t, "invalid_id", resp.Details[0].Code)
}

func TestHandlerValidatorFieldErrors(t *testing.T) {
	// Run a real payload through the validator so the handler sees
	// validator.ValidationErrors exactly as a handler would return them.
	v := api.NewValidator()
	err := v.Validate(&api.CreateUserRequest{Email: "not-an-email"})
	require.Error(t, err)

	rec, resp := perform(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "validation_error", resp.Error)

	fields := map[string]string{}
	for _, d := range resp.Details {
		fields[d.Field] = d.Code
	}
	require.Equal(t, "required", fields["name"])
	require.Equal(t, "email", fields["email"])
	require.Equal(t, "test-cid", resp.CorrelationID)
}

func TestHandlerEchoHTTPError(t *testing.T) {
	rec, resp := perform(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "not_found", resp.Error)
	require.Equal(t, "route not found", resp.Message)
}

func TestHandlerInternal(t *testing.T) {
	rec, resp := perform(t, errors.New("pq: connection reset"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "internal_error", resp.Error)
	// Internals never leak to the caller.
	require.Equal(t, "internal server error", resp.Message)
	require.NotContains(t, rec.Body.String(), "connection reset")
	require.Equal(t, "test-cid", resp.CorrelationID)
}

func TestHandlerCommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, c.NoContent(http.StatusOK))

	Handler()(errors.New("late failure"), c)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestHandlerHeadRequest(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextCorrelationIDKey, "head-cid")

	Handler()(service.NewNotFound("user", 1), c)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Empty(t, rec.Body.String())
	require.Equal(t, "head-cid", rec.Header().Get(middleware.HeaderCorrelationID))
}
