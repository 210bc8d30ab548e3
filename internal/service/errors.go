// File: internal/service/errors.go
package service

import (
	"errors"
	"fmt"

	"project-hub/internal/api"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// The service layer raises a closed set of error kinds. The HTTP boundary
// translates them once; handlers and stores never shape responses.

// NotFoundError signals a referenced entity (or membership) is absent.
type NotFoundError struct {
	Resource string
	ID       int
	Message  string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s with id '%d' not found", e.Resource, e.ID)
}

func NewNotFound(resource string, id int) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError signals a domain-rule violation, typically uniqueness.
type ConflictError struct {
	Message string
	Details []api.FieldError
}

func (e *ConflictError) Error() string { return e.Message }

// ValidationError signals malformed input detected before any business logic
// runs (bad path parameters, unreadable bodies, out-of-range paging).
type ValidationError struct {
	Details []api.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 1 {
		return fmt.Sprintf("validation failed: %s %s", e.Details[0].Field, e.Details[0].Message)
	}
	return fmt.Sprintf("validation failed on %d fields", len(e.Details))
}

func NewValidationError(field, message, code string) *ValidationError {
	return &ValidationError{Details: []api.FieldError{{Field: field, Message: message, Code: code}}}
}

func isPgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isUniqueViolation(err error) bool {
	return isPgErrCode(err, pgerrcode.UniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return isPgErrCode(err, pgerrcode.ForeignKeyViolation)
}

// constraintName extracts the violated constraint so callers can tell which
// side of a composite reference failed.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
