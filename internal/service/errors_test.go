package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	require.Equal(t, "user with id '999' not found", NewNotFound("user", 999).Error())

	withMsg := &NotFoundError{Resource: "membership", Message: "user '7' is not a member of project '2'"}
	require.Equal(t, "user '7' is not a member of project '2'", withMsg.Error())

	single := NewValidationError("name", "is required", "required")
	require.Contains(t, single.Error(), "name")

	multi := &ValidationError{Details: append(single.Details, single.Details...)}
	require.Contains(t, multi.Error(), "2 fields")
}

func TestPgErrorHelpers(t *testing.T) {
	unique := fmt.Errorf("wrapped: %w", &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "users_email_key",
	})
	require.True(t, isUniqueViolation(unique))
	require.False(t, isForeignKeyViolation(unique))
	require.Equal(t, "users_email_key", constraintName(unique))

	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	require.True(t, isForeignKeyViolation(fk))
	require.False(t, isUniqueViolation(fk))

	plain := errors.New("boom")
	require.False(t, isUniqueViolation(plain))
	require.Empty(t, constraintName(plain))
}
