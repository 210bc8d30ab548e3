// File: internal/api/validator_test.go
package api

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestValidatorUsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&CreateUserRequest{Email: "not-an-email"})
	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)

	fields := make(map[string]string)
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fe.Tag()
	}
	require.Equal(t, "required", fields["name"])
	require.Equal(t, "email", fields["email"])
}

func TestValidatorAcceptsValidRequest(t *testing.T) {
	v := NewValidator()

	age := 30
	require.NoError(t, v.Validate(&CreateUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Age:   &age,
	}))
	require.NoError(t, v.Validate(&UpdateUserRequest{}))
	require.NoError(t, v.Validate(&CreateProjectRequest{Name: "Apollo"}))
}

func TestValidatorRejectsNegativeAge(t *testing.T) {
	v := NewValidator()

	age := -1
	err := v.Validate(&CreateUserRequest{Name: "Alice", Email: "alice@example.com", Age: &age})
	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Equal(t, "age", fieldErrs[0].Field())
	require.Equal(t, "gte", fieldErrs[0].Tag())
}

func TestValidatorPartialUpdateFields(t *testing.T) {
	v := NewValidator()

	bad := "nope"
	err := v.Validate(&UpdateUserRequest{Email: &bad})
	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Equal(t, "email", fieldErrs[0].Field())
}
