// File: internal/api/error.go
package api

// FieldError describes a single offending field in a validation or
// business-rule failure.
// swagger:model FieldError
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"must be a valid email address"`
	Code    string `json:"code" example:"email"`
}

// ErrorResponse is the one envelope every error is rendered with, regardless
// of kind. CorrelationID always matches the X-Correlation-ID response header.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error         string       `json:"error" example:"not_found"`
	Message       string       `json:"message" example:"user with id '999' not found"`
	Detail        string       `json:"detail,omitempty" example:""`
	Details       []FieldError `json:"details"`
	CorrelationID string       `json:"correlation_id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
}
