// File: internal/api/status.go
package api

import "time"

// StatusResponse is returned by the root endpoint.
// swagger:model StatusResponse
type StatusResponse struct {
	Message   string    `json:"message" example:"Hello World"`
	Status    string    `json:"status" example:"running"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version" example:"0.1.0"`
}

// HealthResponse is returned by the health endpoint.
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// InfoResponse describes the running application.
// swagger:model InfoResponse
type InfoResponse struct {
	AppName        string `json:"app_name" example:"project-hub"`
	Version        string `json:"version" example:"0.1.0"`
	Environment    string `json:"environment" example:"development"`
	Debug          bool   `json:"debug" example:"false"`
	MetricsEnabled bool   `json:"metrics_enabled" example:"false"`
}
