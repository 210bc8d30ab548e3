// File: internal/api/project.go
package api

import (
	"time"

	"project-hub/internal/model"
)

// CreateProjectRequest is the JSON payload for creating a project.
// swagger:model CreateProjectRequest
type CreateProjectRequest struct {
	Name        string  `json:"name" validate:"required" example:"apollo"`
	Description *string `json:"description" example:"Lunar landing program"`
}

// UpdateProjectRequest carries a partial update; absent fields stay unchanged.
// swagger:model UpdateProjectRequest
type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1" example:"apollo"`
	Description *string `json:"description" example:"Lunar landing program"`
}

// ProjectResponse is the wire form of a project.
// swagger:model ProjectResponse
type ProjectResponse struct {
	ID          int       `json:"id" example:"1"`
	Name        string    `json:"name" example:"apollo"`
	Description *string   `json:"description,omitempty" example:"Lunar landing program"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// ProjectListResponse is the paginated projects envelope.
// swagger:model ProjectListResponse
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Total int               `json:"total" example:"3"`
	Limit int               `json:"limit" example:"10"`
	Skip  int               `json:"skip" example:"0"`
}

func NewProjectResponse(p *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func NewProjectListResponse(projects []model.Project, total, limit, skip int) ProjectListResponse {
	items := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, NewProjectResponse(&projects[i]))
	}
	return ProjectListResponse{Items: items, Total: total, Limit: limit, Skip: skip}
}
