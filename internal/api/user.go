// File: internal/api/user.go
package api

import (
	"time"

	"project-hub/internal/model"
)

// CreateUserRequest is the JSON payload for creating a user.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required" example:"Alice"`
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`
	Age   *int   `json:"age" validate:"omitempty,gte=0" example:"30"`
}

// UpdateUserRequest carries a partial update; absent fields stay unchanged.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1" example:"Alice"`
	Email *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	Age   *int    `json:"age" validate:"omitempty,gte=0" example:"31"`
}

// UserResponse is the wire form of a user.
// swagger:model UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Age       *int      `json:"age,omitempty" example:"30"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// UserListResponse is the paginated users envelope.
// swagger:model UserListResponse
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total" example:"15"`
	Limit int            `json:"limit" example:"10"`
	Skip  int            `json:"skip" example:"0"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserListResponse(users []model.User, total, limit, skip int) UserListResponse {
	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, NewUserResponse(&users[i]))
	}
	return UserListResponse{Items: items, Total: total, Limit: limit, Skip: skip}
}
