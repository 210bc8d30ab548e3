package users

import (
	"net/http"
	"strings"

	"project-hub/internal/api"
	"project-hub/internal/config"
	"project-hub/internal/database"
	"project-hub/internal/handler"
	"project-hub/internal/model"
	"project-hub/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var (
	createUser = service.CreateUser
	getUser    = service.GetUser
	listUsers  = service.ListUsers
	updateUser = service.UpdateUser
	deleteUser = service.DeleteUser
)

// @Summary     Create a new user
// @Description Email is stored lowercase; a duplicate email is a conflict
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user body api.CreateUserRequest true "user to create"
// @Success     201 {object} api.UserResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := handler.BindBody(c, &req); err != nil {
			return err
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		req.Email = strings.ToLower(req.Email)
		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:  req.Name,
			Email: req.Email,
			Age:   req.Age,
		})
		if err != nil {
			return err
		}

		zerolog.Ctx(c.Request().Context()).Info().
			Int("user_id", user.ID).
			Msg("user created")
		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// @Summary     List users
// @Description Stable id-ascending order with skip/limit pagination
// @Tags        users
// @Produce     json
// @Param       skip  query int false "rows to skip"
// @Param       limit query int false "page size"
// @Success     200 {object} api.UserListResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/users [get]
func ListUsersHandler(db database.DB, cfg *config.Settings) echo.HandlerFunc {
	return func(c echo.Context) error {
		skip, limit, err := handler.PageParams(c, cfg)
		if err != nil {
			return err
		}

		users, total, err := listUsers(c.Request().Context(), db, skip, limit)
		if err != nil {
			return err
		}

		zerolog.Ctx(c.Request().Context()).Info().
			Int("returned", len(users)).
			Int("total", total).
			Msg("users listed")
		return c.JSON(http.StatusOK, api.NewUserListResponse(users, total, limit, skip))
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       user_id path int true "user ID"
// @Success     200 {object} api.UserResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/users/{user_id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.PathID(c, "user_id")
		if err != nil {
			return err
		}
		user, err := getUser(c.Request().Context(), db, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Update a user by ID
// @Description Partial update; absent fields keep their current value
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user_id path int true "user ID"
// @Param       user body api.UpdateUserRequest true "fields to update"
// @Success     200 {object} api.UserResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/users/{user_id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.PathID(c, "user_id")
		if err != nil {
			return err
		}

		var req api.UpdateUserRequest
		if err := handler.BindBody(c, &req); err != nil {
			return err
		}
		if err := c.Validate(&req); err != nil {
			return err
		}
		if req.Email != nil {
			lower := strings.ToLower(*req.Email)
			req.Email = &lower
		}

		user, err := updateUser(c.Request().Context(), db, id, req.Name, req.Email, req.Age)
		if err != nil {
			return err
		}

		zerolog.Ctx(c.Request().Context()).Info().
			Int("user_id", user.ID).
			Msg("user updated")
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Delete a user by ID
// @Description Memberships cascade; projects themselves are untouched
// @Tags        users
// @Param       user_id path int true "user ID"
// @Success     204 "No Content"
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/users/{user_id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.PathID(c, "user_id")
		if err != nil {
			return err
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return err
		}

		zerolog.Ctx(c.Request().Context()).Info().
			Int("user_id", id).
			Msg("user deleted")
		return c.NoContent(http.StatusNoContent)
	}
}
