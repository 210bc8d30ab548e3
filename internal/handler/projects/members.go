package projects

import (
	"net/http"

	"project-hub/internal/api"
	"project-hub/internal/database"
	"project-hub/internal/handler"
	"project-hub/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var (
	addMember        = service.AddUserToProject
	removeMember     = service.RemoveUserFromProject
	listProjectUsers = service.ListProjectUsers
	listUserProjects = service.ListUserProjects
)

// @Summary     Add a user to a project
// @Description Duplicate membership is a conflict
// @Tags        memberships
// @Param       project_id path int true "project ID"
// @Param       user_id    path int true "user ID"
// @Success     204 "No Content"
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/projects/{project_id}/users/{user_id} [post]
func AddMemberHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := handler.PathID(c, "project_id")
		if err != nil {
			return err
		}
		userID, err := handler.PathID(c, "user_id")
		if err != nil {
			return err
		}

		if err := addMember(c.Request().Context(), db, projectID, userID); err != nil {
			return err
		}

		zerolog.Ctx(c.Request().Context()).Info().
			Int("project_id", projectID).
			Int("user_id", userID).
			Msg("user added to project")
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Remove a user from a project
// @Tags        memberships
// @Param       project_id path int true "project ID"
// @Param       user_id    path int true "user ID"
// @Success     204 "No Content"
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/projects/{project_id}/users/{user_id} [delete]
func RemoveMemberHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := handler.PathID(c, "project_id")
		if err != nil {
			return err
		}
		userID, err := handler.PathID(c, "user_id")
		if err != nil {
			return err
		}

		if err := removeMember(c.Request().Context(), db, projectID, userID); err != nil {
			return err
		}

		zerolog.Ctx(c.Request().Context()).Info().
			Int("project_id", projectID).
			Int("user_id", userID).
			Msg("user removed from project")
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     List users in a project
// @Description Empty list when the project has no members
// @Tags        memberships
// @Produce     json
// @Param       project_id path int true "project ID"
// @Success     200 {array} api.UserResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/projects/{project_id}/users [get]
func ListMembersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := handler.PathID(c, "project_id")
		if err != nil {
			return err
		}

		users, err := listProjectUsers(c.Request().Context(), db, projectID)
		if err != nil {
			return err
		}

		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, api.NewUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     List projects for a user
// @Description Empty list when the user belongs to no projects
// @Tags        memberships
// @Produce     json
// @Param       user_id path int true "user ID"
// @Success     200 {array} api.ProjectResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/projects/user/{user_id}/projects [get]
func ListUserProjectsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := handler.PathID(c, "user_id")
		if err != nil {
			return err
		}

		projects, err := listUserProjects(c.Request().Context(), db, userID)
		if err != nil {
			return err
		}

		resp := make([]api.ProjectResponse, 0, len(projects))
		for i := range projects {
			resp = append(resp, api.NewProjectResponse(&projects[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
