package projects

import (
	"net/http"

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
	createProject = service.CreateProject
	getProject    = service.GetProject
	listProjects  = service.ListProjects
	updateProject = service.UpdateProject
	deleteProject = service.DeleteProject
)

// @Summary     Create a new project
// @Description A duplicate project name is a conflict
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       project body api.CreateProjectRequest true "project to create"
// @Success     201 {object} api.ProjectResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/projects [post]
func CreateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateProjectRequest
		if err := handler.BindBody(c, &req); err != nil {
			return err
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		project, err := createProject(c.Request().Context(), db, &model.Project{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			return err
		}

		zerolog.Ctx(c.Request().Context()).Info().
			Int("project_id", project.ID).
			Msg("project created")
		return c.JSON(http.StatusCreated, api.NewProjectResponse(project))
	}
}

// @Summary     List projects
// @Tags        projects
// @Produce     json
// @Param       skip  query int false "rows to skip"
// @Param       limit query int false "page size"
// @Success     200 {object} api.ProjectListResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/projects [get]
func ListProjectsHandler(db database.DB, cfg *config.Settings) echo.HandlerFunc {
	return func(c echo.Context) error {
		skip, limit, err := handler.PageParams(c, cfg)
		if err != nil {
			return err
		}

		projects, total, err := listProjects(c.Request().Context(), db, skip, limit)
		if err != nil {
			return err
		}

		zerolog.Ctx(c.Request().Context()).Info().
			Int("returned", len(projects)).
			Int("total", total).
			Msg("projects listed")
		return c.JSON(http.StatusOK, api.NewProjectListResponse(projects, total, limit, skip))
	}
}

// @Summary     Get a project by ID
// @Tags        projects
// @Produce     json
// @Param       project_id path int true "project ID"
// @Success     200 {object} api.ProjectResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/projects/{project_id} [get]
func GetProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.PathID(c, "project_id")
		if err != nil {
			return err
		}
		project, err := getProject(c.Request().Context(), db, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewProjectResponse(project))
	}
}

// @Summary     Update a project by ID
// @Description Partial update; absent fields keep their current value
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       project_id path int true "project ID"
// @Param       project body api.UpdateProjectRequest true "fields to update"
// @Success     200 {object} api.ProjectResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/projects/{project_id} [put]
func UpdateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.PathID(c, "project_id")
		if err != nil {
			return err
		}

		var req api.UpdateProjectRequest
		if err := handler.BindBody(c, &req); err != nil {
			return err
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		project, err := updateProject(c.Request().Context(), db, id, req.Name, req.Description)
		if err != nil {
			return err
		}

		zerolog.Ctx(c.Request().Context()).Info().
			Int("project_id", project.ID).
			Msg("project updated")
		return c.JSON(http.StatusOK, api.NewProjectResponse(project))
	}
}

// @Summary     Delete a project by ID
// @Description Memberships cascade; member users are untouched
// @Tags        projects
// @Param       project_id path int true "project ID"
// @Success     204 "No Content"
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /v1/projects/{project_id} [delete]
func DeleteProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.PathID(c, "project_id")
		if err != nil {
			return err
		}
		if err := deleteProject(c.Request().Context(), db, id); err != nil {
			return err
		}

		zerolog.Ctx(c.Request().Context()).Info().
			Int("project_id", id).
			Msg("project deleted")
		return c.NoContent(http.StatusNoContent)
	}
}
