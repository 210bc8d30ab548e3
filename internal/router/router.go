// File: internal/router/router.go
package router

import (
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"project-hub/internal/config"
	"project-hub/internal/database"
	"project-hub/internal/handler"
	"project-hub/internal/handler/projects"
	"project-hub/internal/handler/users"
	"project-hub/internal/httperr"
	"project-hub/internal/middleware"
)

// Setup registers middleware and all routes. CorrelationID is outermost so
// every log line and every error response carries the id.
func Setup(e *echo.Echo, db database.DB, cfg *config.Settings, log zerolog.Logger) {
	e.HTTPErrorHandler = httperr.Handler()

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(middleware.CorrelationID(log))
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.Secure())
	if cfg.EnableCORS {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: cfg.AllowedHosts,
		}))
	}

	e.GET("/", handler.RootHandler(cfg))
	e.GET("/health", handler.HealthHandler())
	e.GET("/info", handler.InfoHandler(cfg))

	v1 := e.Group("/v1")

	apiUsers := v1.Group("/users")
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.GET("", users.ListUsersHandler(db, cfg))
	apiUsers.GET("/:user_id", users.GetUserHandler(db))
	apiUsers.PUT("/:user_id", users.UpdateUserHandler(db))
	apiUsers.DELETE("/:user_id", users.DeleteUserHandler(db))

	apiProjects := v1.Group("/projects")
	apiProjects.POST("", projects.CreateProjectHandler(db))
	apiProjects.GET("", projects.ListProjectsHandler(db, cfg))
	apiProjects.GET("/user/:user_id/projects", projects.ListUserProjectsHandler(db))
	apiProjects.GET("/:project_id", projects.GetProjectHandler(db))
	apiProjects.PUT("/:project_id", projects.UpdateProjectHandler(db))
	apiProjects.DELETE("/:project_id", projects.DeleteProjectHandler(db))
	apiProjects.GET("/:project_id/users", projects.ListMembersHandler(db))
	apiProjects.POST("/:project_id/users/:user_id", projects.AddMemberHandler(db))
	apiProjects.DELETE("/:project_id/users/:user_id", projects.RemoveMemberHandler(db))
}
