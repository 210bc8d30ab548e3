// File: internal/service/project.go
package service

import (
	"context"
	"errors"

	"project-hub/internal/api"
	"project-hub/internal/database"
	"project-hub/internal/model"
	"project-hub/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	storeCreateProject = store.CreateProject
	storeGetProject    = store.GetProjectByID
	storeListProjects  = store.ListProjects
	storeCountProjects = store.CountProjects
	storeUpdateProject = store.UpdateProject
	storeDeleteProject = store.DeleteProject
)

func nameConflict() *ConflictError {
	return &ConflictError{
		Message: "a project with this name already exists",
		Details: []api.FieldError{{
			Field:   "name",
			Message: "project name is already in use",
			Code:    "name_exists",
		}},
	}
}

func CreateProject(ctx context.Context, db database.DB, p *model.Project) (*model.Project, error) {
	created, err := storeCreateProject(ctx, db, p)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, nameConflict()
		}
		return nil, err
	}
	return created, nil
}

func GetProject(ctx context.Context, db database.DB, projectID int) (*model.Project, error) {
	p, err := storeGetProject(ctx, db, projectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewNotFound("project", projectID)
		}
		return nil, err
	}
	return p, nil
}

func ListProjects(ctx context.Context, db database.DB, skip, limit int) ([]model.Project, int, error) {
	projects, err := storeListProjects(ctx, db, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := storeCountProjects(ctx, db)
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func UpdateProject(ctx context.Context, db database.DB, projectID int, name, description *string) (*model.Project, error) {
	p, err := storeUpdateProject(ctx, db, projectID, name, description)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, NewNotFound("project", projectID)
		case isUniqueViolation(err):
			return nil, nameConflict()
		}
		return nil, err
	}
	return p, nil
}

func DeleteProject(ctx context.Context, db database.DB, projectID int) error {
	affected, err := storeDeleteProject(ctx, db, projectID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return NewNotFound("project", projectID)
	}
	return nil
}
