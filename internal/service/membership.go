// File: internal/service/membership.go
package service

import (
	"context"
	"fmt"
	"strings"

	"project-hub/internal/database"
	"project-hub/internal/model"
	"project-hub/internal/store"
)

var (
	storeAddMember        = store.AddProjectMember
	storeRemoveMember     = store.RemoveProjectMember
	storeListProjectUsers = store.ListProjectUsers
	storeListUserProjects = store.ListUserProjects
)

// AddUserToProject relies on the association table's constraints: a foreign
// key violation means one side is missing, a unique violation means the
// membership already exists.
func AddUserToProject(ctx context.Context, db database.DB, projectID, userID int) error {
	err := storeAddMember(ctx, db, projectID, userID)
	if err == nil {
		return nil
	}
	switch {
	case isForeignKeyViolation(err):
		if strings.Contains(constraintName(err), "user_id") {
			return NewNotFound("user", userID)
		}
		return NewNotFound("project", projectID)
	case isUniqueViolation(err):
		return &ConflictError{
			Message: fmt.Sprintf("user '%d' is already a member of project '%d'", userID, projectID),
		}
	}
	return err
}

func RemoveUserFromProject(ctx context.Context, db database.DB, projectID, userID int) error {
	affected, err := storeRemoveMember(ctx, db, projectID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{
			Resource: "membership",
			Message:  fmt.Sprintf("user '%d' is not a member of project '%d'", userID, projectID),
		}
	}
	return nil
}

// ListProjectUsers returns the project's members ordered by user id. An empty
// membership is not an error, but a missing project is.
func ListProjectUsers(ctx context.Context, db database.DB, projectID int) ([]model.User, error) {
	if _, err := GetProject(ctx, db, projectID); err != nil {
		return nil, err
	}
	return storeListProjectUsers(ctx, db, projectID)
}

func ListUserProjects(ctx context.Context, db database.DB, userID int) ([]model.Project, error) {
	if _, err := GetUser(ctx, db, userID); err != nil {
		return nil, err
	}
	return storeListUserProjects(ctx, db, userID)
}
