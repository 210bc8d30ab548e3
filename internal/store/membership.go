package store

import (
	"context"
	"fmt"

	"project-hub/internal/database"
	"project-hub/internal/model"
)

func AddProjectMember(ctx context.Context, db database.DB, projectID, userID int) error {
	_, err := db.Exec(ctx,
		`INSERT INTO project_users (project_id, user_id)
		 VALUES ($1, $2)`,
		projectID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("AddProjectMember: %w", err)
	}
	return nil
}

func RemoveProjectMember(ctx context.Context, db database.DB, projectID, userID int) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM project_users
		 WHERE project_id = $1 AND user_id = $2`,
		projectID,
		userID,
	)
	if err != nil {
		return 0, fmt.Errorf("RemoveProjectMember: %w", err)
	}
	return tag.RowsAffected(), nil
}

func ListProjectUsers(ctx context.Context, db database.DB, projectID int) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT u.id, u.name, u.email, u.age, u.created_at
		 FROM users u
		 JOIN project_users pu ON pu.user_id = u.id
		 WHERE pu.project_id = $1
		 ORDER BY u.id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProjectUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Age, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListProjectUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProjectUsers: %w", err)
	}
	return users, nil
}

func ListUserProjects(ctx context.Context, db database.DB, userID int) ([]model.Project, error) {
	rows, err := db.Query(ctx,
		`SELECT p.id, p.name, p.description, p.created_at
		 FROM projects p
		 JOIN project_users pu ON pu.project_id = p.id
		 WHERE pu.user_id = $1
		 ORDER BY p.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUserProjects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListUserProjects: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUserProjects: %w", err)
	}
	return projects, nil
}
