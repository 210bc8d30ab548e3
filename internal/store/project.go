package store

import (
	"context"
	"fmt"

	"project-hub/internal/database"
	"project-hub/internal/model"
)

func CreateProject(ctx context.Context, db database.DB, p *model.Project) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO projects (name, description)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		p.Name,
		p.Description,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateProject: %w", err)
	}
	return p, nil
}

func GetProjectByID(ctx context.Context, db database.DB, projectID int) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, description, created_at
		 FROM projects WHERE id = $1`,
		projectID,
	)
	p := &model.Project{}
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetProjectByID: %w", err)
	}
	return p, nil
}

func ListProjects(ctx context.Context, db database.DB, skip, limit int) ([]model.Project, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, description, created_at
		 FROM projects ORDER BY id OFFSET $1 LIMIT $2`,
		skip,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListProjects: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	return projects, nil
}

func CountProjects(ctx context.Context, db database.DB) (int, error) {
	var total int
	row := db.QueryRow(ctx, `SELECT COUNT(*) FROM projects`)
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("CountProjects: %w", err)
	}
	return total, nil
}

func UpdateProject(ctx context.Context, db database.DB, projectID int, name, description *string) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`UPDATE projects
		 SET name = COALESCE($2, name),
		     description = COALESCE($3, description)
		 WHERE id = $1
		 RETURNING id, name, description, created_at`,
		projectID,
		name,
		description,
	)
	p := &model.Project{}
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("UpdateProject: %w", err)
	}
	return p, nil
}

func DeleteProject(ctx context.Context, db database.DB, projectID int) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM projects WHERE id = $1`,
		projectID,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteProject: %w", err)
	}
	return tag.RowsAffected(), nil
}
