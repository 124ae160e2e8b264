package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/workfriar/timesheet-backend-go/internal/domain/project"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// ListAssigned implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListAssigned(ctx context.Context, userID string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.client_name, p.active, p.created_at, p.updated_at
		FROM projects p
		JOIN project_assignments pa ON pa.project_id = p.id
		WHERE pa.user_id = $1 AND p.active = TRUE
		ORDER BY p.name
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.ClientName, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, client_name, active, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.ClientName, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

// IsAssigned implements project.ProjectRepository.
func (r *projectRepositoryImpl) IsAssigned(ctx context.Context, userID, projectID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM project_assignments WHERE user_id = $1 AND project_id = $2)`

	var assigned bool
	if err := q.QueryRow(ctx, query, userID, projectID).Scan(&assigned); err != nil {
		return false, err
	}
	return assigned, nil
}

// ListCategories implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListCategories(ctx context.Context) ([]project.TaskCategory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, active, created_at, updated_at
		FROM task_categories
		WHERE active = TRUE
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []project.TaskCategory
	for rows.Next() {
		var c project.TaskCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
