package project

import (
	"context"
)

// ProjectRepository defines data access for projects and categories.
type ProjectRepository interface {
	// ListAssigned returns the active projects a user may log time on.
	ListAssigned(ctx context.Context, userID string) ([]Project, error)

	// GetByID retrieves one project.
	GetByID(ctx context.Context, id string) (Project, error)

	// IsAssigned reports whether the user may log time on the project.
	IsAssigned(ctx context.Context, userID, projectID string) (bool, error)

	// ListCategories returns the active task categories.
	ListCategories(ctx context.Context) ([]TaskCategory, error)
}
