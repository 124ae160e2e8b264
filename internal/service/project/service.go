package project

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workfriar/timesheet-backend-go/internal/domain/project"
)

// ProjectService exposes the project and task category catalogs used to
// populate new timesheet rows.
type ProjectService interface {
	ListForUser(ctx context.Context) (project.ListProjectsResponse, error)
}

type ProjectServiceImpl struct {
	project.ProjectRepository
}

func NewProjectService(projectRepo project.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{ProjectRepository: projectRepo}
}

// ListForUser implements ProjectService. Returns the signed-in user's
// assigned projects together with the active task categories.
func (s *ProjectServiceImpl) ListForUser(ctx context.Context) (project.ListProjectsResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return project.ListProjectsResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return project.ListProjectsResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	projects, err := s.ProjectRepository.ListAssigned(ctx, userID)
	if err != nil {
		return project.ListProjectsResponse{}, fmt.Errorf("failed to list assigned projects: %w", err)
	}

	categories, err := s.ProjectRepository.ListCategories(ctx)
	if err != nil {
		return project.ListProjectsResponse{}, fmt.Errorf("failed to list task categories: %w", err)
	}

	resp := project.ListProjectsResponse{
		Projects:   []project.ProjectResponse{},
		Categories: []project.TaskCategoryResponse{},
	}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, project.ProjectResponse{
			ID:         p.ID,
			Name:       p.Name,
			ClientName: p.ClientName,
		})
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, project.TaskCategoryResponse{
			ID:   c.ID,
			Name: c.Name,
		})
	}
	return resp, nil
}
