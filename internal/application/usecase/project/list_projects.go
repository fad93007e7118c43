package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// ListProjectsOutput represents the output of listing projects.
type ListProjectsOutput struct {
	Projects []*entity.Project
}

// ListProjectsUseCase handles project listing.
type ListProjectsUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewListProjectsUseCase creates a new ListProjectsUseCase instance.
func NewListProjectsUseCase(projectRepo adapter.ProjectRepository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: projectRepo}
}

// Execute performs the project listing.
func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return &ListProjectsOutput{Projects: projects}, nil
}

// GetProjectUseCase handles single project retrieval.
type GetProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewGetProjectUseCase creates a new GetProjectUseCase instance.
func NewGetProjectUseCase(projectRepo adapter.ProjectRepository) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: projectRepo}
}

// Execute retrieves one project by ID.
func (uc *GetProjectUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := uc.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}
	return project, nil
}
