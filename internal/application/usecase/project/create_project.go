// Package project contains project hierarchy use cases: projects, sites and
// stages.
package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// CreateProjectInput represents the input for project creation.
type CreateProjectInput struct {
	Name         string
	Description  string
	ContractorID uuid.UUID
}

// CreateProjectOutput represents the output of project creation.
type CreateProjectOutput struct {
	Project *entity.Project
}

// CreateProjectUseCase handles project creation.
type CreateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
	userRepo    adapter.UserRepository
}

// NewCreateProjectUseCase creates a new CreateProjectUseCase instance.
func NewCreateProjectUseCase(projectRepo adapter.ProjectRepository, userRepo adapter.UserRepository) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Execute performs the project creation.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	if _, err := uc.userRepo.FindByID(ctx, input.ContractorID); err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeContractorNotFound,
			"contractor not found",
			domainerror.ErrContractorNotFound,
		)
	}

	project := entity.NewProject(input.Name, input.Description, input.ContractorID)

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &CreateProjectOutput{Project: project}, nil
}
