package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// UpdateProjectInput represents the input for project update.
type UpdateProjectInput struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    *bool
}

// UpdateProjectOutput represents the output of project update.
type UpdateProjectOutput struct {
	Project *entity.Project
}

// UpdateProjectUseCase handles project updates.
type UpdateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewUpdateProjectUseCase creates a new UpdateProjectUseCase instance.
func NewUpdateProjectUseCase(projectRepo adapter.ProjectRepository) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: projectRepo}
}

// Execute performs the project update.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	prj, err := uc.projectRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}

	prj.Name = input.Name
	prj.Description = input.Description
	if input.IsActive != nil {
		prj.IsActive = *input.IsActive
	}
	prj.UpdatedAt = time.Now().UTC()

	if err := uc.projectRepo.Update(ctx, prj); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return &UpdateProjectOutput{Project: prj}, nil
}
