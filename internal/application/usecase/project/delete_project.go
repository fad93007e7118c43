package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// DeleteProjectInput represents the input for project deletion.
type DeleteProjectInput struct {
	ID uuid.UUID
}

// DeleteProjectUseCase handles project deletion. The store cascades the
// delete through sites, stages, estimates, line items and their attached
// transactions.
type DeleteProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewDeleteProjectUseCase creates a new DeleteProjectUseCase instance.
func NewDeleteProjectUseCase(projectRepo adapter.ProjectRepository) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: projectRepo}
}

// Execute performs the project deletion.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if _, err := uc.projectRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewProjectError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}

	if err := uc.projectRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
