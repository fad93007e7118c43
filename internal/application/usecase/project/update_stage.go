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

// UpdateStageInput represents the input for stage update.
type UpdateStageInput struct {
	ID               uuid.UUID
	Order            int
	Name             string
	PlannedStartDate *time.Time
	PlannedEndDate   *time.Time
}

// UpdateStageOutput represents the output of stage update.
type UpdateStageOutput struct {
	Stage *entity.Stage
}

// UpdateStageUseCase handles stage updates. Moving a stage to an order
// already used by a sibling is rejected.
type UpdateStageUseCase struct {
	stageRepo adapter.StageRepository
}

// NewUpdateStageUseCase creates a new UpdateStageUseCase instance.
func NewUpdateStageUseCase(stageRepo adapter.StageRepository) *UpdateStageUseCase {
	return &UpdateStageUseCase{stageRepo: stageRepo}
}

// Execute performs the stage update.
func (uc *UpdateStageUseCase) Execute(ctx context.Context, input UpdateStageInput) (*UpdateStageOutput, error) {
	stage, err := uc.stageRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeStageNotFound,
			"stage not found",
			domainerror.ErrStageNotFound,
		)
	}

	if input.Order != stage.Order {
		taken, err := uc.stageRepo.ExistsBySiteAndOrder(ctx, stage.SiteID, input.Order, &stage.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check stage order: %w", err)
		}
		if taken {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeStageOrderTaken,
				fmt.Sprintf("stage order %d already used within this site", input.Order),
				domainerror.ErrStageOrderTaken,
			)
		}
	}

	stage.Order = input.Order
	stage.Name = input.Name
	stage.PlannedStartDate = input.PlannedStartDate
	stage.PlannedEndDate = input.PlannedEndDate
	stage.UpdatedAt = time.Now().UTC()

	if err := uc.stageRepo.Update(ctx, stage); err != nil {
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}

	return &UpdateStageOutput{Stage: stage}, nil
}

// DeleteStageUseCase handles stage deletion. The store cascades the delete to
// estimates, line items and attached transactions.
type DeleteStageUseCase struct {
	stageRepo adapter.StageRepository
}

// NewDeleteStageUseCase creates a new DeleteStageUseCase instance.
func NewDeleteStageUseCase(stageRepo adapter.StageRepository) *DeleteStageUseCase {
	return &DeleteStageUseCase{stageRepo: stageRepo}
}

// Execute performs the stage deletion.
func (uc *DeleteStageUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.stageRepo.FindByID(ctx, id); err != nil {
		return domainerror.NewProjectError(
			domainerror.ErrCodeStageNotFound,
			"stage not found",
			domainerror.ErrStageNotFound,
		)
	}
	if err := uc.stageRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete stage: %w", err)
	}
	return nil
}
