package estimate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// UpdateEstimateInput represents the input for an estimate update. Status has
// no enforced transition graph; any valid value may be set at any time.
type UpdateEstimateInput struct {
	ID     uuid.UUID
	Status entity.EstimateStatus
}

// UpdateEstimateOutput represents the output of an estimate update.
type UpdateEstimateOutput struct {
	Estimate *entity.Estimate
}

// UpdateEstimateUseCase handles estimate status updates.
type UpdateEstimateUseCase struct {
	estimateRepo adapter.EstimateRepository
}

// NewUpdateEstimateUseCase creates a new UpdateEstimateUseCase instance.
func NewUpdateEstimateUseCase(estimateRepo adapter.EstimateRepository) *UpdateEstimateUseCase {
	return &UpdateEstimateUseCase{estimateRepo: estimateRepo}
}

// Execute performs the estimate update.
func (uc *UpdateEstimateUseCase) Execute(ctx context.Context, input UpdateEstimateInput) (*UpdateEstimateOutput, error) {
	if !entity.IsValidEstimateStatus(input.Status) {
		return nil, domainerror.NewEstimateError(
			domainerror.ErrCodeInvalidEstimateStatus,
			fmt.Sprintf("unknown estimate status %q", input.Status),
			domainerror.ErrInvalidEstimateStatus,
		)
	}

	estimate, err := uc.estimateRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewEstimateError(
			domainerror.ErrCodeEstimateNotFound,
			"estimate not found",
			domainerror.ErrEstimateNotFound,
		)
	}

	estimate.Status = input.Status

	if err := uc.estimateRepo.Update(ctx, estimate); err != nil {
		return nil, fmt.Errorf("failed to update estimate: %w", err)
	}

	return &UpdateEstimateOutput{Estimate: estimate}, nil
}
