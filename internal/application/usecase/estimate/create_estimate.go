// Package estimate contains estimate and line item use cases.
package estimate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// CreateEstimateInput represents the input for estimate creation.
type CreateEstimateInput struct {
	StageID uuid.UUID
}

// CreateEstimateOutput represents the output of estimate creation.
type CreateEstimateOutput struct {
	Estimate *entity.Estimate
}

// CreateEstimateUseCase handles estimate creation.
type CreateEstimateUseCase struct {
	estimateRepo adapter.EstimateRepository
	stageRepo    adapter.StageRepository
}

// NewCreateEstimateUseCase creates a new CreateEstimateUseCase instance.
func NewCreateEstimateUseCase(estimateRepo adapter.EstimateRepository, stageRepo adapter.StageRepository) *CreateEstimateUseCase {
	return &CreateEstimateUseCase{
		estimateRepo: estimateRepo,
		stageRepo:    stageRepo,
	}
}

// Execute performs the estimate creation.
func (uc *CreateEstimateUseCase) Execute(ctx context.Context, input CreateEstimateInput) (*CreateEstimateOutput, error) {
	if _, err := uc.stageRepo.FindByID(ctx, input.StageID); err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeStageNotFound,
			"stage not found",
			domainerror.ErrStageNotFound,
		)
	}

	estimate := entity.NewEstimate(input.StageID)

	if err := uc.estimateRepo.Create(ctx, estimate); err != nil {
		return nil, fmt.Errorf("failed to create estimate: %w", err)
	}

	return &CreateEstimateOutput{Estimate: estimate}, nil
}
