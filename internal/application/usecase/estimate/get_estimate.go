package estimate

import (
	"context"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// GetEstimateInput represents the input for fetching one estimate.
type GetEstimateInput struct {
	ID uuid.UUID
}

// GetEstimateOutput represents the output of fetching one estimate.
type GetEstimateOutput struct {
	Estimate *entity.Estimate
}

// GetEstimateUseCase handles single estimate retrieval.
type GetEstimateUseCase struct {
	estimateRepo adapter.EstimateRepository
}

// NewGetEstimateUseCase creates a new GetEstimateUseCase instance.
func NewGetEstimateUseCase(estimateRepo adapter.EstimateRepository) *GetEstimateUseCase {
	return &GetEstimateUseCase{estimateRepo: estimateRepo}
}

// Execute performs the estimate retrieval.
func (uc *GetEstimateUseCase) Execute(ctx context.Context, input GetEstimateInput) (*GetEstimateOutput, error) {
	estimate, err := uc.estimateRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewEstimateError(
			domainerror.ErrCodeEstimateNotFound,
			"estimate not found",
			domainerror.ErrEstimateNotFound,
		)
	}
	return &GetEstimateOutput{Estimate: estimate}, nil
}
