package estimate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
)

// ListEstimatesInput represents the input for listing a stage's estimates.
type ListEstimatesInput struct {
	StageID uuid.UUID
}

// ListEstimatesOutput represents the output of listing estimates.
type ListEstimatesOutput struct {
	Estimates []*entity.Estimate
}

// ListEstimatesUseCase handles estimate listing.
type ListEstimatesUseCase struct {
	estimateRepo adapter.EstimateRepository
}

// NewListEstimatesUseCase creates a new ListEstimatesUseCase instance.
func NewListEstimatesUseCase(estimateRepo adapter.EstimateRepository) *ListEstimatesUseCase {
	return &ListEstimatesUseCase{estimateRepo: estimateRepo}
}

// Execute performs the estimate listing.
func (uc *ListEstimatesUseCase) Execute(ctx context.Context, input ListEstimatesInput) (*ListEstimatesOutput, error) {
	estimates, err := uc.estimateRepo.FindByStage(ctx, input.StageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list estimates: %w", err)
	}
	return &ListEstimatesOutput{Estimates: estimates}, nil
}
