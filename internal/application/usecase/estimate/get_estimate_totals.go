package estimate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// GetEstimateTotalsInput represents the input for the totals query.
type GetEstimateTotalsInput struct {
	EstimateID uuid.UUID
}

// GetEstimateTotalsOutput carries the summed derived amounts of an estimate.
type GetEstimateTotalsOutput struct {
	Totals entity.EstimateTotals
}

// GetEstimateTotalsUseCase sums the derived line item amounts of an estimate.
type GetEstimateTotalsUseCase struct {
	estimateRepo adapter.EstimateRepository
	itemRepo     adapter.EstimateItemRepository
}

// NewGetEstimateTotalsUseCase creates a new GetEstimateTotalsUseCase instance.
func NewGetEstimateTotalsUseCase(estimateRepo adapter.EstimateRepository, itemRepo adapter.EstimateItemRepository) *GetEstimateTotalsUseCase {
	return &GetEstimateTotalsUseCase{
		estimateRepo: estimateRepo,
		itemRepo:     itemRepo,
	}
}

// Execute performs the totals query.
func (uc *GetEstimateTotalsUseCase) Execute(ctx context.Context, input GetEstimateTotalsInput) (*GetEstimateTotalsOutput, error) {
	if _, err := uc.estimateRepo.FindByID(ctx, input.EstimateID); err != nil {
		return nil, domainerror.NewEstimateError(
			domainerror.ErrCodeEstimateNotFound,
			"estimate not found",
			domainerror.ErrEstimateNotFound,
		)
	}

	items, err := uc.itemRepo.FindByEstimate(ctx, input.EstimateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load estimate items: %w", err)
	}

	return &GetEstimateTotalsOutput{Totals: entity.TotalsOf(items)}, nil
}
