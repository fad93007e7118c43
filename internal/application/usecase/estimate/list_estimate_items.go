package estimate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
)

// ListEstimateItemsInput represents the input for listing an estimate's items.
type ListEstimateItemsInput struct {
	EstimateID uuid.UUID
}

// ListEstimateItemsOutput represents the output of listing line items.
type ListEstimateItemsOutput struct {
	Items []*entity.EstimateItemWithPriceItem
}

// ListEstimateItemsUseCase handles line item listing with catalog entries
// resolved.
type ListEstimateItemsUseCase struct {
	itemRepo adapter.EstimateItemRepository
}

// NewListEstimateItemsUseCase creates a new ListEstimateItemsUseCase instance.
func NewListEstimateItemsUseCase(itemRepo adapter.EstimateItemRepository) *ListEstimateItemsUseCase {
	return &ListEstimateItemsUseCase{itemRepo: itemRepo}
}

// Execute performs the line item listing.
func (uc *ListEstimateItemsUseCase) Execute(ctx context.Context, input ListEstimateItemsInput) (*ListEstimateItemsOutput, error) {
	items, err := uc.itemRepo.FindByEstimateWithPriceItems(ctx, input.EstimateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list estimate items: %w", err)
	}
	return &ListEstimateItemsOutput{Items: items}, nil
}
