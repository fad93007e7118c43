package estimate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// DeleteEstimateItemInput represents the input for line item deletion.
type DeleteEstimateItemInput struct {
	ID uuid.UUID
}

// DeleteEstimateItemUseCase handles line item deletion. Transactions that
// reference the item survive with the reference cleared; the item is the only
// thing removed.
type DeleteEstimateItemUseCase struct {
	itemRepo adapter.EstimateItemRepository
}

// NewDeleteEstimateItemUseCase creates a new DeleteEstimateItemUseCase instance.
func NewDeleteEstimateItemUseCase(itemRepo adapter.EstimateItemRepository) *DeleteEstimateItemUseCase {
	return &DeleteEstimateItemUseCase{itemRepo: itemRepo}
}

// Execute performs the line item deletion.
func (uc *DeleteEstimateItemUseCase) Execute(ctx context.Context, input DeleteEstimateItemInput) error {
	if _, err := uc.itemRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewEstimateError(
			domainerror.ErrCodeEstimateItemNotFound,
			"estimate item not found",
			domainerror.ErrEstimateItemNotFound,
		)
	}

	if err := uc.itemRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete estimate item: %w", err)
	}
	return nil
}
