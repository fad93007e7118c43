package estimate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// UpdateEstimateItemInput represents the input for a line item update. All
// input fields are replaced; the derived fields are recomputed regardless of
// which inputs changed.
type UpdateEstimateItemInput struct {
	ID           uuid.UUID
	PriceItemID  *uuid.UUID
	Description  string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	IncomeType   entity.IncomeType
	IncomeValue  decimal.Decimal
	IsPercentage bool
}

// UpdateEstimateItemOutput represents the output of a line item update.
type UpdateEstimateItemOutput struct {
	Item *entity.EstimateItem
}

// UpdateEstimateItemUseCase handles line item updates with unconditional
// recomputation of the derived pricing fields.
type UpdateEstimateItemUseCase struct {
	itemRepo      adapter.EstimateItemRepository
	priceItemRepo adapter.PriceItemRepository
}

// NewUpdateEstimateItemUseCase creates a new UpdateEstimateItemUseCase instance.
func NewUpdateEstimateItemUseCase(itemRepo adapter.EstimateItemRepository, priceItemRepo adapter.PriceItemRepository) *UpdateEstimateItemUseCase {
	return &UpdateEstimateItemUseCase{
		itemRepo:      itemRepo,
		priceItemRepo: priceItemRepo,
	}
}

// Execute performs the line item update.
func (uc *UpdateEstimateItemUseCase) Execute(ctx context.Context, input UpdateEstimateItemInput) (*UpdateEstimateItemOutput, error) {
	if err := validateItemInput(input.Quantity, input.IncomeType); err != nil {
		return nil, err
	}

	item, err := uc.itemRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewEstimateError(
			domainerror.ErrCodeEstimateItemNotFound,
			"estimate item not found",
			domainerror.ErrEstimateItemNotFound,
		)
	}

	unitPrice := input.UnitPrice
	if input.PriceItemID != nil {
		priceItem, err := uc.priceItemRepo.FindByID(ctx, *input.PriceItemID)
		if err != nil {
			return nil, domainerror.NewCatalogError(
				domainerror.ErrCodePriceItemNotFound,
				"price item not found",
				domainerror.ErrPriceItemNotFound,
			)
		}
		if unitPrice.IsZero() {
			unitPrice = priceItem.PricePerUnit
		}
	}

	item.PriceItemID = input.PriceItemID
	item.Description = input.Description
	item.Quantity = input.Quantity
	item.UnitPrice = unitPrice
	item.IncomeType = input.IncomeType
	item.IncomeValue = input.IncomeValue
	item.IsPercentage = input.IsPercentage

	// Derived fields are never trusted as input.
	item.Recalculate()

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update estimate item: %w", err)
	}

	return &UpdateEstimateItemOutput{Item: item}, nil
}
