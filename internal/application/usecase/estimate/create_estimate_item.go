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

// CreateEstimateItemInput represents the input for line item creation.
type CreateEstimateItemInput struct {
	EstimateID   uuid.UUID
	PriceItemID  *uuid.UUID
	Description  string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	IncomeType   entity.IncomeType
	IncomeValue  decimal.Decimal
	IsPercentage bool
}

// CreateEstimateItemOutput represents the output of line item creation.
type CreateEstimateItemOutput struct {
	Item *entity.EstimateItem
}

// CreateEstimateItemUseCase handles line item creation. The derived pricing
// fields are always computed here before persisting, and the catalog price is
// substituted when a price item is referenced and no unit price was entered.
type CreateEstimateItemUseCase struct {
	itemRepo      adapter.EstimateItemRepository
	estimateRepo  adapter.EstimateRepository
	priceItemRepo adapter.PriceItemRepository
}

// NewCreateEstimateItemUseCase creates a new CreateEstimateItemUseCase instance.
func NewCreateEstimateItemUseCase(
	itemRepo adapter.EstimateItemRepository,
	estimateRepo adapter.EstimateRepository,
	priceItemRepo adapter.PriceItemRepository,
) *CreateEstimateItemUseCase {
	return &CreateEstimateItemUseCase{
		itemRepo:      itemRepo,
		estimateRepo:  estimateRepo,
		priceItemRepo: priceItemRepo,
	}
}

// Execute performs the line item creation.
func (uc *CreateEstimateItemUseCase) Execute(ctx context.Context, input CreateEstimateItemInput) (*CreateEstimateItemOutput, error) {
	if err := validateItemInput(input.Quantity, input.IncomeType); err != nil {
		return nil, err
	}

	if _, err := uc.estimateRepo.FindByID(ctx, input.EstimateID); err != nil {
		return nil, domainerror.NewEstimateError(
			domainerror.ErrCodeEstimateNotFound,
			"estimate not found",
			domainerror.ErrEstimateNotFound,
		)
	}

	unitPrice, err := uc.resolveUnitPrice(ctx, input.PriceItemID, input.UnitPrice)
	if err != nil {
		return nil, err
	}

	item := entity.NewEstimateItem(
		input.EstimateID,
		input.PriceItemID,
		input.Description,
		input.Quantity,
		unitPrice,
		input.IncomeType,
		input.IncomeValue,
		input.IsPercentage,
	)

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create estimate item: %w", err)
	}

	return &CreateEstimateItemOutput{Item: item}, nil
}

// resolveUnitPrice substitutes the catalog price when a price item is
// referenced and the entered unit price is zero.
func (uc *CreateEstimateItemUseCase) resolveUnitPrice(ctx context.Context, priceItemID *uuid.UUID, unitPrice decimal.Decimal) (decimal.Decimal, error) {
	if priceItemID == nil {
		return unitPrice, nil
	}

	priceItem, err := uc.priceItemRepo.FindByID(ctx, *priceItemID)
	if err != nil {
		return decimal.Zero, domainerror.NewCatalogError(
			domainerror.ErrCodePriceItemNotFound,
			"price item not found",
			domainerror.ErrPriceItemNotFound,
		)
	}

	if unitPrice.IsZero() {
		return priceItem.PricePerUnit, nil
	}
	return unitPrice, nil
}

// validateItemInput rejects negative quantities and unknown income types.
func validateItemInput(quantity decimal.Decimal, incomeType entity.IncomeType) error {
	if quantity.IsNegative() {
		return domainerror.NewEstimateError(
			domainerror.ErrCodeNegativeQuantity,
			"quantity must not be negative",
			domainerror.ErrNegativeQuantity,
		)
	}
	if !entity.IsValidIncomeType(incomeType) {
		return domainerror.NewEstimateError(
			domainerror.ErrCodeInvalidIncomeType,
			fmt.Sprintf("unknown income type %q", incomeType),
			domainerror.ErrInvalidIncomeType,
		)
	}
	return nil
}
