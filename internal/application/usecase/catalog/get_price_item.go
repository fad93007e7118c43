package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// GetPriceItemInput represents the input for the catalog lookup used to
// prefill estimate line item forms.
type GetPriceItemInput struct {
	ID uuid.UUID
}

// GetPriceItemOutput represents the lookup result.
type GetPriceItemOutput struct {
	PriceItem *entity.PriceItem
}

// GetPriceItemUseCase handles the price item lookup.
type GetPriceItemUseCase struct {
	priceItemRepo adapter.PriceItemRepository
}

// NewGetPriceItemUseCase creates a new GetPriceItemUseCase instance.
func NewGetPriceItemUseCase(priceItemRepo adapter.PriceItemRepository) *GetPriceItemUseCase {
	return &GetPriceItemUseCase{priceItemRepo: priceItemRepo}
}

// Execute performs the lookup.
func (uc *GetPriceItemUseCase) Execute(ctx context.Context, input GetPriceItemInput) (*GetPriceItemOutput, error) {
	priceItem, err := uc.priceItemRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodePriceItemNotFound,
			"price item not found",
			domainerror.ErrPriceItemNotFound,
		)
	}
	return &GetPriceItemOutput{PriceItem: priceItem}, nil
}
