// Package catalog contains catalog-related use cases: price items, material
// and work types, and transaction categories.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// CreatePriceItemInput represents the input for price item creation. Kind
// plus a single TypeID carries the exactly-one-of material/work-type
// invariant by construction.
type CreatePriceItemInput struct {
	Name         string
	Kind         entity.PriceItemKind
	TypeID       uuid.UUID
	Unit         string
	PricePerUnit decimal.Decimal
}

// CreatePriceItemOutput represents the output of price item creation.
type CreatePriceItemOutput struct {
	PriceItem *entity.PriceItem
}

// CreatePriceItemUseCase handles price item creation.
type CreatePriceItemUseCase struct {
	priceItemRepo    adapter.PriceItemRepository
	materialTypeRepo adapter.MaterialTypeRepository
	workTypeRepo     adapter.WorkTypeRepository
}

// NewCreatePriceItemUseCase creates a new CreatePriceItemUseCase instance.
func NewCreatePriceItemUseCase(
	priceItemRepo adapter.PriceItemRepository,
	materialTypeRepo adapter.MaterialTypeRepository,
	workTypeRepo adapter.WorkTypeRepository,
) *CreatePriceItemUseCase {
	return &CreatePriceItemUseCase{
		priceItemRepo:    priceItemRepo,
		materialTypeRepo: materialTypeRepo,
		workTypeRepo:     workTypeRepo,
	}
}

// Execute performs the price item creation.
func (uc *CreatePriceItemUseCase) Execute(ctx context.Context, input CreatePriceItemInput) (*CreatePriceItemOutput, error) {
	if !entity.IsValidPriceItemKind(input.Kind) {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeInvalidPriceItemKind,
			"price item must reference either a material type or a work type",
			domainerror.ErrInvalidPriceItemKind,
		)
	}

	typeName, err := uc.resolveTypeName(ctx, input.Kind, input.TypeID)
	if err != nil {
		return nil, err
	}

	priceItem := entity.NewPriceItem(input.Name, input.Kind, input.TypeID, typeName, input.Unit, input.PricePerUnit)

	if err := uc.priceItemRepo.Create(ctx, priceItem); err != nil {
		return nil, fmt.Errorf("failed to create price item: %w", err)
	}

	return &CreatePriceItemOutput{PriceItem: priceItem}, nil
}

// resolveTypeName loads the referenced material or work type and returns its
// name.
func (uc *CreatePriceItemUseCase) resolveTypeName(ctx context.Context, kind entity.PriceItemKind, typeID uuid.UUID) (string, error) {
	switch kind {
	case entity.PriceItemKindMaterial:
		materialType, err := uc.materialTypeRepo.FindByID(ctx, typeID)
		if err != nil {
			return "", domainerror.NewCatalogError(
				domainerror.ErrCodePriceItemTypeNotFound,
				"material type not found",
				domainerror.ErrPriceItemTypeNotFound,
			)
		}
		return materialType.Name, nil
	default:
		workType, err := uc.workTypeRepo.FindByID(ctx, typeID)
		if err != nil {
			return "", domainerror.NewCatalogError(
				domainerror.ErrCodePriceItemTypeNotFound,
				"work type not found",
				domainerror.ErrPriceItemTypeNotFound,
			)
		}
		return workType.Name, nil
	}
}
