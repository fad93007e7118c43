package catalog

import (
	"context"
	"fmt"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// CreateReferenceInput is the shared input for flat reference entries:
// material types, work types and transaction categories.
type CreateReferenceInput struct {
	Name        string
	Description string
}

// CreateMaterialTypeUseCase handles material type creation.
type CreateMaterialTypeUseCase struct {
	materialTypeRepo adapter.MaterialTypeRepository
}

// NewCreateMaterialTypeUseCase creates a new CreateMaterialTypeUseCase instance.
func NewCreateMaterialTypeUseCase(materialTypeRepo adapter.MaterialTypeRepository) *CreateMaterialTypeUseCase {
	return &CreateMaterialTypeUseCase{materialTypeRepo: materialTypeRepo}
}

// Execute performs the material type creation. Names are unique.
func (uc *CreateMaterialTypeUseCase) Execute(ctx context.Context, input CreateReferenceInput) (*entity.MaterialType, error) {
	taken, err := uc.materialTypeRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check material type name: %w", err)
	}
	if taken {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeCatalogNameTaken,
			fmt.Sprintf("material type %q already exists", input.Name),
			domainerror.ErrCatalogNameTaken,
		)
	}

	materialType := entity.NewMaterialType(input.Name, input.Description)
	if err := uc.materialTypeRepo.Create(ctx, materialType); err != nil {
		return nil, fmt.Errorf("failed to create material type: %w", err)
	}
	return materialType, nil
}

// CreateWorkTypeUseCase handles work type creation.
type CreateWorkTypeUseCase struct {
	workTypeRepo adapter.WorkTypeRepository
}

// NewCreateWorkTypeUseCase creates a new CreateWorkTypeUseCase instance.
func NewCreateWorkTypeUseCase(workTypeRepo adapter.WorkTypeRepository) *CreateWorkTypeUseCase {
	return &CreateWorkTypeUseCase{workTypeRepo: workTypeRepo}
}

// Execute performs the work type creation. Names are unique.
func (uc *CreateWorkTypeUseCase) Execute(ctx context.Context, input CreateReferenceInput) (*entity.WorkType, error) {
	taken, err := uc.workTypeRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check work type name: %w", err)
	}
	if taken {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeCatalogNameTaken,
			fmt.Sprintf("work type %q already exists", input.Name),
			domainerror.ErrCatalogNameTaken,
		)
	}

	workType := entity.NewWorkType(input.Name, input.Description)
	if err := uc.workTypeRepo.Create(ctx, workType); err != nil {
		return nil, fmt.Errorf("failed to create work type: %w", err)
	}
	return workType, nil
}

// CreateCategoryUseCase handles transaction category creation.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category creation. Names are unique.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateReferenceInput) (*entity.Category, error) {
	taken, err := uc.categoryRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if taken {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeCatalogNameTaken,
			fmt.Sprintf("category %q already exists", input.Name),
			domainerror.ErrCatalogNameTaken,
		)
	}

	category := entity.NewCategory(input.Name, input.Description)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// ListCatalogUseCase bundles the read side of the catalog: price items,
// material types, work types and categories.
type ListCatalogUseCase struct {
	priceItemRepo    adapter.PriceItemRepository
	materialTypeRepo adapter.MaterialTypeRepository
	workTypeRepo     adapter.WorkTypeRepository
	categoryRepo     adapter.CategoryRepository
}

// NewListCatalogUseCase creates a new ListCatalogUseCase instance.
func NewListCatalogUseCase(
	priceItemRepo adapter.PriceItemRepository,
	materialTypeRepo adapter.MaterialTypeRepository,
	workTypeRepo adapter.WorkTypeRepository,
	categoryRepo adapter.CategoryRepository,
) *ListCatalogUseCase {
	return &ListCatalogUseCase{
		priceItemRepo:    priceItemRepo,
		materialTypeRepo: materialTypeRepo,
		workTypeRepo:     workTypeRepo,
		categoryRepo:     categoryRepo,
	}
}

// PriceItems lists all catalog price items, active first.
func (uc *ListCatalogUseCase) PriceItems(ctx context.Context) ([]*entity.PriceItem, error) {
	return uc.priceItemRepo.FindAll(ctx)
}

// MaterialTypes lists all material types by name.
func (uc *ListCatalogUseCase) MaterialTypes(ctx context.Context) ([]*entity.MaterialType, error) {
	return uc.materialTypeRepo.FindAll(ctx)
}

// WorkTypes lists all work types by name.
func (uc *ListCatalogUseCase) WorkTypes(ctx context.Context) ([]*entity.WorkType, error) {
	return uc.workTypeRepo.FindAll(ctx)
}

// Categories lists all transaction categories by name.
func (uc *ListCatalogUseCase) Categories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.FindAll(ctx)
}
