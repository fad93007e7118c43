package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
	"github.com/buildledger/backend/internal/integration/persistence/model"
)

// priceItemRepository implements the adapter.PriceItemRepository interface.
type priceItemRepository struct {
	db *gorm.DB
}

// NewPriceItemRepository creates a new price item repository instance.
func NewPriceItemRepository(db *gorm.DB) adapter.PriceItemRepository {
	return &priceItemRepository{
		db: db,
	}
}

// Create creates a new price item in the database.
func (r *priceItemRepository) Create(ctx context.Context, item *entity.PriceItem) error {
	itemModel := model.PriceItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a price item with its type name resolved.
func (r *priceItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PriceItem, error) {
	var itemModel model.PriceItemModel
	result := r.db.WithContext(ctx).
		Preload("MaterialType").
		Preload("WorkType").
		Where("id = ?", id).
		First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPriceItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindAll retrieves all price items, active first, then by name.
func (r *priceItemRepository) FindAll(ctx context.Context) ([]*entity.PriceItem, error) {
	var itemModels []model.PriceItemModel
	result := r.db.WithContext(ctx).
		Preload("MaterialType").
		Preload("WorkType").
		Order("is_active DESC, name ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.PriceItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items, nil
}

// Update updates an existing price item.
func (r *priceItemRepository) Update(ctx context.Context, item *entity.PriceItem) error {
	itemModel := model.PriceItemFromEntity(item)
	result := r.db.WithContext(ctx).Save(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// materialTypeRepository implements the adapter.MaterialTypeRepository interface.
type materialTypeRepository struct {
	db *gorm.DB
}

// NewMaterialTypeRepository creates a new material type repository instance.
func NewMaterialTypeRepository(db *gorm.DB) adapter.MaterialTypeRepository {
	return &materialTypeRepository{
		db: db,
	}
}

// Create creates a new material type in the database.
func (r *materialTypeRepository) Create(ctx context.Context, materialType *entity.MaterialType) error {
	typeModel := model.MaterialTypeFromEntity(materialType)
	result := r.db.WithContext(ctx).Create(typeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a material type by its ID.
func (r *materialTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MaterialType, error) {
	var typeModel model.MaterialTypeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&typeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMaterialTypeNotFound
		}
		return nil, result.Error
	}
	return typeModel.ToEntity(), nil
}

// FindAll retrieves all material types ordered by name.
func (r *materialTypeRepository) FindAll(ctx context.Context) ([]*entity.MaterialType, error) {
	var typeModels []model.MaterialTypeModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&typeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	types := make([]*entity.MaterialType, len(typeModels))
	for i, tm := range typeModels {
		types[i] = tm.ToEntity()
	}
	return types, nil
}

// ExistsByName reports whether a material type with the name exists.
func (r *materialTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.MaterialTypeModel{}).
		Where("name = ?", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// workTypeRepository implements the adapter.WorkTypeRepository interface.
type workTypeRepository struct {
	db *gorm.DB
}

// NewWorkTypeRepository creates a new work type repository instance.
func NewWorkTypeRepository(db *gorm.DB) adapter.WorkTypeRepository {
	return &workTypeRepository{
		db: db,
	}
}

// Create creates a new work type in the database.
func (r *workTypeRepository) Create(ctx context.Context, workType *entity.WorkType) error {
	typeModel := model.WorkTypeFromEntity(workType)
	result := r.db.WithContext(ctx).Create(typeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a work type by its ID.
func (r *workTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkType, error) {
	var typeModel model.WorkTypeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&typeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWorkTypeNotFound
		}
		return nil, result.Error
	}
	return typeModel.ToEntity(), nil
}

// FindAll retrieves all work types ordered by name.
func (r *workTypeRepository) FindAll(ctx context.Context) ([]*entity.WorkType, error) {
	var typeModels []model.WorkTypeModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&typeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	types := make([]*entity.WorkType, len(typeModels))
	for i, tm := range typeModels {
		types[i] = tm.ToEntity()
	}
	return types, nil
}

// ExistsByName reports whether a work type with the name exists.
func (r *workTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.WorkTypeModel{}).
		Where("name = ?", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindAll retrieves all categories ordered by name.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// ExistsByName reports whether a category with the name exists.
func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("name = ?", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
