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

// estimateRepository implements the adapter.EstimateRepository interface.
type estimateRepository struct {
	db *gorm.DB
}

// NewEstimateRepository creates a new estimate repository instance.
func NewEstimateRepository(db *gorm.DB) adapter.EstimateRepository {
	return &estimateRepository{
		db: db,
	}
}

// Create creates a new estimate in the database.
func (r *estimateRepository) Create(ctx context.Context, estimate *entity.Estimate) error {
	estimateModel := model.EstimateFromEntity(estimate)
	result := r.db.WithContext(ctx).Create(estimateModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an estimate by its ID.
func (r *estimateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	var estimateModel model.EstimateModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&estimateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEstimateNotFound
		}
		return nil, result.Error
	}
	return estimateModel.ToEntity(), nil
}

// FindByStage retrieves all estimates of a stage, newest first.
func (r *estimateRepository) FindByStage(ctx context.Context, stageID uuid.UUID) ([]*entity.Estimate, error) {
	var estimateModels []model.EstimateModel
	result := r.db.WithContext(ctx).
		Where("stage_id = ?", stageID).
		Order("created_at DESC").
		Find(&estimateModels)
	if result.Error != nil {
		return nil, result.Error
	}

	estimates := make([]*entity.Estimate, len(estimateModels))
	for i, em := range estimateModels {
		estimates[i] = em.ToEntity()
	}
	return estimates, nil
}

// ListIDsByStages returns the IDs of all estimates belonging to the stages.
func (r *estimateRepository) ListIDsByStages(ctx context.Context, stageIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(stageIDs) == 0 {
		return nil, nil
	}

	var ids []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.EstimateModel{}).
		Where("stage_id IN ?", stageIDs).
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// Update updates an existing estimate.
func (r *estimateRepository) Update(ctx context.Context, estimate *entity.Estimate) error {
	estimateModel := model.EstimateFromEntity(estimate)
	result := r.db.WithContext(ctx).Save(estimateModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an estimate, cascading to its line items.
func (r *estimateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EstimateModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEstimateNotFound
	}
	return nil
}

// estimateItemRepository implements the adapter.EstimateItemRepository interface.
type estimateItemRepository struct {
	db *gorm.DB
}

// NewEstimateItemRepository creates a new estimate item repository instance.
func NewEstimateItemRepository(db *gorm.DB) adapter.EstimateItemRepository {
	return &estimateItemRepository{
		db: db,
	}
}

// Create creates a new line item in the database.
func (r *estimateItemRepository) Create(ctx context.Context, item *entity.EstimateItem) error {
	itemModel := model.EstimateItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a line item by its ID.
func (r *estimateItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EstimateItem, error) {
	var itemModel model.EstimateItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEstimateItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindByEstimate retrieves all line items of an estimate in insertion order.
func (r *estimateItemRepository) FindByEstimate(ctx context.Context, estimateID uuid.UUID) ([]*entity.EstimateItem, error) {
	var itemModels []model.EstimateItemModel
	result := r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Order("created_at ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.EstimateItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items, nil
}

// FindByEstimateWithPriceItems retrieves line items with their catalog
// entries and type names resolved.
func (r *estimateItemRepository) FindByEstimateWithPriceItems(ctx context.Context, estimateID uuid.UUID) ([]*entity.EstimateItemWithPriceItem, error) {
	var itemModels []model.EstimateItemModel
	result := r.db.WithContext(ctx).
		Preload("PriceItem").
		Preload("PriceItem.MaterialType").
		Preload("PriceItem.WorkType").
		Where("estimate_id = ?", estimateID).
		Order("created_at ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.EstimateItemWithPriceItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntityWithPriceItem()
	}
	return items, nil
}

// ListIDsByEstimates returns the IDs of all line items of the estimates.
func (r *estimateItemRepository) ListIDsByEstimates(ctx context.Context, estimateIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(estimateIDs) == 0 {
		return nil, nil
	}

	var ids []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.EstimateItemModel{}).
		Where("estimate_id IN ?", estimateIDs).
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// Update updates an existing line item.
func (r *estimateItemRepository) Update(ctx context.Context, item *entity.EstimateItem) error {
	itemModel := model.EstimateItemFromEntity(item)
	result := r.db.WithContext(ctx).Save(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a line item. Attached transactions keep existing with their
// item reference cleared by the schema.
func (r *estimateItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EstimateItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEstimateItemNotFound
	}
	return nil
}
