package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/domain/entity"
)

// EstimateRepository defines persistence operations for estimates.
type EstimateRepository interface {
	// Create creates a new estimate.
	Create(ctx context.Context, estimate *entity.Estimate) error

	// FindByID retrieves an estimate by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Estimate, error)

	// FindByStage retrieves all estimates of a stage, newest first.
	FindByStage(ctx context.Context, stageID uuid.UUID) ([]*entity.Estimate, error)

	// ListIDsByStages returns the IDs of all estimates belonging to the given stages.
	ListIDsByStages(ctx context.Context, stageIDs []uuid.UUID) ([]uuid.UUID, error)

	// Update updates an existing estimate.
	Update(ctx context.Context, estimate *entity.Estimate) error

	// Delete removes an estimate, cascading to its line items.
	Delete(ctx context.Context, id uuid.UUID) error
}

// EstimateItemRepository defines persistence operations for estimate line items.
type EstimateItemRepository interface {
	// Create creates a new line item.
	Create(ctx context.Context, item *entity.EstimateItem) error

	// FindByID retrieves a line item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EstimateItem, error)

	// FindByEstimate retrieves all line items of an estimate in insertion order.
	FindByEstimate(ctx context.Context, estimateID uuid.UUID) ([]*entity.EstimateItem, error)

	// FindByEstimateWithPriceItems retrieves line items together with their
	// catalog entries, for display and export.
	FindByEstimateWithPriceItems(ctx context.Context, estimateID uuid.UUID) ([]*entity.EstimateItemWithPriceItem, error)

	// ListIDsByEstimates returns the IDs of all line items belonging to the
	// given estimates.
	ListIDsByEstimates(ctx context.Context, estimateIDs []uuid.UUID) ([]uuid.UUID, error)

	// Update updates an existing line item.
	Update(ctx context.Context, item *entity.EstimateItem) error

	// Delete removes a line item. Transactions referencing it keep existing
	// with the reference cleared.
	Delete(ctx context.Context, id uuid.UUID) error
}
