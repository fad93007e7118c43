package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/domain/entity"
)

// PriceItemRepository defines persistence operations for catalog price items.
type PriceItemRepository interface {
	// Create creates a new price item.
	Create(ctx context.Context, item *entity.PriceItem) error

	// FindByID retrieves a price item by its ID with the referenced type name
	// resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PriceItem, error)

	// FindAll retrieves all price items, active first, then by name.
	FindAll(ctx context.Context) ([]*entity.PriceItem, error)

	// Update updates an existing price item.
	Update(ctx context.Context, item *entity.PriceItem) error
}

// MaterialTypeRepository defines persistence operations for material types.
type MaterialTypeRepository interface {
	// Create creates a new material type.
	Create(ctx context.Context, materialType *entity.MaterialType) error

	// FindByID retrieves a material type by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MaterialType, error)

	// FindAll retrieves all material types ordered by name.
	FindAll(ctx context.Context) ([]*entity.MaterialType, error)

	// ExistsByName reports whether a material type with the name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// WorkTypeRepository defines persistence operations for work types.
type WorkTypeRepository interface {
	// Create creates a new work type.
	Create(ctx context.Context, workType *entity.WorkType) error

	// FindByID retrieves a work type by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkType, error)

	// FindAll retrieves all work types ordered by name.
	FindAll(ctx context.Context) ([]*entity.WorkType, error)

	// ExistsByName reports whether a work type with the name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// CategoryRepository defines persistence operations for transaction categories.
type CategoryRepository interface {
	// Create creates a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves all categories ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// ExistsByName reports whether a category with the name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
