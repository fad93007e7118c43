// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	Type       *entity.TransactionType
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionRepository defines the interface for transaction persistence
// operations, including the per-join-path roll-up queries the reporting layer
// unions together.
type TransactionRepository interface {
	// Create creates a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreateBatch inserts all given transactions in one atomic unit. Either
	// every row is committed or none are.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, ordered by
	// date descending.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// Delete removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAttachedToStages returns transactions attached directly to any of
	// the given stages.
	FindAttachedToStages(ctx context.Context, stageIDs []uuid.UUID) ([]*entity.Transaction, error)

	// FindAttachedToEstimates returns transactions attached directly to any
	// of the given estimates.
	FindAttachedToEstimates(ctx context.Context, estimateIDs []uuid.UUID) ([]*entity.Transaction, error)

	// FindAttachedToItems returns transactions attached to any of the given
	// estimate line items.
	FindAttachedToItems(ctx context.Context, itemIDs []uuid.UUID) ([]*entity.Transaction, error)

	// CountByCategory counts transactions referencing a category. Used to
	// guard category deletion.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
