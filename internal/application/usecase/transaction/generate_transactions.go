package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// ItemDirective describes what to generate for one estimate line item. The
// expense transaction carries the contractor price; the income side — the
// markup or kickback margin — is deliberately recorded as a budget *expense*
// too, never as an income transaction.
type ItemDirective struct {
	ItemID uuid.UUID

	IncludeExpense      bool
	ExpenseCategoryID   uuid.UUID
	ExpenseContractorID *uuid.UUID

	IncludeIncome      bool
	IncomeCategoryID   uuid.UUID
	IncomeContractorID *uuid.UUID
	IncomeDescription  string // free-form note for margin-less "additional expense" rows
}

// GenerateTransactionsInput represents the input for bulk generation from an
// estimate's line items.
type GenerateTransactionsInput struct {
	EstimateID uuid.UUID
	Date       time.Time
	Directives []ItemDirective
}

// GenerateTransactionsOutput reports how many transactions were committed.
type GenerateTransactionsOutput struct {
	CreatedCount int
}

// GenerateTransactionsUseCase converts estimate line items into transactions
// in one atomic batch: either every requested transaction is committed or
// none are.
type GenerateTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	estimateRepo    adapter.EstimateRepository
	itemRepo        adapter.EstimateItemRepository
	priceItemRepo   adapter.PriceItemRepository
	categoryRepo    adapter.CategoryRepository
}

// NewGenerateTransactionsUseCase creates a new GenerateTransactionsUseCase instance.
func NewGenerateTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	estimateRepo adapter.EstimateRepository,
	itemRepo adapter.EstimateItemRepository,
	priceItemRepo adapter.PriceItemRepository,
	categoryRepo adapter.CategoryRepository,
) *GenerateTransactionsUseCase {
	return &GenerateTransactionsUseCase{
		transactionRepo: transactionRepo,
		estimateRepo:    estimateRepo,
		itemRepo:        itemRepo,
		priceItemRepo:   priceItemRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute builds the transaction batch from the directives and commits it
// atomically. Returns the number of transactions created; on any failure the
// whole batch is discarded and the count is zero.
func (uc *GenerateTransactionsUseCase) Execute(ctx context.Context, input GenerateTransactionsInput) (*GenerateTransactionsOutput, error) {
	if len(input.Directives) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyDirectives,
			"no generation directives provided",
			domainerror.ErrEmptyGenerationDirectives,
		)
	}

	estimate, err := uc.estimateRepo.FindByID(ctx, input.EstimateID)
	if err != nil {
		return nil, domainerror.NewEstimateError(
			domainerror.ErrCodeEstimateNotFound,
			"estimate not found",
			domainerror.ErrEstimateNotFound,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	var batch []*entity.Transaction

	for _, directive := range input.Directives {
		item, err := uc.itemRepo.FindByID(ctx, directive.ItemID)
		if err != nil || item.EstimateID != estimate.ID {
			return nil, domainerror.NewEstimateError(
				domainerror.ErrCodeEstimateItemNotFound,
				fmt.Sprintf("estimate item %s not found on this estimate", directive.ItemID),
				domainerror.ErrEstimateItemNotFound,
			)
		}

		itemName := uc.itemName(ctx, item)

		if directive.IncludeExpense {
			if err := uc.requireCategory(ctx, directive.ExpenseCategoryID); err != nil {
				return nil, err
			}
			batch = append(batch, entity.NewTransaction(
				item.ContractorPrice,
				entity.TransactionTypeExpense,
				directive.ExpenseCategoryID,
				directive.ExpenseContractorID,
				fmt.Sprintf("Estimate expense: %s", itemName),
				date,
				entity.AttachToItem(item.ID),
			))
		}

		if directive.IncludeIncome {
			if err := uc.requireCategory(ctx, directive.IncomeCategoryID); err != nil {
				return nil, err
			}
			var description string
			if item.IncomeType != entity.IncomeTypeNone {
				description = fmt.Sprintf("Estimate expense (markup/kickback): %s (%s)", itemName, item.IncomeDisplay())
			} else if directive.IncomeDescription != "" {
				description = fmt.Sprintf("Additional estimate expense: %s - %s", itemName, directive.IncomeDescription)
			} else {
				description = fmt.Sprintf("Additional estimate expense: %s", itemName)
			}
			batch = append(batch, entity.NewTransaction(
				item.IncomeAmount,
				entity.TransactionTypeExpense,
				directive.IncomeCategoryID,
				directive.IncomeContractorID,
				description,
				date,
				entity.AttachToItem(item.ID),
			))
		}
	}

	if len(batch) == 0 {
		return &GenerateTransactionsOutput{CreatedCount: 0}, nil
	}

	if err := uc.transactionRepo.CreateBatch(ctx, batch); err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeGenerationFailed,
			"transaction generation failed, nothing was created",
			err,
		)
	}

	return &GenerateTransactionsOutput{CreatedCount: len(batch)}, nil
}

// requireCategory fails the whole batch when a directive references a missing
// category.
func (uc *GenerateTransactionsUseCase) requireCategory(ctx context.Context, categoryID uuid.UUID) error {
	if _, err := uc.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			fmt.Sprintf("category %s not found", categoryID),
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}
	return nil
}

// itemName resolves the display label the generated descriptions use.
func (uc *GenerateTransactionsUseCase) itemName(ctx context.Context, item *entity.EstimateItem) string {
	if item.PriceItemID != nil {
		if priceItem, err := uc.priceItemRepo.FindByID(ctx, *item.PriceItemID); err == nil {
			return priceItem.Name
		}
	}
	if item.Description != "" {
		return item.Description
	}
	return "Line item"
}
