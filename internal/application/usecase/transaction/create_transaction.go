// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Amount       decimal.Decimal
	Type         entity.TransactionType
	CategoryID   uuid.UUID
	ContractorID *uuid.UUID
	Description  string
	Date         time.Time
	Attachment   entity.Attachment
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles manual transaction creation.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	stageRepo       adapter.StageRepository
	estimateRepo    adapter.EstimateRepository
	itemRepo        adapter.EstimateItemRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	stageRepo adapter.StageRepository,
	estimateRepo adapter.EstimateRepository,
	itemRepo adapter.EstimateItemRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		stageRepo:       stageRepo,
		estimateRepo:    estimateRepo,
		itemRepo:        itemRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"unknown transaction type",
			domainerror.ErrInvalidTransactionType,
		)
	}

	// Amounts are stored as positive magnitudes; the type carries the sign.
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a positive magnitude",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	if err := uc.validateAttachment(ctx, input.Attachment); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.Amount,
		input.Type,
		input.CategoryID,
		input.ContractorID,
		input.Description,
		input.Date,
		input.Attachment,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: transaction}, nil
}

// validateAttachment checks the attached hierarchy node exists.
func (uc *CreateTransactionUseCase) validateAttachment(ctx context.Context, attachment entity.Attachment) error {
	var err error
	switch attachment.Kind {
	case entity.AttachmentDirect:
		return nil
	case entity.AttachmentStage:
		_, err = uc.stageRepo.FindByID(ctx, attachment.TargetID)
	case entity.AttachmentEstimate:
		_, err = uc.estimateRepo.FindByID(ctx, attachment.TargetID)
	case entity.AttachmentItem:
		_, err = uc.itemRepo.FindByID(ctx, attachment.TargetID)
	default:
		err = fmt.Errorf("unknown attachment kind %q", attachment.Kind)
	}

	if err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeAttachmentTargetNotFound,
			"attachment target not found",
			domainerror.ErrAttachmentTargetNotFound,
		)
	}
	return nil
}
