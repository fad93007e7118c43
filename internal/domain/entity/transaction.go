package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of money movement. Amounts are stored
// as positive magnitudes; the type decides the sign.
type TransactionType string

const (
	TransactionTypeIncome       TransactionType = "income"
	TransactionTypeExpense      TransactionType = "expense"
	TransactionTypeTransfer     TransactionType = "transfer"
	TransactionTypeDebtGive     TransactionType = "debt_give"
	TransactionTypeDebtReceive  TransactionType = "debt_receive"
	TransactionTypeDebtRepay    TransactionType = "debt_repay"
	TransactionTypeDebtReceived TransactionType = "debt_received"
)

// IsValidTransactionType validates the transaction type.
func IsValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer,
		TransactionTypeDebtGive, TransactionTypeDebtReceive,
		TransactionTypeDebtRepay, TransactionTypeDebtReceived:
		return true
	}
	return false
}

// AttachmentKind identifies which hierarchy node a transaction is associated
// with for reporting roll-up.
type AttachmentKind string

const (
	// AttachmentDirect marks a transaction not tied to any hierarchy node.
	AttachmentDirect   AttachmentKind = ""
	AttachmentStage    AttachmentKind = "stage"
	AttachmentEstimate AttachmentKind = "estimate"
	AttachmentItem     AttachmentKind = "item"
)

// Attachment associates a transaction with at most one hierarchy node. The
// zero value means a direct transaction. Modeling this as a tagged pair
// instead of three nullable references makes simultaneous multi-attachment
// unrepresentable.
type Attachment struct {
	Kind     AttachmentKind
	TargetID uuid.UUID
}

// AttachToStage builds a stage attachment.
func AttachToStage(id uuid.UUID) Attachment {
	return Attachment{Kind: AttachmentStage, TargetID: id}
}

// AttachToEstimate builds an estimate attachment.
func AttachToEstimate(id uuid.UUID) Attachment {
	return Attachment{Kind: AttachmentEstimate, TargetID: id}
}

// AttachToItem builds an estimate line item attachment.
func AttachToItem(id uuid.UUID) Attachment {
	return Attachment{Kind: AttachmentItem, TargetID: id}
}

// IsDirect reports whether the transaction is not attached to any node.
func (a Attachment) IsDirect() bool {
	return a.Kind == AttachmentDirect
}

// Transaction records one movement of money, optionally attached to a stage,
// an estimate or an estimate line item.
type Transaction struct {
	ID           uuid.UUID
	Amount       decimal.Decimal // positive magnitude
	Type         TransactionType
	CategoryID   uuid.UUID
	ContractorID *uuid.UUID
	Description  string
	Date         time.Time
	Attachment   Attachment
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(amount decimal.Decimal, transactionType TransactionType, categoryID uuid.UUID, contractorID *uuid.UUID, description string, date time.Time, attachment Attachment) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:           uuid.New(),
		Amount:       amount,
		Type:         transactionType,
		CategoryID:   categoryID,
		ContractorID: contractorID,
		Description:  description,
		Date:         date,
		Attachment:   attachment,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// expenseSide lists the transaction types that count against the balance.
var expenseSide = map[TransactionType]bool{
	TransactionTypeExpense:   true,
	TransactionTypeTransfer:  true,
	TransactionTypeDebtGive:  true,
	TransactionTypeDebtRepay: true,
}

// SignedAmount returns the amount with its sign: negative for expense-side
// types (expense, transfer, debt_give, debt_repay), positive otherwise.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if expenseSide[t.Type] {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionWithCategory pairs a transaction with its category for listings.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
