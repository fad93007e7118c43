package dto

import (
	"time"

	"github.com/buildledger/backend/internal/application/usecase/report"
	"github.com/buildledger/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction
// creation. At most one of stage_id, estimate_id and estimate_item_id may be
// set.
type CreateTransactionRequest struct {
	Amount       string  `json:"amount" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	CategoryID   string  `json:"category_id" binding:"required,uuid"`
	ContractorID *string `json:"contractor_id,omitempty" binding:"omitempty,uuid"`
	Description  string  `json:"description,omitempty"`
	Date         string  `json:"date" binding:"required"`

	StageID        *string `json:"stage_id,omitempty" binding:"omitempty,uuid"`
	EstimateID     *string `json:"estimate_id,omitempty" binding:"omitempty,uuid"`
	EstimateItemID *string `json:"estimate_item_id,omitempty" binding:"omitempty,uuid"`
}

// TransactionResponse represents a transaction in API responses. The signed
// amount carries the direction: negative for expense-side types.
type TransactionResponse struct {
	ID           string  `json:"id"`
	Amount       string  `json:"amount"`
	SignedAmount string  `json:"signed_amount"`
	Type         string  `json:"type"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name,omitempty"`
	ContractorID *string `json:"contractor_id,omitempty"`
	Description  string  `json:"description"`
	Date         string  `json:"date"`

	AttachmentKind string `json:"attachment_kind,omitempty"`
	AttachmentID   string `json:"attachment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// GenerateItemDirectiveRequest selects what to generate for one line item.
type GenerateItemDirectiveRequest struct {
	ItemID string `json:"item_id" binding:"required,uuid"`

	IncludeExpense      bool    `json:"include_expense"`
	ExpenseCategoryID   string  `json:"expense_category_id,omitempty" binding:"omitempty,uuid"`
	ExpenseContractorID *string `json:"expense_contractor_id,omitempty" binding:"omitempty,uuid"`

	IncludeIncome      bool    `json:"include_income"`
	IncomeCategoryID   string  `json:"income_category_id,omitempty" binding:"omitempty,uuid"`
	IncomeContractorID *string `json:"income_contractor_id,omitempty" binding:"omitempty,uuid"`
	IncomeDescription  string  `json:"income_description,omitempty"`
}

// GenerateTransactionsRequest represents the request body for bulk generation
// from an estimate.
type GenerateTransactionsRequest struct {
	Date       string                         `json:"date,omitempty"`
	Directives []GenerateItemDirectiveRequest `json:"directives" binding:"required"`
}

// GenerateTransactionsResponse reports the committed batch size.
type GenerateTransactionsResponse struct {
	CreatedCount int `json:"created_count"`
}

// SummaryResponse represents the aggregated totals over a transaction set.
type SummaryResponse struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
	Count        int    `json:"count"`
}

// NodeTransactionsResponse represents the roll-up report for one hierarchy
// node: its transaction set, most recent first, plus the summary.
type NodeTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      SummaryResponse       `json:"summary"`
}

// ToTransactionResponse converts a domain Transaction to its response DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:           t.ID.String(),
		Amount:       t.Amount.StringFixed(2),
		SignedAmount: t.SignedAmount().StringFixed(2),
		Type:         string(t.Type),
		CategoryID:   t.CategoryID.String(),
		Description:  t.Description,
		Date:         t.Date.Format("2006-01-02"),
		CreatedAt:    t.CreatedAt,
	}
	if t.ContractorID != nil {
		id := t.ContractorID.String()
		resp.ContractorID = &id
	}
	if !t.Attachment.IsDirect() {
		resp.AttachmentKind = string(t.Attachment.Kind)
		resp.AttachmentID = t.Attachment.TargetID.String()
	}
	return resp
}

// ToTransactionWithCategoryResponse converts a transaction with its category.
func ToTransactionWithCategoryResponse(tc *entity.TransactionWithCategory) TransactionResponse {
	resp := ToTransactionResponse(tc.Transaction)
	if tc.Category != nil {
		resp.CategoryName = tc.Category.Name
	}
	return resp
}

// ToTransactionListResponse converts a list of transactions with categories.
func ToTransactionListResponse(transactions []*entity.TransactionWithCategory) TransactionListResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, tc := range transactions {
		out[i] = ToTransactionWithCategoryResponse(tc)
	}
	return TransactionListResponse{Transactions: out}
}

// ToSummaryResponse converts a report summary to its response DTO.
func ToSummaryResponse(s report.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:  s.TotalIncome.StringFixed(2),
		TotalExpense: s.TotalExpense.StringFixed(2),
		Balance:      s.Balance.StringFixed(2),
		Count:        s.Count,
	}
}

// ToNodeTransactionsResponse converts a roll-up result to its response DTO.
func ToNodeTransactionsResponse(output *report.NodeTransactionsOutput) NodeTransactionsResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}
	return NodeTransactionsResponse{
		Transactions: transactions,
		Summary:      ToSummaryResponse(output.Summary),
	}
}
