package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EstimateStatus represents the workflow state of an estimate. There is no
// enforced transition graph; any status may be set at any time.
type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusPending   EstimateStatus = "pending"
	EstimateStatusApproved  EstimateStatus = "approved"
	EstimateStatusCompleted EstimateStatus = "completed"
)

// IsValidEstimateStatus validates the estimate status.
func IsValidEstimateStatus(status EstimateStatus) bool {
	switch status {
	case EstimateStatusDraft, EstimateStatusPending, EstimateStatusApproved, EstimateStatusCompleted:
		return true
	}
	return false
}

// Estimate is a costed proposal for one construction stage, composed of line
// items. Transactions may be attached to it directly.
type Estimate struct {
	ID        uuid.UUID
	StageID   uuid.UUID
	Status    EstimateStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEstimate creates a new Estimate entity in draft status.
func NewEstimate(stageID uuid.UUID) *Estimate {
	now := time.Now().UTC()

	return &Estimate{
		ID:        uuid.New(),
		StageID:   stageID,
		Status:    EstimateStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EstimateTotals aggregates the derived amounts over an estimate's line
// items.
type EstimateTotals struct {
	BaseTotal       decimal.Decimal
	IncomeTotal     decimal.Decimal
	ClientTotal     decimal.Decimal
	ContractorTotal decimal.Decimal
}

// TotalsOf sums the derived fields of the given line items.
func TotalsOf(items []*EstimateItem) EstimateTotals {
	var t EstimateTotals
	for _, item := range items {
		t.BaseTotal = t.BaseTotal.Add(item.BasePrice)
		t.IncomeTotal = t.IncomeTotal.Add(item.IncomeAmount)
		t.ClientTotal = t.ClientTotal.Add(item.ClientPrice)
		t.ContractorTotal = t.ContractorTotal.Add(item.ContractorPrice)
	}
	return t
}
