package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeType describes how margin is taken on an estimate line item.
type IncomeType string

const (
	// IncomeTypeNone means the item carries no margin.
	IncomeTypeNone IncomeType = ""
	// IncomeTypeMarkup adds margin on top of the base price; the client pays
	// more, the contractor receives the base.
	IncomeTypeMarkup IncomeType = "markup"
	// IncomeTypeKickback withholds margin from the contractor; the client
	// pays the base, the contractor receives less.
	IncomeTypeKickback IncomeType = "kickback"
)

// IsValidIncomeType validates the income type.
func IsValidIncomeType(incomeType IncomeType) bool {
	switch incomeType {
	case IncomeTypeNone, IncomeTypeMarkup, IncomeTypeKickback:
		return true
	}
	return false
}

// Pricing holds the four derived amounts of a line item. They are a pure
// function of the line item's input fields and are recomputed on every save;
// stored values are never trusted as input.
type Pricing struct {
	BasePrice       decimal.Decimal
	IncomeAmount    decimal.Decimal
	ClientPrice     decimal.Decimal
	ContractorPrice decimal.Decimal
}

// ComputePricing derives the base, income, client and contractor amounts for
// one line item. It never fails: absent or zero inputs degrade to zero. A
// kickback larger than the base drives the contractor price negative; that is
// carried as-is, not clamped.
func ComputePricing(quantity, unitPrice decimal.Decimal, incomeType IncomeType, incomeValue decimal.Decimal, isPercentage bool) Pricing {
	var p Pricing

	if !quantity.IsZero() && !unitPrice.IsZero() {
		p.BasePrice = quantity.Mul(unitPrice)
	}

	if incomeType != IncomeTypeNone && !incomeValue.IsZero() {
		if isPercentage {
			p.IncomeAmount = p.BasePrice.Mul(incomeValue).Div(decimal.NewFromInt(100))
		} else {
			p.IncomeAmount = incomeValue
		}
	}

	switch incomeType {
	case IncomeTypeMarkup:
		p.ClientPrice = p.BasePrice.Add(p.IncomeAmount)
		p.ContractorPrice = p.BasePrice
	case IncomeTypeKickback:
		p.ClientPrice = p.BasePrice
		p.ContractorPrice = p.BasePrice.Sub(p.IncomeAmount)
	default:
		p.ClientPrice = p.BasePrice
		p.ContractorPrice = p.BasePrice
	}

	return p
}

// EstimateItem is one priced entry in an estimate, optionally backed by a
// catalog price item.
type EstimateItem struct {
	ID          uuid.UUID
	EstimateID  uuid.UUID
	PriceItemID *uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal

	IncomeType   IncomeType
	IncomeValue  decimal.Decimal
	IsPercentage bool

	// Derived amounts, overwritten by Recalculate before every persist.
	BasePrice       decimal.Decimal
	IncomeAmount    decimal.Decimal
	ClientPrice     decimal.Decimal
	ContractorPrice decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEstimateItem creates a new EstimateItem entity with derived amounts
// already computed.
func NewEstimateItem(estimateID uuid.UUID, priceItemID *uuid.UUID, description string, quantity, unitPrice decimal.Decimal, incomeType IncomeType, incomeValue decimal.Decimal, isPercentage bool) *EstimateItem {
	now := time.Now().UTC()

	item := &EstimateItem{
		ID:           uuid.New(),
		EstimateID:   estimateID,
		PriceItemID:  priceItemID,
		Description:  description,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		IncomeType:   incomeType,
		IncomeValue:  incomeValue,
		IsPercentage: isPercentage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	item.Recalculate()
	return item
}

// Recalculate overwrites the four derived fields from the current input
// fields. Called unconditionally before every persist.
func (i *EstimateItem) Recalculate() {
	p := ComputePricing(i.Quantity, i.UnitPrice, i.IncomeType, i.IncomeValue, i.IsPercentage)
	i.BasePrice = p.BasePrice
	i.IncomeAmount = p.IncomeAmount
	i.ClientPrice = p.ClientPrice
	i.ContractorPrice = p.ContractorPrice
}

// EstimateItemWithPriceItem pairs a line item with its catalog entry, when
// one is referenced.
type EstimateItemWithPriceItem struct {
	Item      *EstimateItem
	PriceItem *PriceItem
}

// Name returns the display label for the line item: the catalog entry name
// when present, the free-form description otherwise.
func (e *EstimateItemWithPriceItem) Name() string {
	if e.PriceItem != nil {
		return e.PriceItem.Name
	}
	if e.Item.Description != "" {
		return e.Item.Description
	}
	return "Line item"
}

// Unit returns the unit of measure from the catalog entry, if any.
func (e *EstimateItemWithPriceItem) Unit() string {
	if e.PriceItem != nil {
		return e.PriceItem.Unit
	}
	return ""
}

// IncomeDisplay renders the margin setting for listings, e.g. "20%" or
// "150.00".
func (i *EstimateItem) IncomeDisplay() string {
	if i.IncomeType == IncomeTypeNone || i.IncomeValue.IsZero() {
		return "-"
	}
	if i.IsPercentage {
		return fmt.Sprintf("%s%%", i.IncomeValue.String())
	}
	return i.IncomeValue.StringFixed(2)
}
