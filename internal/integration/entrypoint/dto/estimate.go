package dto

import (
	"time"

	"github.com/buildledger/backend/internal/domain/entity"
)

// CreateEstimateRequest represents the request body for estimate creation.
type CreateEstimateRequest struct {
	StageID string `json:"stage_id" binding:"required,uuid"`
}

// UpdateEstimateRequest represents the request body for estimate update.
type UpdateEstimateRequest struct {
	Status string `json:"status" binding:"required,oneof=draft pending approved completed"`
}

// EstimateResponse represents an estimate in API responses.
type EstimateResponse struct {
	ID        string    `json:"id"`
	StageID   string    `json:"stage_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EstimateListResponse represents the response for listing estimates.
type EstimateListResponse struct {
	Estimates []EstimateResponse `json:"estimates"`
}

// EstimateTotalsResponse represents the summed derived amounts of an estimate.
type EstimateTotalsResponse struct {
	BaseTotal       string `json:"base_total"`
	IncomeTotal     string `json:"income_total"`
	ClientTotal     string `json:"client_total"`
	ContractorTotal string `json:"contractor_total"`
}

// ToEstimateResponse converts a domain Estimate entity to an EstimateResponse DTO.
func ToEstimateResponse(estimate *entity.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:        estimate.ID.String(),
		StageID:   estimate.StageID.String(),
		Status:    string(estimate.Status),
		CreatedAt: estimate.CreatedAt,
		UpdatedAt: estimate.UpdatedAt,
	}
}

// ToEstimateListResponse converts a list of estimates to an EstimateListResponse.
func ToEstimateListResponse(estimates []*entity.Estimate) EstimateListResponse {
	out := make([]EstimateResponse, len(estimates))
	for i, e := range estimates {
		out[i] = ToEstimateResponse(e)
	}
	return EstimateListResponse{Estimates: out}
}

// ToEstimateTotalsResponse converts estimate totals to their response DTO.
func ToEstimateTotalsResponse(totals entity.EstimateTotals) EstimateTotalsResponse {
	return EstimateTotalsResponse{
		BaseTotal:       totals.BaseTotal.StringFixed(2),
		IncomeTotal:     totals.IncomeTotal.StringFixed(2),
		ClientTotal:     totals.ClientTotal.StringFixed(2),
		ContractorTotal: totals.ContractorTotal.StringFixed(2),
	}
}

// CreateEstimateItemRequest represents the request body for line item creation.
type CreateEstimateItemRequest struct {
	PriceItemID  *string `json:"price_item_id,omitempty" binding:"omitempty,uuid"`
	Description  string  `json:"description,omitempty"`
	Quantity     string  `json:"quantity" binding:"required"`
	UnitPrice    string  `json:"unit_price,omitempty"`
	IncomeType   string  `json:"income_type,omitempty" binding:"omitempty,oneof=markup kickback"`
	IncomeValue  string  `json:"income_value,omitempty"`
	IsPercentage bool    `json:"is_percentage,omitempty"`
}

// UpdateEstimateItemRequest represents the request body for line item update.
// All input fields are replaced.
type UpdateEstimateItemRequest struct {
	PriceItemID  *string `json:"price_item_id,omitempty" binding:"omitempty,uuid"`
	Description  string  `json:"description,omitempty"`
	Quantity     string  `json:"quantity" binding:"required"`
	UnitPrice    string  `json:"unit_price,omitempty"`
	IncomeType   string  `json:"income_type,omitempty" binding:"omitempty,oneof=markup kickback"`
	IncomeValue  string  `json:"income_value,omitempty"`
	IsPercentage bool    `json:"is_percentage,omitempty"`
}

// EstimateItemResponse represents a line item in API responses. Monetary
// values are serialized as fixed-point strings.
type EstimateItemResponse struct {
	ID          string  `json:"id"`
	EstimateID  string  `json:"estimate_id"`
	PriceItemID *string `json:"price_item_id,omitempty"`
	Name        string  `json:"name,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	UnitPrice   string  `json:"unit_price"`

	IncomeType   string `json:"income_type"`
	IncomeValue  string `json:"income_value"`
	IsPercentage bool   `json:"is_percentage"`

	BasePrice       string `json:"base_price"`
	IncomeAmount    string `json:"income_amount"`
	ClientPrice     string `json:"client_price"`
	ContractorPrice string `json:"contractor_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EstimateItemListResponse represents the response for listing line items.
type EstimateItemListResponse struct {
	Items []EstimateItemResponse `json:"items"`
}

// ToEstimateItemResponse converts a domain EstimateItem to its response DTO.
func ToEstimateItemResponse(item *entity.EstimateItem) EstimateItemResponse {
	resp := EstimateItemResponse{
		ID:              item.ID.String(),
		EstimateID:      item.EstimateID.String(),
		Description:     item.Description,
		Quantity:        item.Quantity.StringFixed(2),
		UnitPrice:       item.UnitPrice.StringFixed(2),
		IncomeType:      string(item.IncomeType),
		IncomeValue:     item.IncomeValue.StringFixed(2),
		IsPercentage:    item.IsPercentage,
		BasePrice:       item.BasePrice.StringFixed(2),
		IncomeAmount:    item.IncomeAmount.StringFixed(2),
		ClientPrice:     item.ClientPrice.StringFixed(2),
		ContractorPrice: item.ContractorPrice.StringFixed(2),
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
	if item.PriceItemID != nil {
		id := item.PriceItemID.String()
		resp.PriceItemID = &id
	}
	return resp
}

// ToEstimateItemListResponse converts a list of line items to its response DTO.
func ToEstimateItemListResponse(items []*entity.EstimateItem) EstimateItemListResponse {
	out := make([]EstimateItemResponse, len(items))
	for i, item := range items {
		out[i] = ToEstimateItemResponse(item)
	}
	return EstimateItemListResponse{Items: out}
}

// ToEstimateItemWithPriceItemResponse converts a line item with its resolved
// catalog entry to its response DTO.
func ToEstimateItemWithPriceItemResponse(item *entity.EstimateItemWithPriceItem) EstimateItemResponse {
	resp := ToEstimateItemResponse(item.Item)
	resp.Name = item.Name()
	resp.Unit = item.Unit()
	return resp
}

// ToEstimateItemWithPriceItemListResponse converts a list of line items with
// resolved catalog entries to its response DTO.
func ToEstimateItemWithPriceItemListResponse(items []*entity.EstimateItemWithPriceItem) EstimateItemListResponse {
	out := make([]EstimateItemResponse, len(items))
	for i, item := range items {
		out[i] = ToEstimateItemWithPriceItemResponse(item)
	}
	return EstimateItemListResponse{Items: out}
}
