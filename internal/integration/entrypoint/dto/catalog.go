package dto

import (
	"time"

	"github.com/buildledger/backend/internal/domain/entity"
)

// CreatePriceItemRequest represents the request body for price item creation.
// The kind decides whether type_id references a material type or a work type.
type CreatePriceItemRequest struct {
	Name         string `json:"name,omitempty"`
	Kind         string `json:"kind" binding:"required,oneof=material work"`
	TypeID       string `json:"type_id" binding:"required,uuid"`
	Unit         string `json:"unit,omitempty"`
	PricePerUnit string `json:"price_per_unit" binding:"required"`
}

// PriceItemResponse represents a price item in API responses.
type PriceItemResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Kind         string    `json:"kind"`
	TypeID       string    `json:"type_id"`
	TypeName     string    `json:"type_name"`
	Unit         string    `json:"unit"`
	PricePerUnit string    `json:"price_per_unit"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// PriceItemListResponse represents the response for listing price items.
type PriceItemListResponse struct {
	PriceItems []PriceItemResponse `json:"price_items"`
}

// ToPriceItemResponse converts a domain PriceItem to its response DTO.
func ToPriceItemResponse(item *entity.PriceItem) PriceItemResponse {
	return PriceItemResponse{
		ID:           item.ID.String(),
		Name:         item.Name,
		Kind:         string(item.Kind),
		TypeID:       item.TypeID.String(),
		TypeName:     item.TypeName,
		Unit:         item.Unit,
		PricePerUnit: item.PricePerUnit.StringFixed(2),
		IsActive:     item.IsActive,
		CreatedAt:    item.CreatedAt,
	}
}

// ToPriceItemListResponse converts a list of price items to its response DTO.
func ToPriceItemListResponse(items []*entity.PriceItem) PriceItemListResponse {
	out := make([]PriceItemResponse, len(items))
	for i, item := range items {
		out[i] = ToPriceItemResponse(item)
	}
	return PriceItemListResponse{PriceItems: out}
}

// CreateReferenceRequest represents the request body for creating a material
// type, work type or transaction category.
type CreateReferenceRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
}

// ReferenceResponse represents a flat reference entry in API responses.
type ReferenceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReferenceListResponse represents the response for listing reference entries.
type ReferenceListResponse struct {
	Items []ReferenceResponse `json:"items"`
}

// ToMaterialTypeResponse converts a material type to a ReferenceResponse.
func ToMaterialTypeResponse(t *entity.MaterialType) ReferenceResponse {
	return ReferenceResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}

// ToWorkTypeResponse converts a work type to a ReferenceResponse.
func ToWorkTypeResponse(t *entity.WorkType) ReferenceResponse {
	return ReferenceResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}

// ToCategoryResponse converts a category to a ReferenceResponse.
func ToCategoryResponse(c *entity.Category) ReferenceResponse {
	return ReferenceResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// ToMaterialTypeListResponse converts material types to a ReferenceListResponse.
func ToMaterialTypeListResponse(types []*entity.MaterialType) ReferenceListResponse {
	out := make([]ReferenceResponse, len(types))
	for i, t := range types {
		out[i] = ToMaterialTypeResponse(t)
	}
	return ReferenceListResponse{Items: out}
}

// ToWorkTypeListResponse converts work types to a ReferenceListResponse.
func ToWorkTypeListResponse(types []*entity.WorkType) ReferenceListResponse {
	out := make([]ReferenceResponse, len(types))
	for i, t := range types {
		out[i] = ToWorkTypeResponse(t)
	}
	return ReferenceListResponse{Items: out}
}

// ToCategoryListResponse converts categories to a ReferenceListResponse.
func ToCategoryListResponse(categories []*entity.Category) ReferenceListResponse {
	out := make([]ReferenceResponse, len(categories))
	for i, c := range categories {
		out[i] = ToCategoryResponse(c)
	}
	return ReferenceListResponse{Items: out}
}
