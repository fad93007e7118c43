package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialType is a catalog entry describing a kind of material.
type MaterialType struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}

// NewMaterialType creates a new MaterialType entity.
func NewMaterialType(name, description string) *MaterialType {
	return &MaterialType{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
}

// WorkType is a catalog entry describing a kind of work.
type WorkType struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}

// NewWorkType creates a new WorkType entity.
func NewWorkType(name, description string) *WorkType {
	return &WorkType{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
}

// PriceItemKind discriminates what a price item references: a material type
// or a work type. A price item references exactly one of the two; the kind
// plus a single TypeID makes the both-set and none-set states
// unrepresentable.
type PriceItemKind string

const (
	PriceItemKindMaterial PriceItemKind = "material"
	PriceItemKindWork     PriceItemKind = "work"
)

// PriceItem is a reusable priced catalog entry used to prefill estimate line
// items.
type PriceItem struct {
	ID           uuid.UUID
	Name         string
	Kind         PriceItemKind
	TypeID       uuid.UUID // MaterialType or WorkType ID depending on Kind
	TypeName     string    // resolved name of the referenced type
	Unit         string
	PricePerUnit decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewPriceItem creates a new PriceItem entity. When name is blank it is
// generated from the referenced type name, unit and price, matching how
// entries are labelled in pick lists.
func NewPriceItem(name string, kind PriceItemKind, typeID uuid.UUID, typeName, unit string, pricePerUnit decimal.Decimal) *PriceItem {
	now := time.Now().UTC()

	if name == "" && typeName != "" {
		name = fmt.Sprintf("%s %s %s", typeName, unit, pricePerUnit.StringFixed(2))
	}

	return &PriceItem{
		ID:           uuid.New(),
		Name:         name,
		Kind:         kind,
		TypeID:       typeID,
		TypeName:     typeName,
		Unit:         unit,
		PricePerUnit: pricePerUnit,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsValidPriceItemKind validates the price item kind.
func IsValidPriceItemKind(kind PriceItemKind) bool {
	return kind == PriceItemKindMaterial || kind == PriceItemKindWork
}
