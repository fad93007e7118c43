package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/domain/entity"
)

// MaterialTypeModel represents the material_types table in the database.
type MaterialTypeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the MaterialTypeModel.
func (MaterialTypeModel) TableName() string {
	return "material_types"
}

// ToEntity converts a MaterialTypeModel to a domain MaterialType entity.
func (m *MaterialTypeModel) ToEntity() *entity.MaterialType {
	return &entity.MaterialType{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

// MaterialTypeFromEntity creates a MaterialTypeModel from a domain entity.
func MaterialTypeFromEntity(t *entity.MaterialType) *MaterialTypeModel {
	return &MaterialTypeModel{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}

// WorkTypeModel represents the work_types table in the database.
type WorkTypeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the WorkTypeModel.
func (WorkTypeModel) TableName() string {
	return "work_types"
}

// ToEntity converts a WorkTypeModel to a domain WorkType entity.
func (m *WorkTypeModel) ToEntity() *entity.WorkType {
	return &entity.WorkType{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

// WorkTypeFromEntity creates a WorkTypeModel from a domain entity.
func WorkTypeFromEntity(t *entity.WorkType) *WorkTypeModel {
	return &WorkTypeModel{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}

// PriceItemModel represents the price_items table. The domain's kind plus
// single type reference is stored as two nullable columns so each side can
// carry a real foreign key; exactly one of them is set.
type PriceItemModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Kind           string          `gorm:"type:varchar(10);not null;index"`
	MaterialTypeID *uuid.UUID      `gorm:"type:uuid;index"`
	WorkTypeID     *uuid.UUID      `gorm:"type:uuid;index"`
	Unit           string          `gorm:"type:varchar(20)"`
	PricePerUnit   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IsActive       bool            `gorm:"default:true"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	MaterialType *MaterialTypeModel `gorm:"foreignKey:MaterialTypeID;references:ID;constraint:OnDelete:RESTRICT"`
	WorkType     *WorkTypeModel     `gorm:"foreignKey:WorkTypeID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the PriceItemModel.
func (PriceItemModel) TableName() string {
	return "price_items"
}

// ToEntity converts a PriceItemModel to a domain PriceItem entity. The type
// name is resolved from whichever relationship is preloaded.
func (m *PriceItemModel) ToEntity() *entity.PriceItem {
	item := &entity.PriceItem{
		ID:           m.ID,
		Name:         m.Name,
		Kind:         entity.PriceItemKind(m.Kind),
		Unit:         m.Unit,
		PricePerUnit: m.PricePerUnit,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	switch item.Kind {
	case entity.PriceItemKindMaterial:
		if m.MaterialTypeID != nil {
			item.TypeID = *m.MaterialTypeID
		}
		if m.MaterialType != nil {
			item.TypeName = m.MaterialType.Name
		}
	case entity.PriceItemKindWork:
		if m.WorkTypeID != nil {
			item.TypeID = *m.WorkTypeID
		}
		if m.WorkType != nil {
			item.TypeName = m.WorkType.Name
		}
	}

	return item
}

// PriceItemFromEntity creates a PriceItemModel from a domain PriceItem entity.
func PriceItemFromEntity(item *entity.PriceItem) *PriceItemModel {
	m := &PriceItemModel{
		ID:           item.ID,
		Name:         item.Name,
		Kind:         string(item.Kind),
		Unit:         item.Unit,
		PricePerUnit: item.PricePerUnit,
		IsActive:     item.IsActive,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}

	typeID := item.TypeID
	switch item.Kind {
	case entity.PriceItemKindMaterial:
		m.MaterialTypeID = &typeID
	case entity.PriceItemKindWork:
		m.WorkTypeID = &typeID
	}

	return m
}
