package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/domain/entity"
)

// EstimateModel represents the estimates table in the database.
type EstimateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StageID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Stage *StageModel `gorm:"foreignKey:StageID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the EstimateModel.
func (EstimateModel) TableName() string {
	return "estimates"
}

// ToEntity converts an EstimateModel to a domain Estimate entity.
func (m *EstimateModel) ToEntity() *entity.Estimate {
	return &entity.Estimate{
		ID:        m.ID,
		StageID:   m.StageID,
		Status:    entity.EstimateStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// EstimateFromEntity creates an EstimateModel from a domain Estimate entity.
func EstimateFromEntity(estimate *entity.Estimate) *EstimateModel {
	return &EstimateModel{
		ID:        estimate.ID,
		StageID:   estimate.StageID,
		Status:    string(estimate.Status),
		CreatedAt: estimate.CreatedAt,
		UpdatedAt: estimate.UpdatedAt,
	}
}

// EstimateItemModel represents the estimate_items table in the database. The
// four derived amounts are stored for listing and roll-up queries but are
// recomputed from the input fields before every save.
type EstimateItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EstimateID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	PriceItemID *uuid.UUID      `gorm:"type:uuid;index"`
	Description string          `gorm:"type:varchar(500)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	IncomeType   string          `gorm:"type:varchar(10)"`
	IncomeValue  decimal.Decimal `gorm:"type:decimal(15,2)"`
	IsPercentage bool            `gorm:"default:false"`

	BasePrice       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IncomeAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ClientPrice     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ContractorPrice decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Estimate  *EstimateModel  `gorm:"foreignKey:EstimateID;references:ID;constraint:OnDelete:CASCADE"`
	PriceItem *PriceItemModel `gorm:"foreignKey:PriceItemID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the EstimateItemModel.
func (EstimateItemModel) TableName() string {
	return "estimate_items"
}

// ToEntity converts an EstimateItemModel to a domain EstimateItem entity.
func (m *EstimateItemModel) ToEntity() *entity.EstimateItem {
	return &entity.EstimateItem{
		ID:              m.ID,
		EstimateID:      m.EstimateID,
		PriceItemID:     m.PriceItemID,
		Description:     m.Description,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		IncomeType:      entity.IncomeType(m.IncomeType),
		IncomeValue:     m.IncomeValue,
		IsPercentage:    m.IsPercentage,
		BasePrice:       m.BasePrice,
		IncomeAmount:    m.IncomeAmount,
		ClientPrice:     m.ClientPrice,
		ContractorPrice: m.ContractorPrice,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToEntityWithPriceItem converts a model with its preloaded catalog entry.
func (m *EstimateItemModel) ToEntityWithPriceItem() *entity.EstimateItemWithPriceItem {
	result := &entity.EstimateItemWithPriceItem{
		Item: m.ToEntity(),
	}
	if m.PriceItem != nil {
		result.PriceItem = m.PriceItem.ToEntity()
	}
	return result
}

// EstimateItemFromEntity creates an EstimateItemModel from a domain entity.
func EstimateItemFromEntity(item *entity.EstimateItem) *EstimateItemModel {
	return &EstimateItemModel{
		ID:              item.ID,
		EstimateID:      item.EstimateID,
		PriceItemID:     item.PriceItemID,
		Description:     item.Description,
		Quantity:        item.Quantity,
		UnitPrice:       item.UnitPrice,
		IncomeType:      string(item.IncomeType),
		IncomeValue:     item.IncomeValue,
		IsPercentage:    item.IsPercentage,
		BasePrice:       item.BasePrice,
		IncomeAmount:    item.IncomeAmount,
		ClientPrice:     item.ClientPrice,
		ContractorPrice: item.ContractorPrice,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
