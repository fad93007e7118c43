package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database. The
// domain's single attachment is stored as three nullable references; at most
// one of them is set, and each carries its own foreign key. Stage and
// estimate references cascade with their target; the line item reference is
// cleared when the item is deleted so the money record survives.
type TransactionModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type           string          `gorm:"type:varchar(15);not null;index"`
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ContractorID   *uuid.UUID      `gorm:"type:uuid;index"`
	Description    string          `gorm:"type:varchar(500)"`
	Date           time.Time       `gorm:"type:date;not null;index"`
	StageID        *uuid.UUID      `gorm:"type:uuid;index"`
	EstimateID     *uuid.UUID      `gorm:"type:uuid;index"`
	EstimateItemID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category     *CategoryModel     `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:RESTRICT"`
	Contractor   *UserModel         `gorm:"foreignKey:ContractorID;references:ID"`
	Stage        *StageModel        `gorm:"foreignKey:StageID;references:ID;constraint:OnDelete:CASCADE"`
	Estimate     *EstimateModel     `gorm:"foreignKey:EstimateID;references:ID;constraint:OnDelete:CASCADE"`
	EstimateItem *EstimateItemModel `gorm:"foreignKey:EstimateItemID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var attachment entity.Attachment
	switch {
	case m.StageID != nil:
		attachment = entity.AttachToStage(*m.StageID)
	case m.EstimateID != nil:
		attachment = entity.AttachToEstimate(*m.EstimateID)
	case m.EstimateItemID != nil:
		attachment = entity.AttachToItem(*m.EstimateItemID)
	}

	return &entity.Transaction{
		ID:           m.ID,
		Amount:       m.Amount,
		Type:         entity.TransactionType(m.Type),
		CategoryID:   m.CategoryID,
		ContractorID: m.ContractorID,
		Description:  m.Description,
		Date:         m.Date,
		Attachment:   attachment,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a model with its preloaded category.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	result := &entity.TransactionWithCategory{
		Transaction: m.ToEntity(),
	}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	return result
}

// TransactionFromEntity creates a TransactionModel from a domain entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	m := &TransactionModel{
		ID:           transaction.ID,
		Amount:       transaction.Amount,
		Type:         string(transaction.Type),
		CategoryID:   transaction.CategoryID,
		ContractorID: transaction.ContractorID,
		Description:  transaction.Description,
		Date:         transaction.Date,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}

	targetID := transaction.Attachment.TargetID
	switch transaction.Attachment.Kind {
	case entity.AttachmentStage:
		m.StageID = &targetID
	case entity.AttachmentEstimate:
		m.EstimateID = &targetID
	case entity.AttachmentItem:
		m.EstimateItemID = &targetID
	}

	return m
}
