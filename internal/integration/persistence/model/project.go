package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/domain/entity"
)

// ProjectModel represents the projects table in the database.
type ProjectModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	Description  string    `gorm:"type:text"`
	ContractorID uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive     bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	Contractor *UserModel `gorm:"foreignKey:ContractorID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the ProjectModel.
func (ProjectModel) TableName() string {
	return "projects"
}

// ToEntity converts a ProjectModel to a domain Project entity.
func (m *ProjectModel) ToEntity() *entity.Project {
	return &entity.Project{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		ContractorID: m.ContractorID,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ProjectFromEntity creates a ProjectModel from a domain Project entity.
func ProjectFromEntity(project *entity.Project) *ProjectModel {
	return &ProjectModel{
		ID:           project.ID,
		Name:         project.Name,
		Description:  project.Description,
		ContractorID: project.ContractorID,
		IsActive:     project.IsActive,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}
}

// SiteModel represents the sites table in the database. Deleting a project
// cascades here and onwards down the hierarchy.
type SiteModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ProjectID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name             string           `gorm:"type:varchar(255);not null"`
	Address          string           `gorm:"type:varchar(500)"`
	PlannedStartDate *time.Time       `gorm:"type:date"`
	PlannedEndDate   *time.Time       `gorm:"type:date"`
	ActualEndDate    *time.Time       `gorm:"type:date"`
	EstimatedBudget  *decimal.Decimal `gorm:"type:decimal(15,2)"`
	IsActive         bool             `gorm:"default:true"`
	CreatedAt        time.Time        `gorm:"not null"`
	UpdatedAt        time.Time        `gorm:"not null"`

	Project *ProjectModel `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the SiteModel.
func (SiteModel) TableName() string {
	return "sites"
}

// ToEntity converts a SiteModel to a domain Site entity.
func (m *SiteModel) ToEntity() *entity.Site {
	return &entity.Site{
		ID:               m.ID,
		ProjectID:        m.ProjectID,
		Name:             m.Name,
		Address:          m.Address,
		PlannedStartDate: m.PlannedStartDate,
		PlannedEndDate:   m.PlannedEndDate,
		ActualEndDate:    m.ActualEndDate,
		EstimatedBudget:  m.EstimatedBudget,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// SiteFromEntity creates a SiteModel from a domain Site entity.
func SiteFromEntity(site *entity.Site) *SiteModel {
	return &SiteModel{
		ID:               site.ID,
		ProjectID:        site.ProjectID,
		Name:             site.Name,
		Address:          site.Address,
		PlannedStartDate: site.PlannedStartDate,
		PlannedEndDate:   site.PlannedEndDate,
		ActualEndDate:    site.ActualEndDate,
		EstimatedBudget:  site.EstimatedBudget,
		IsActive:         site.IsActive,
		CreatedAt:        site.CreatedAt,
		UpdatedAt:        site.UpdatedAt,
	}
}

// StageModel represents the stages table in the database. The sequence order
// is unique within a site.
type StageModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SiteID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_stages_site_order"`
	Order            int        `gorm:"column:sequence_order;not null;uniqueIndex:idx_stages_site_order"`
	Name             string     `gorm:"type:varchar(255);not null"`
	PlannedStartDate *time.Time `gorm:"type:date"`
	PlannedEndDate   *time.Time `gorm:"type:date"`
	IsActive         bool       `gorm:"default:true"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`

	Site *SiteModel `gorm:"foreignKey:SiteID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the StageModel.
func (StageModel) TableName() string {
	return "stages"
}

// ToEntity converts a StageModel to a domain Stage entity.
func (m *StageModel) ToEntity() *entity.Stage {
	return &entity.Stage{
		ID:               m.ID,
		SiteID:           m.SiteID,
		Order:            m.Order,
		Name:             m.Name,
		PlannedStartDate: m.PlannedStartDate,
		PlannedEndDate:   m.PlannedEndDate,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// StageFromEntity creates a StageModel from a domain Stage entity.
func StageFromEntity(stage *entity.Stage) *StageModel {
	return &StageModel{
		ID:               stage.ID,
		SiteID:           stage.SiteID,
		Order:            stage.Order,
		Name:             stage.Name,
		PlannedStartDate: stage.PlannedStartDate,
		PlannedEndDate:   stage.PlannedEndDate,
		IsActive:         stage.IsActive,
		CreatedAt:        stage.CreatedAt,
		UpdatedAt:        stage.UpdatedAt,
	}
}
