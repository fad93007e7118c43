package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Project groups construction sites for one client (e.g. a yacht club).
// Deleting a project cascades to everything below it.
type Project struct {
	ID           uuid.UUID
	Name         string
	Description  string
	ContractorID uuid.UUID // the client the project is built for
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProject creates a new Project entity.
func NewProject(name, description string, contractorID uuid.UUID) *Project {
	now := time.Now().UTC()

	return &Project{
		ID:           uuid.New(),
		Name:         name,
		Description:  description,
		ContractorID: contractorID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Site is a single construction object within a project (a house, a sauna, a
// veranda).
type Site struct {
	ID               uuid.UUID
	ProjectID        uuid.UUID
	Name             string
	Address          string
	PlannedStartDate *time.Time
	PlannedEndDate   *time.Time
	ActualEndDate    *time.Time
	EstimatedBudget  *decimal.Decimal
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewSite creates a new Site entity.
func NewSite(projectID uuid.UUID, name, address string) *Site {
	now := time.Now().UTC()

	return &Site{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      name,
		Address:   address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Stage is one sequenced phase of work on a site (foundation, roof, finish).
// Order is unique within the site and defines the sequence.
type Stage struct {
	ID               uuid.UUID
	SiteID           uuid.UUID
	Order            int
	Name             string
	PlannedStartDate *time.Time
	PlannedEndDate   *time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewStage creates a new Stage entity.
func NewStage(siteID uuid.UUID, order int, name string) *Stage {
	now := time.Now().UTC()

	return &Stage{
		ID:        uuid.New(),
		SiteID:    siteID,
		Order:     order,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
