package dto

import (
	"time"

	"github.com/buildledger/backend/internal/domain/entity"
)

// CreateProjectRequest represents the request body for project creation.
type CreateProjectRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=255"`
	Description  string `json:"description,omitempty"`
	ContractorID string `json:"contractor_id" binding:"required,uuid"`
}

// UpdateProjectRequest represents the request body for project update.
type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ContractorID string    `json:"contractor_id"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProjectListResponse represents the response for listing projects.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToProjectResponse converts a domain Project entity to a ProjectResponse DTO.
func ToProjectResponse(project *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:           project.ID.String(),
		Name:         project.Name,
		Description:  project.Description,
		ContractorID: project.ContractorID.String(),
		IsActive:     project.IsActive,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}
}

// ToProjectListResponse converts a list of projects to a ProjectListResponse.
func ToProjectListResponse(projects []*entity.Project) ProjectListResponse {
	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = ToProjectResponse(p)
	}
	return ProjectListResponse{Projects: out}
}

// CreateSiteRequest represents the request body for site creation.
type CreateSiteRequest struct {
	ProjectID        string  `json:"project_id" binding:"required,uuid"`
	Name             string  `json:"name" binding:"required,min=1,max=255"`
	Address          string  `json:"address,omitempty"`
	PlannedStartDate *string `json:"planned_start_date,omitempty"`
	PlannedEndDate   *string `json:"planned_end_date,omitempty"`
	EstimatedBudget  *string `json:"estimated_budget,omitempty"`
}

// UpdateSiteRequest represents the request body for site update.
type UpdateSiteRequest struct {
	Name             string  `json:"name" binding:"required,min=1,max=255"`
	Address          string  `json:"address,omitempty"`
	PlannedStartDate *string `json:"planned_start_date,omitempty"`
	PlannedEndDate   *string `json:"planned_end_date,omitempty"`
	ActualEndDate    *string `json:"actual_end_date,omitempty"`
	EstimatedBudget  *string `json:"estimated_budget,omitempty"`
}

// SiteResponse represents a site in API responses.
type SiteResponse struct {
	ID               string     `json:"id"`
	ProjectID        string     `json:"project_id"`
	Name             string     `json:"name"`
	Address          string     `json:"address"`
	PlannedStartDate *time.Time `json:"planned_start_date,omitempty"`
	PlannedEndDate   *time.Time `json:"planned_end_date,omitempty"`
	ActualEndDate    *time.Time `json:"actual_end_date,omitempty"`
	EstimatedBudget  *string    `json:"estimated_budget,omitempty"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// SiteListResponse represents the response for listing sites.
type SiteListResponse struct {
	Sites []SiteResponse `json:"sites"`
}

// ToSiteResponse converts a domain Site entity to a SiteResponse DTO.
func ToSiteResponse(site *entity.Site) SiteResponse {
	resp := SiteResponse{
		ID:               site.ID.String(),
		ProjectID:        site.ProjectID.String(),
		Name:             site.Name,
		Address:          site.Address,
		PlannedStartDate: site.PlannedStartDate,
		PlannedEndDate:   site.PlannedEndDate,
		ActualEndDate:    site.ActualEndDate,
		IsActive:         site.IsActive,
		CreatedAt:        site.CreatedAt,
		UpdatedAt:        site.UpdatedAt,
	}
	if site.EstimatedBudget != nil {
		budget := site.EstimatedBudget.StringFixed(2)
		resp.EstimatedBudget = &budget
	}
	return resp
}

// ToSiteListResponse converts a list of sites to a SiteListResponse.
func ToSiteListResponse(sites []*entity.Site) SiteListResponse {
	out := make([]SiteResponse, len(sites))
	for i, s := range sites {
		out[i] = ToSiteResponse(s)
	}
	return SiteListResponse{Sites: out}
}

// CreateStageRequest represents the request body for stage creation.
type CreateStageRequest struct {
	SiteID           string  `json:"site_id" binding:"required,uuid"`
	Order            int     `json:"order" binding:"required,min=1"`
	Name             string  `json:"name" binding:"required,min=1,max=255"`
	PlannedStartDate *string `json:"planned_start_date,omitempty"`
	PlannedEndDate   *string `json:"planned_end_date,omitempty"`
}

// UpdateStageRequest represents the request body for stage update.
type UpdateStageRequest struct {
	Order            int     `json:"order" binding:"required,min=1"`
	Name             string  `json:"name" binding:"required,min=1,max=255"`
	PlannedStartDate *string `json:"planned_start_date,omitempty"`
	PlannedEndDate   *string `json:"planned_end_date,omitempty"`
}

// StageResponse represents a stage in API responses.
type StageResponse struct {
	ID               string     `json:"id"`
	SiteID           string     `json:"site_id"`
	Order            int        `json:"order"`
	Name             string     `json:"name"`
	PlannedStartDate *time.Time `json:"planned_start_date,omitempty"`
	PlannedEndDate   *time.Time `json:"planned_end_date,omitempty"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// StageListResponse represents the response for listing stages.
type StageListResponse struct {
	Stages []StageResponse `json:"stages"`
}

// ToStageResponse converts a domain Stage entity to a StageResponse DTO.
func ToStageResponse(stage *entity.Stage) StageResponse {
	return StageResponse{
		ID:               stage.ID.String(),
		SiteID:           stage.SiteID.String(),
		Order:            stage.Order,
		Name:             stage.Name,
		PlannedStartDate: stage.PlannedStartDate,
		PlannedEndDate:   stage.PlannedEndDate,
		IsActive:         stage.IsActive,
		CreatedAt:        stage.CreatedAt,
		UpdatedAt:        stage.UpdatedAt,
	}
}

// ToStageListResponse converts a list of stages to a StageListResponse.
func ToStageListResponse(stages []*entity.Stage) StageListResponse {
	out := make([]StageResponse, len(stages))
	for i, s := range stages {
		out[i] = ToStageResponse(s)
	}
	return StageListResponse{Stages: out}
}
