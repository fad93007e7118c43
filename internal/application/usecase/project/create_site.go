package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// CreateSiteInput represents the input for site creation.
type CreateSiteInput struct {
	ProjectID        uuid.UUID
	Name             string
	Address          string
	PlannedStartDate *time.Time
	PlannedEndDate   *time.Time
	EstimatedBudget  *decimal.Decimal
}

// CreateSiteOutput represents the output of site creation.
type CreateSiteOutput struct {
	Site *entity.Site
}

// CreateSiteUseCase handles site creation.
type CreateSiteUseCase struct {
	siteRepo    adapter.SiteRepository
	projectRepo adapter.ProjectRepository
}

// NewCreateSiteUseCase creates a new CreateSiteUseCase instance.
func NewCreateSiteUseCase(siteRepo adapter.SiteRepository, projectRepo adapter.ProjectRepository) *CreateSiteUseCase {
	return &CreateSiteUseCase{
		siteRepo:    siteRepo,
		projectRepo: projectRepo,
	}
}

// Execute performs the site creation.
func (uc *CreateSiteUseCase) Execute(ctx context.Context, input CreateSiteInput) (*CreateSiteOutput, error) {
	if _, err := uc.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}

	site := entity.NewSite(input.ProjectID, input.Name, input.Address)
	site.PlannedStartDate = input.PlannedStartDate
	site.PlannedEndDate = input.PlannedEndDate
	site.EstimatedBudget = input.EstimatedBudget

	if err := uc.siteRepo.Create(ctx, site); err != nil {
		return nil, fmt.Errorf("failed to create site: %w", err)
	}

	return &CreateSiteOutput{Site: site}, nil
}

// ListSitesUseCase handles site listing for a project.
type ListSitesUseCase struct {
	siteRepo adapter.SiteRepository
}

// NewListSitesUseCase creates a new ListSitesUseCase instance.
func NewListSitesUseCase(siteRepo adapter.SiteRepository) *ListSitesUseCase {
	return &ListSitesUseCase{siteRepo: siteRepo}
}

// Execute lists all sites of a project.
func (uc *ListSitesUseCase) Execute(ctx context.Context, projectID uuid.UUID) ([]*entity.Site, error) {
	sites, err := uc.siteRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	return sites, nil
}

// GetSiteUseCase handles single site retrieval.
type GetSiteUseCase struct {
	siteRepo adapter.SiteRepository
}

// NewGetSiteUseCase creates a new GetSiteUseCase instance.
func NewGetSiteUseCase(siteRepo adapter.SiteRepository) *GetSiteUseCase {
	return &GetSiteUseCase{siteRepo: siteRepo}
}

// Execute retrieves one site by ID.
func (uc *GetSiteUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Site, error) {
	site, err := uc.siteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeSiteNotFound,
			"site not found",
			domainerror.ErrSiteNotFound,
		)
	}
	return site, nil
}
