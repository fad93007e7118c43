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

// UpdateSiteInput represents the input for site update.
type UpdateSiteInput struct {
	ID               uuid.UUID
	Name             string
	Address          string
	PlannedStartDate *time.Time
	PlannedEndDate   *time.Time
	ActualEndDate    *time.Time
	EstimatedBudget  *decimal.Decimal
}

// UpdateSiteOutput represents the output of site update.
type UpdateSiteOutput struct {
	Site *entity.Site
}

// UpdateSiteUseCase handles site updates.
type UpdateSiteUseCase struct {
	siteRepo adapter.SiteRepository
}

// NewUpdateSiteUseCase creates a new UpdateSiteUseCase instance.
func NewUpdateSiteUseCase(siteRepo adapter.SiteRepository) *UpdateSiteUseCase {
	return &UpdateSiteUseCase{siteRepo: siteRepo}
}

// Execute performs the site update.
func (uc *UpdateSiteUseCase) Execute(ctx context.Context, input UpdateSiteInput) (*UpdateSiteOutput, error) {
	site, err := uc.siteRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeSiteNotFound,
			"site not found",
			domainerror.ErrSiteNotFound,
		)
	}

	site.Name = input.Name
	site.Address = input.Address
	site.PlannedStartDate = input.PlannedStartDate
	site.PlannedEndDate = input.PlannedEndDate
	site.ActualEndDate = input.ActualEndDate
	site.EstimatedBudget = input.EstimatedBudget
	site.UpdatedAt = time.Now().UTC()

	if err := uc.siteRepo.Update(ctx, site); err != nil {
		return nil, fmt.Errorf("failed to update site: %w", err)
	}

	return &UpdateSiteOutput{Site: site}, nil
}

// DeleteSiteUseCase handles site deletion. The store cascades the delete to
// stages, estimates, line items and attached transactions.
type DeleteSiteUseCase struct {
	siteRepo adapter.SiteRepository
}

// NewDeleteSiteUseCase creates a new DeleteSiteUseCase instance.
func NewDeleteSiteUseCase(siteRepo adapter.SiteRepository) *DeleteSiteUseCase {
	return &DeleteSiteUseCase{siteRepo: siteRepo}
}

// Execute performs the site deletion.
func (uc *DeleteSiteUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.siteRepo.FindByID(ctx, id); err != nil {
		return domainerror.NewProjectError(
			domainerror.ErrCodeSiteNotFound,
			"site not found",
			domainerror.ErrSiteNotFound,
		)
	}
	if err := uc.siteRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	return nil
}
