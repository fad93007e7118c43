package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// CreateStageInput represents the input for stage creation.
type CreateStageInput struct {
	SiteID           uuid.UUID
	Order            int
	Name             string
	PlannedStartDate *time.Time
	PlannedEndDate   *time.Time
}

// CreateStageOutput represents the output of stage creation.
type CreateStageOutput struct {
	Stage *entity.Stage
}

// CreateStageUseCase handles stage creation. The stage order must be unique
// within its site.
type CreateStageUseCase struct {
	stageRepo adapter.StageRepository
	siteRepo  adapter.SiteRepository
}

// NewCreateStageUseCase creates a new CreateStageUseCase instance.
func NewCreateStageUseCase(stageRepo adapter.StageRepository, siteRepo adapter.SiteRepository) *CreateStageUseCase {
	return &CreateStageUseCase{
		stageRepo: stageRepo,
		siteRepo:  siteRepo,
	}
}

// Execute performs the stage creation.
func (uc *CreateStageUseCase) Execute(ctx context.Context, input CreateStageInput) (*CreateStageOutput, error) {
	if _, err := uc.siteRepo.FindByID(ctx, input.SiteID); err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeSiteNotFound,
			"site not found",
			domainerror.ErrSiteNotFound,
		)
	}

	taken, err := uc.stageRepo.ExistsBySiteAndOrder(ctx, input.SiteID, input.Order, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check stage order: %w", err)
	}
	if taken {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeStageOrderTaken,
			fmt.Sprintf("stage order %d already used within this site", input.Order),
			domainerror.ErrStageOrderTaken,
		)
	}

	stage := entity.NewStage(input.SiteID, input.Order, input.Name)
	stage.PlannedStartDate = input.PlannedStartDate
	stage.PlannedEndDate = input.PlannedEndDate

	if err := uc.stageRepo.Create(ctx, stage); err != nil {
		return nil, fmt.Errorf("failed to create stage: %w", err)
	}

	return &CreateStageOutput{Stage: stage}, nil
}

// ListStagesUseCase handles stage listing for a site, in sequence order.
type ListStagesUseCase struct {
	stageRepo adapter.StageRepository
}

// NewListStagesUseCase creates a new ListStagesUseCase instance.
func NewListStagesUseCase(stageRepo adapter.StageRepository) *ListStagesUseCase {
	return &ListStagesUseCase{stageRepo: stageRepo}
}

// Execute lists all stages of a site.
func (uc *ListStagesUseCase) Execute(ctx context.Context, siteID uuid.UUID) ([]*entity.Stage, error) {
	stages, err := uc.stageRepo.FindBySite(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	return stages, nil
}

// GetStageUseCase handles single stage retrieval.
type GetStageUseCase struct {
	stageRepo adapter.StageRepository
}

// NewGetStageUseCase creates a new GetStageUseCase instance.
func NewGetStageUseCase(stageRepo adapter.StageRepository) *GetStageUseCase {
	return &GetStageUseCase{stageRepo: stageRepo}
}

// Execute retrieves one stage by ID.
func (uc *GetStageUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Stage, error) {
	stage, err := uc.stageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeStageNotFound,
			"stage not found",
			domainerror.ErrStageNotFound,
		)
	}
	return stage, nil
}
