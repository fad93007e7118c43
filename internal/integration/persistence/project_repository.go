package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
	"github.com/buildledger/backend/internal/integration/persistence/model"
)

// projectRepository implements the adapter.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance.
func NewProjectRepository(db *gorm.DB) adapter.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// Create creates a new project in the database.
func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectModel := model.ProjectFromEntity(project)
	result := r.db.WithContext(ctx).Create(projectModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a project by its ID.
func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectModel model.ProjectModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&projectModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProjectNotFound
		}
		return nil, result.Error
	}
	return projectModel.ToEntity(), nil
}

// FindAll retrieves all projects ordered by name.
func (r *projectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	var projectModels []model.ProjectModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&projectModels)
	if result.Error != nil {
		return nil, result.Error
	}

	projects := make([]*entity.Project, len(projectModels))
	for i, pm := range projectModels {
		projects[i] = pm.ToEntity()
	}
	return projects, nil
}

// Update updates an existing project.
func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectModel := model.ProjectFromEntity(project)
	result := r.db.WithContext(ctx).Save(projectModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a project. The schema cascades the delete through sites,
// stages, estimates, line items and their attached transactions.
func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProjectNotFound
	}
	return nil
}

// siteRepository implements the adapter.SiteRepository interface.
type siteRepository struct {
	db *gorm.DB
}

// NewSiteRepository creates a new site repository instance.
func NewSiteRepository(db *gorm.DB) adapter.SiteRepository {
	return &siteRepository{
		db: db,
	}
}

// Create creates a new site in the database.
func (r *siteRepository) Create(ctx context.Context, site *entity.Site) error {
	siteModel := model.SiteFromEntity(site)
	result := r.db.WithContext(ctx).Create(siteModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a site by its ID.
func (r *siteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Site, error) {
	var siteModel model.SiteModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&siteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSiteNotFound
		}
		return nil, result.Error
	}
	return siteModel.ToEntity(), nil
}

// FindByProject retrieves all sites of a project ordered by name.
func (r *siteRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Site, error) {
	var siteModels []model.SiteModel
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("name ASC").
		Find(&siteModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sites := make([]*entity.Site, len(siteModels))
	for i, sm := range siteModels {
		sites[i] = sm.ToEntity()
	}
	return sites, nil
}

// ListIDsByProject returns the IDs of all sites in a project.
func (r *siteRepository) ListIDsByProject(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.SiteModel{}).
		Where("project_id = ?", projectID).
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// Update updates an existing site.
func (r *siteRepository) Update(ctx context.Context, site *entity.Site) error {
	siteModel := model.SiteFromEntity(site)
	result := r.db.WithContext(ctx).Save(siteModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a site, cascading to its stages.
func (r *siteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SiteModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSiteNotFound
	}
	return nil
}

// stageRepository implements the adapter.StageRepository interface.
type stageRepository struct {
	db *gorm.DB
}

// NewStageRepository creates a new stage repository instance.
func NewStageRepository(db *gorm.DB) adapter.StageRepository {
	return &stageRepository{
		db: db,
	}
}

// Create creates a new stage in the database.
func (r *stageRepository) Create(ctx context.Context, stage *entity.Stage) error {
	stageModel := model.StageFromEntity(stage)
	result := r.db.WithContext(ctx).Create(stageModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a stage by its ID.
func (r *stageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Stage, error) {
	var stageModel model.StageModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&stageModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrStageNotFound
		}
		return nil, result.Error
	}
	return stageModel.ToEntity(), nil
}

// FindBySite retrieves all stages of a site in sequence order.
func (r *stageRepository) FindBySite(ctx context.Context, siteID uuid.UUID) ([]*entity.Stage, error) {
	var stageModels []model.StageModel
	result := r.db.WithContext(ctx).
		Where("site_id = ?", siteID).
		Order("sequence_order ASC").
		Find(&stageModels)
	if result.Error != nil {
		return nil, result.Error
	}

	stages := make([]*entity.Stage, len(stageModels))
	for i, sm := range stageModels {
		stages[i] = sm.ToEntity()
	}
	return stages, nil
}

// ListIDsBySites returns the IDs of all stages belonging to the given sites.
func (r *stageRepository) ListIDsBySites(ctx context.Context, siteIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(siteIDs) == 0 {
		return nil, nil
	}

	var ids []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.StageModel{}).
		Where("site_id IN ?", siteIDs).
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// ExistsBySiteAndOrder reports whether another stage of the site already uses
// the given order.
func (r *stageRepository) ExistsBySiteAndOrder(ctx context.Context, siteID uuid.UUID, order int, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.StageModel{}).
		Where("site_id = ? AND sequence_order = ?", siteID, order)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates an existing stage.
func (r *stageRepository) Update(ctx context.Context, stage *entity.Stage) error {
	stageModel := model.StageFromEntity(stage)
	result := r.db.WithContext(ctx).Save(stageModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a stage, cascading to its estimates.
func (r *stageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StageModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrStageNotFound
	}
	return nil
}
