package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/domain/entity"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	// Create creates a new project.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a project by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindAll retrieves all projects ordered by name.
	FindAll(ctx context.Context) ([]*entity.Project, error)

	// Update updates an existing project.
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes a project. The store cascades the delete down the
	// hierarchy.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SiteRepository defines persistence operations for construction sites.
type SiteRepository interface {
	// Create creates a new site.
	Create(ctx context.Context, site *entity.Site) error

	// FindByID retrieves a site by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Site, error)

	// FindByProject retrieves all sites of a project ordered by name.
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Site, error)

	// ListIDsByProject returns the IDs of all sites in a project.
	ListIDsByProject(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error)

	// Update updates an existing site.
	Update(ctx context.Context, site *entity.Site) error

	// Delete removes a site, cascading to its stages.
	Delete(ctx context.Context, id uuid.UUID) error
}

// StageRepository defines persistence operations for stages.
type StageRepository interface {
	// Create creates a new stage.
	Create(ctx context.Context, stage *entity.Stage) error

	// FindByID retrieves a stage by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Stage, error)

	// FindBySite retrieves all stages of a site ordered by their sequence.
	FindBySite(ctx context.Context, siteID uuid.UUID) ([]*entity.Stage, error)

	// ListIDsBySites returns the IDs of all stages belonging to the given sites.
	ListIDsBySites(ctx context.Context, siteIDs []uuid.UUID) ([]uuid.UUID, error)

	// ExistsBySiteAndOrder reports whether another stage of the site already
	// uses the given order. excludeID skips the stage being updated.
	ExistsBySiteAndOrder(ctx context.Context, siteID uuid.UUID, order int, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing stage.
	Update(ctx context.Context, stage *entity.Stage) error

	// Delete removes a stage, cascading to its estimates.
	Delete(ctx context.Context, id uuid.UUID) error
}
