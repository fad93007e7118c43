package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
	"github.com/buildledger/backend/internal/integration/persistence/model"
)

// openTestDB opens a private in-memory SQLite database with the full schema
// migrated and foreign key enforcement on.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	db.Exec("PRAGMA foreign_keys = ON")

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.MaterialTypeModel{},
		&model.WorkTypeModel{},
		&model.CategoryModel{},
		&model.PriceItemModel{},
		&model.ProjectModel{},
		&model.SiteModel{},
		&model.StageModel{},
		&model.EstimateModel{},
		&model.EstimateItemModel{},
		&model.TransactionModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// fixture is a fully linked hierarchy seeded through the repositories.
type fixture struct {
	user     *entity.User
	category *entity.Category
	project  *entity.Project
	site     *entity.Site
	stage    *entity.Stage
	estimate *entity.Estimate
	item     *entity.EstimateItem
}

func seedHierarchy(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		user:     entity.NewUser("+79161234567", "Ivan", "Petrov", "hash"),
		category: entity.NewCategory("Materials", ""),
	}
	if err := NewUserRepository(db).Create(ctx, f.user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	if err := NewCategoryRepository(db).Create(ctx, f.category); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	f.project = entity.NewProject("Dacha", "", f.user.ID)
	if err := NewProjectRepository(db).Create(ctx, f.project); err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	f.site = entity.NewSite(f.project.ID, "Main house", "")
	if err := NewSiteRepository(db).Create(ctx, f.site); err != nil {
		t.Fatalf("failed to seed site: %v", err)
	}

	f.stage = entity.NewStage(f.site.ID, 1, "Foundation")
	if err := NewStageRepository(db).Create(ctx, f.stage); err != nil {
		t.Fatalf("failed to seed stage: %v", err)
	}

	f.estimate = entity.NewEstimate(f.stage.ID)
	if err := NewEstimateRepository(db).Create(ctx, f.estimate); err != nil {
		t.Fatalf("failed to seed estimate: %v", err)
	}

	f.item = entity.NewEstimateItem(f.estimate.ID, nil, "Concrete",
		decimal.NewFromInt(10), decimal.NewFromInt(100),
		entity.IncomeTypeMarkup, decimal.NewFromInt(20), true)
	if err := NewEstimateItemRepository(db).Create(ctx, f.item); err != nil {
		t.Fatalf("failed to seed estimate item: %v", err)
	}

	return f
}

func TestHierarchyRepositories(t *testing.T) {
	ctx := context.Background()

	t.Run("id listing walks each level", func(t *testing.T) {
		db := openTestDB(t)
		f := seedHierarchy(t, db)

		siteIDs, err := NewSiteRepository(db).ListIDsByProject(ctx, f.project.ID)
		if err != nil || len(siteIDs) != 1 || siteIDs[0] != f.site.ID {
			t.Fatalf("expected [%s], got %v (err=%v)", f.site.ID, siteIDs, err)
		}

		stageIDs, err := NewStageRepository(db).ListIDsBySites(ctx, siteIDs)
		if err != nil || len(stageIDs) != 1 || stageIDs[0] != f.stage.ID {
			t.Fatalf("expected [%s], got %v (err=%v)", f.stage.ID, stageIDs, err)
		}

		estimateIDs, err := NewEstimateRepository(db).ListIDsByStages(ctx, stageIDs)
		if err != nil || len(estimateIDs) != 1 || estimateIDs[0] != f.estimate.ID {
			t.Fatalf("expected [%s], got %v (err=%v)", f.estimate.ID, estimateIDs, err)
		}

		itemIDs, err := NewEstimateItemRepository(db).ListIDsByEstimates(ctx, estimateIDs)
		if err != nil || len(itemIDs) != 1 || itemIDs[0] != f.item.ID {
			t.Fatalf("expected [%s], got %v (err=%v)", f.item.ID, itemIDs, err)
		}
	})

	t.Run("deleting a project cascades down the hierarchy", func(t *testing.T) {
		db := openTestDB(t)
		f := seedHierarchy(t, db)

		txnRepo := NewTransactionRepository(db)
		txn := entity.NewTransaction(decimal.NewFromInt(500), entity.TransactionTypeExpense,
			f.category.ID, nil, "", time.Now(), entity.AttachToStage(f.stage.ID))
		if err := txnRepo.Create(ctx, txn); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		if err := NewProjectRepository(db).Delete(ctx, f.project.ID); err != nil {
			t.Fatalf("failed to delete project: %v", err)
		}

		if _, err := NewStageRepository(db).FindByID(ctx, f.stage.ID); !errors.Is(err, domainerror.ErrStageNotFound) {
			t.Errorf("expected stage to be gone, got %v", err)
		}
		if _, err := NewEstimateItemRepository(db).FindByID(ctx, f.item.ID); !errors.Is(err, domainerror.ErrEstimateItemNotFound) {
			t.Errorf("expected estimate item to be gone, got %v", err)
		}
		if _, err := txnRepo.FindByID(ctx, txn.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected stage transaction to be gone, got %v", err)
		}
	})

	t.Run("deleting a missing project reports not found", func(t *testing.T) {
		db := openTestDB(t)

		err := NewProjectRepository(db).Delete(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrProjectNotFound) {
			t.Fatalf("expected project not found, got %v", err)
		}
	})
}

func TestStageRepository_Order(t *testing.T) {
	ctx := context.Background()

	t.Run("reports existing order within a site", func(t *testing.T) {
		db := openTestDB(t)
		f := seedHierarchy(t, db)
		repo := NewStageRepository(db)

		exists, err := repo.ExistsBySiteAndOrder(ctx, f.site.ID, 1, nil)
		if err != nil || !exists {
			t.Errorf("expected order 1 to exist, got exists=%v err=%v", exists, err)
		}

		exists, err = repo.ExistsBySiteAndOrder(ctx, f.site.ID, 2, nil)
		if err != nil || exists {
			t.Errorf("expected order 2 to be free, got exists=%v err=%v", exists, err)
		}

		// The stage itself is excluded when checking its own update.
		exists, err = repo.ExistsBySiteAndOrder(ctx, f.site.ID, 1, &f.stage.ID)
		if err != nil || exists {
			t.Errorf("expected own order to be excluded, got exists=%v err=%v", exists, err)
		}
	})

	t.Run("duplicate order is rejected by the schema", func(t *testing.T) {
		db := openTestDB(t)
		f := seedHierarchy(t, db)

		duplicate := entity.NewStage(f.site.ID, 1, "Walls")
		if err := NewStageRepository(db).Create(ctx, duplicate); err == nil {
			t.Fatal("expected unique index violation")
		}
	})

	t.Run("same order on another site is allowed", func(t *testing.T) {
		db := openTestDB(t)
		f := seedHierarchy(t, db)

		other := entity.NewSite(f.project.ID, "Garage", "")
		if err := NewSiteRepository(db).Create(ctx, other); err != nil {
			t.Fatalf("failed to create site: %v", err)
		}
		if err := NewStageRepository(db).Create(ctx, entity.NewStage(other.ID, 1, "Foundation")); err != nil {
			t.Fatalf("expected order 1 to be free on another site: %v", err)
		}
	})
}

func TestEstimateItemRepository_PriceItemResolution(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	f := seedHierarchy(t, db)

	materialType := entity.NewMaterialType("Cement", "")
	if err := NewMaterialTypeRepository(db).Create(ctx, materialType); err != nil {
		t.Fatalf("failed to create material type: %v", err)
	}
	priceItem := entity.NewPriceItem("Cement M500", entity.PriceItemKindMaterial,
		materialType.ID, materialType.Name, "bag", decimal.NewFromInt(450))
	if err := NewPriceItemRepository(db).Create(ctx, priceItem); err != nil {
		t.Fatalf("failed to create price item: %v", err)
	}

	itemRepo := NewEstimateItemRepository(db)
	item := entity.NewEstimateItem(f.estimate.ID, &priceItem.ID, "",
		decimal.NewFromInt(20), decimal.NewFromInt(450),
		entity.IncomeTypeNone, decimal.Zero, false)
	if err := itemRepo.Create(ctx, item); err != nil {
		t.Fatalf("failed to create estimate item: %v", err)
	}

	withPrices, err := itemRepo.FindByEstimateWithPriceItems(ctx, f.estimate.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(withPrices) != 2 {
		t.Fatalf("expected 2 items, got %d", len(withPrices))
	}

	// Insertion order: the seeded free-form item first, then the catalog one.
	if withPrices[0].PriceItem != nil {
		t.Error("expected no catalog entry on the free-form item")
	}
	resolved := withPrices[1].PriceItem
	if resolved == nil {
		t.Fatal("expected catalog entry to be preloaded")
	}
	if resolved.Name != "Cement M500" || resolved.Unit != "bag" {
		t.Errorf("unexpected catalog entry %q unit %q", resolved.Name, resolved.Unit)
	}
	if resolved.TypeName != "Cement" {
		t.Errorf("expected type name resolved, got %q", resolved.TypeName)
	}
}
