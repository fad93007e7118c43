// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/buildledger/backend/config"
	"github.com/buildledger/backend/internal/application/usecase/auth"
	"github.com/buildledger/backend/internal/application/usecase/catalog"
	"github.com/buildledger/backend/internal/application/usecase/estimate"
	"github.com/buildledger/backend/internal/application/usecase/export"
	"github.com/buildledger/backend/internal/application/usecase/project"
	"github.com/buildledger/backend/internal/application/usecase/report"
	"github.com/buildledger/backend/internal/application/usecase/transaction"
	"github.com/buildledger/backend/internal/infra/server/router"
	"github.com/buildledger/backend/internal/integration/adapters"
	"github.com/buildledger/backend/internal/integration/entrypoint/controller"
	"github.com/buildledger/backend/internal/integration/entrypoint/middleware"
	"github.com/buildledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	projectRepo := persistence.NewProjectRepository(db)
	siteRepo := persistence.NewSiteRepository(db)
	stageRepo := persistence.NewStageRepository(db)
	estimateRepo := persistence.NewEstimateRepository(db)
	itemRepo := persistence.NewEstimateItemRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	priceItemRepo := persistence.NewPriceItemRepository(db)
	materialTypeRepo := persistence.NewMaterialTypeRepository(db)
	workTypeRepo := persistence.NewWorkTypeRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	listUsersUseCase := auth.NewListUsersUseCase(userRepo)

	// Create hierarchy use cases
	createProjectUseCase := project.NewCreateProjectUseCase(projectRepo, userRepo)
	listProjectsUseCase := project.NewListProjectsUseCase(projectRepo)
	getProjectUseCase := project.NewGetProjectUseCase(projectRepo)
	updateProjectUseCase := project.NewUpdateProjectUseCase(projectRepo)
	deleteProjectUseCase := project.NewDeleteProjectUseCase(projectRepo)
	createSiteUseCase := project.NewCreateSiteUseCase(siteRepo, projectRepo)
	listSitesUseCase := project.NewListSitesUseCase(siteRepo)
	getSiteUseCase := project.NewGetSiteUseCase(siteRepo)
	updateSiteUseCase := project.NewUpdateSiteUseCase(siteRepo)
	deleteSiteUseCase := project.NewDeleteSiteUseCase(siteRepo)
	createStageUseCase := project.NewCreateStageUseCase(stageRepo, siteRepo)
	listStagesUseCase := project.NewListStagesUseCase(stageRepo)
	getStageUseCase := project.NewGetStageUseCase(stageRepo)
	updateStageUseCase := project.NewUpdateStageUseCase(stageRepo)
	deleteStageUseCase := project.NewDeleteStageUseCase(stageRepo)

	// Create estimate use cases
	createEstimateUseCase := estimate.NewCreateEstimateUseCase(estimateRepo, stageRepo)
	listEstimatesUseCase := estimate.NewListEstimatesUseCase(estimateRepo)
	getEstimateUseCase := estimate.NewGetEstimateUseCase(estimateRepo)
	updateEstimateUseCase := estimate.NewUpdateEstimateUseCase(estimateRepo)
	totalsUseCase := estimate.NewGetEstimateTotalsUseCase(estimateRepo, itemRepo)
	createItemUseCase := estimate.NewCreateEstimateItemUseCase(itemRepo, estimateRepo, priceItemRepo)
	listItemsUseCase := estimate.NewListEstimateItemsUseCase(itemRepo)
	updateItemUseCase := estimate.NewUpdateEstimateItemUseCase(itemRepo, priceItemRepo)
	deleteItemUseCase := estimate.NewDeleteEstimateItemUseCase(itemRepo)
	exportUseCase := export.NewExportEstimateUseCase(estimateRepo, itemRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, stageRepo, estimateRepo, itemRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	generateUseCase := transaction.NewGenerateTransactionsUseCase(transactionRepo, estimateRepo, itemRepo, priceItemRepo, categoryRepo)
	reportUseCase := report.NewNodeTransactionsUseCase(siteRepo, stageRepo, estimateRepo, itemRepo, transactionRepo)

	// Create catalog use cases
	createPriceItemUseCase := catalog.NewCreatePriceItemUseCase(priceItemRepo, materialTypeRepo, workTypeRepo)
	getPriceItemUseCase := catalog.NewGetPriceItemUseCase(priceItemRepo)
	createMaterialTypeUseCase := catalog.NewCreateMaterialTypeUseCase(materialTypeRepo)
	createWorkTypeUseCase := catalog.NewCreateWorkTypeUseCase(workTypeRepo)
	createCategoryUseCase := catalog.NewCreateCategoryUseCase(categoryRepo)
	listCatalogUseCase := catalog.NewListCatalogUseCase(priceItemRepo, materialTypeRepo, workTypeRepo, categoryRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		listUsersUseCase,
	)

	projectController := controller.NewProjectController(
		createProjectUseCase,
		listProjectsUseCase,
		getProjectUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		reportUseCase,
	)

	siteController := controller.NewSiteController(
		createSiteUseCase,
		listSitesUseCase,
		getSiteUseCase,
		updateSiteUseCase,
		deleteSiteUseCase,
		reportUseCase,
	)

	stageController := controller.NewStageController(
		createStageUseCase,
		listStagesUseCase,
		getStageUseCase,
		updateStageUseCase,
		deleteStageUseCase,
		reportUseCase,
	)

	estimateController := controller.NewEstimateController(
		createEstimateUseCase,
		listEstimatesUseCase,
		getEstimateUseCase,
		updateEstimateUseCase,
		totalsUseCase,
		exportUseCase,
		generateUseCase,
		reportUseCase,
	)

	estimateItemController := controller.NewEstimateItemController(
		createItemUseCase,
		listItemsUseCase,
		updateItemUseCase,
		deleteItemUseCase,
		reportUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
	)

	catalogController := controller.NewCatalogController(
		createPriceItemUseCase,
		getPriceItemUseCase,
		createMaterialTypeUseCase,
		createWorkTypeUseCase,
		createCategoryUseCase,
		listCatalogUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		projectController,
		siteController,
		stageController,
		estimateController,
		estimateItemController,
		transactionController,
		catalogController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
