// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/buildledger/backend/internal/integration/entrypoint/controller"
	"github.com/buildledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	projectController      *controller.ProjectController
	siteController         *controller.SiteController
	stageController        *controller.StageController
	estimateController     *controller.EstimateController
	estimateItemController *controller.EstimateItemController
	transactionController  *controller.TransactionController
	catalogController      *controller.CatalogController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	projectController *controller.ProjectController,
	siteController *controller.SiteController,
	stageController *controller.StageController,
	estimateController *controller.EstimateController,
	estimateItemController *controller.EstimateItemController,
	transactionController *controller.TransactionController,
	catalogController *controller.CatalogController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		projectController:      projectController,
		siteController:         siteController,
		stageController:        stageController,
		estimateController:     estimateController,
		estimateItemController: estimateItemController,
		transactionController:  transactionController,
		catalogController:      catalogController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (public)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
			}
		}

		// Everything below requires authentication
		if r.authMiddleware == nil {
			return
		}

		// User routes (the contractor picker)
		if r.authController != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("", r.authController.ListUsers)
			}
		}

		// Project hierarchy routes
		if r.projectController != nil {
			projects := v1.Group("/projects")
			projects.Use(r.authMiddleware.Authenticate())
			{
				projects.GET("", r.projectController.List)
				projects.POST("", r.projectController.Create)
				projects.GET("/:id", r.projectController.Get)
				projects.PATCH("/:id", r.projectController.Update)
				projects.DELETE("/:id", r.projectController.Delete)
				projects.GET("/:id/transactions", r.projectController.Transactions)
			}
		}

		if r.siteController != nil {
			sites := v1.Group("/sites")
			sites.Use(r.authMiddleware.Authenticate())
			{
				sites.GET("", r.siteController.List)
				sites.POST("", r.siteController.Create)
				sites.GET("/:id", r.siteController.Get)
				sites.PATCH("/:id", r.siteController.Update)
				sites.DELETE("/:id", r.siteController.Delete)
				sites.GET("/:id/transactions", r.siteController.Transactions)
			}
		}

		if r.stageController != nil {
			stages := v1.Group("/stages")
			stages.Use(r.authMiddleware.Authenticate())
			{
				stages.GET("", r.stageController.List)
				stages.POST("", r.stageController.Create)
				stages.GET("/:id", r.stageController.Get)
				stages.PATCH("/:id", r.stageController.Update)
				stages.DELETE("/:id", r.stageController.Delete)
				stages.GET("/:id/transactions", r.stageController.Transactions)
			}
		}

		// Estimate routes
		if r.estimateController != nil {
			estimates := v1.Group("/estimates")
			estimates.Use(r.authMiddleware.Authenticate())
			{
				estimates.GET("", r.estimateController.List)
				estimates.POST("", r.estimateController.Create)
				estimates.GET("/:id", r.estimateController.Get)
				estimates.PATCH("/:id", r.estimateController.Update)
				estimates.GET("/:id/totals", r.estimateController.Totals)
				estimates.GET("/:id/export", r.estimateController.Export)
				estimates.POST("/:id/generate-transactions", r.estimateController.GenerateTransactions)
				estimates.GET("/:id/transactions", r.estimateController.Transactions)

				// Line item routes (nested under estimates)
				if r.estimateItemController != nil {
					estimates.GET("/:id/items", r.estimateItemController.List)
					estimates.POST("/:id/items", r.estimateItemController.Create)
				}
			}
		}

		if r.estimateItemController != nil {
			items := v1.Group("/estimate-items")
			items.Use(r.authMiddleware.Authenticate())
			{
				items.PATCH("/:id", r.estimateItemController.Update)
				items.DELETE("/:id", r.estimateItemController.Delete)
				items.GET("/:id/transactions", r.estimateItemController.Transactions)
			}
		}

		// Transaction routes
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Catalog routes
		if r.catalogController != nil {
			priceItems := v1.Group("/price-items")
			priceItems.Use(r.authMiddleware.Authenticate())
			{
				priceItems.GET("", r.catalogController.ListPriceItems)
				priceItems.POST("", r.catalogController.CreatePriceItem)
				priceItems.GET("/:id", r.catalogController.GetPriceItem)
			}

			materialTypes := v1.Group("/material-types")
			materialTypes.Use(r.authMiddleware.Authenticate())
			{
				materialTypes.GET("", r.catalogController.ListMaterialTypes)
				materialTypes.POST("", r.catalogController.CreateMaterialType)
			}

			workTypes := v1.Group("/work-types")
			workTypes.Use(r.authMiddleware.Authenticate())
			{
				workTypes.GET("", r.catalogController.ListWorkTypes)
				workTypes.POST("", r.catalogController.CreateWorkType)
			}

			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.catalogController.ListCategories)
				categories.POST("", r.catalogController.CreateCategory)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
