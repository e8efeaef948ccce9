// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finanza-tracker/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	categoryController    *controller.CategoryController
	goalController        *controller.GoalController
	investmentController  *controller.InvestmentController
	dashboardController   *controller.DashboardController
	documentController    *controller.DocumentController
	assistantController   *controller.AssistantController
	settingsController    *controller.SettingsController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	goalController *controller.GoalController,
	investmentController *controller.InvestmentController,
	dashboardController *controller.DashboardController,
	documentController *controller.DocumentController,
	assistantController *controller.AssistantController,
	settingsController *controller.SettingsController,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		categoryController:    categoryController,
		goalController:        goalController,
		investmentController:  investmentController,
		dashboardController:   dashboardController,
		documentController:    documentController,
		assistantController:   assistantController,
		settingsController:    settingsController,
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
	v1 := r.engine.Group("/api/v1")
	{
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
		}

		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.PUT("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
		}

		investments := v1.Group("/investments")
		{
			investments.GET("", r.investmentController.List)
			investments.POST("", r.investmentController.Create)
			investments.PUT("/:id", r.investmentController.Update)
			investments.DELETE("/:id", r.investmentController.Delete)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", r.dashboardController.Summary)
		}

		documents := v1.Group("/documents")
		{
			documents.POST("/extract", r.documentController.Extract)
		}

		assistant := v1.Group("/assistant")
		{
			assistant.GET("/messages", r.assistantController.History)
			assistant.POST("/messages", r.assistantController.Send)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", r.settingsController.Get)
			settings.PUT("/currency", r.settingsController.UpdateCurrency)
		}
	}
}
