// Package main is the entry point for the Finanza Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finanza-tracker/backend/config"
	"github.com/finanza-tracker/backend/internal/application/usecase/assistant"
	"github.com/finanza-tracker/backend/internal/application/usecase/category"
	"github.com/finanza-tracker/backend/internal/application/usecase/dashboard"
	"github.com/finanza-tracker/backend/internal/application/usecase/document"
	"github.com/finanza-tracker/backend/internal/application/usecase/goal"
	"github.com/finanza-tracker/backend/internal/application/usecase/investment"
	"github.com/finanza-tracker/backend/internal/application/usecase/settings"
	"github.com/finanza-tracker/backend/internal/application/usecase/transaction"
	"github.com/finanza-tracker/backend/internal/infra/db"
	"github.com/finanza-tracker/backend/internal/infra/server/router"
	"github.com/finanza-tracker/backend/internal/integration/adapters"
	"github.com/finanza-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/finanza-tracker/backend/internal/integration/persistence"
	"github.com/finanza-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Finanza Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.TransactionItemModel{},
		&model.GoalModel{},
		&model.InvestmentModel{},
		&model.SettingModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	goalRepo := persistence.NewGoalRepository(database.DB())
	investmentRepo := persistence.NewInvestmentRepository(database.DB())
	settingsRepo := persistence.NewSettingsRepository(database.DB())
	chatRepo := persistence.NewChatHistoryRepository()

	// Create the Gemini adapter. An empty API key leaves the AI features
	// disabled; everything else keeps working.
	geminiService := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if !geminiService.IsAvailable() {
		slog.Warn("GEMINI_API_KEY is not set, AI features are disabled")
	}

	// Seed the default categories on first start
	seedCategoriesUseCase := category.NewSeedCategoriesUseCase(categoryRepo)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := seedCategoriesUseCase.Execute(ctx); err != nil {
		cancel()
		slog.Error("Failed to seed categories", "error", err)
		os.Exit(1)
	}
	cancel()

	// Create use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	saveGoalUseCase := goal.NewSaveGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	saveInvestmentUseCase := investment.NewSaveInvestmentUseCase(investmentRepo)
	listInvestmentsUseCase := investment.NewListInvestmentsUseCase(investmentRepo)
	deleteInvestmentUseCase := investment.NewDeleteInvestmentUseCase(investmentRepo)
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, categoryRepo)
	extractTransactionUseCase := document.NewExtractTransactionUseCase(categoryRepo, geminiService)
	sendMessageUseCase := assistant.NewSendMessageUseCase(
		chatRepo, transactionRepo, categoryRepo, goalRepo, investmentRepo, geminiService,
	)
	listMessagesUseCase := assistant.NewListMessagesUseCase(chatRepo)
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateCurrencyUseCase := settings.NewUpdateCurrencyUseCase(settingsRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase, listTransactionsUseCase, deleteTransactionUseCase,
	)
	categoryController := controller.NewCategoryController(listCategoriesUseCase)
	goalController := controller.NewGoalController(saveGoalUseCase, listGoalsUseCase, deleteGoalUseCase)
	investmentController := controller.NewInvestmentController(
		saveInvestmentUseCase, listInvestmentsUseCase, deleteInvestmentUseCase,
	)
	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	documentController := controller.NewDocumentController(extractTransactionUseCase)
	assistantController := controller.NewAssistantController(sendMessageUseCase, listMessagesUseCase)
	settingsController := controller.NewSettingsController(getSettingsUseCase, updateCurrencyUseCase)

	// Setup router
	r := router.NewRouter(
		healthController,
		transactionController,
		categoryController,
		goalController,
		investmentController,
		dashboardController,
		documentController,
		assistantController,
		settingsController,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
