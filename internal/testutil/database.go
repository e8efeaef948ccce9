// Package testutil provides helpers for setting up in-memory databases and
// making assertions in tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finanza-tracker/backend/internal/integration/persistence/model"
)

// allModels is the list of GORM models to auto-migrate in tests.
var allModels = []interface{}{
	&model.CategoryModel{},
	&model.TransactionModel{},
	&model.TransactionItemModel{},
	&model.GoalModel{},
	&model.InvestmentModel{},
	&model.SettingModel{},
}

// OpenTestDB opens a fresh in-memory SQLite database with the full schema
// migrated. Each call returns an isolated database.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
