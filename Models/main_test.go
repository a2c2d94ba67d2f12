package Models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package at a fresh in-memory SQLite database.
// SQLite allows a single writer, so the pool is capped at one connection;
// transactions then serialize the way Postgres row locks would.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access underlying database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&User{}, &BloodStock{}, &Donor{}, &BloodRequest{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	DB = db
}

func stockUnits(t *testing.T, bloodGroup string) uint {
	t.Helper()
	var stock BloodStock
	if err := DB.Where("blood_group = ?", bloodGroup).First(&stock).Error; err != nil {
		t.Fatalf("failed to read stock for %s: %v", bloodGroup, err)
	}
	return stock.UnitsAvailable
}
