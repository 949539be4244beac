package database

import (
	"fmt"

	"callmeback-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Connect opens the SQLite database at path and runs migrations.
// The returned handle is the single shared connection for the process;
// callers pass it explicitly to handlers and middleware.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Reminder{},
		&models.PaymentRecord{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
