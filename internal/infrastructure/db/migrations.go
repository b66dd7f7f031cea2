package db

import (
	"github.com/taskboard/backend/internal/domain"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.Employee{},
		&domain.Shift{},
		&domain.Task{},
	)
	if err != nil {
		return err
	}

	return createCustomIndexes(db)
}

func createCustomIndexes(db *gorm.DB) error {
	// The snapshot endpoint always filters by status and orders newest first.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tasks_status_created_at
		ON tasks (status, created_at DESC)
	`).Error; err != nil {
		return err
	}

	// Only one shift may be active at a time.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_shifts_single_active
		ON shifts (is_active)
		WHERE is_active
	`).Error; err != nil {
		return err
	}

	return nil
}
