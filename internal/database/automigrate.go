package database

import (
	"fmt"

	"gorm.io/gorm"

	"bboard-api/internal/domain"
)

// AutoMigrate creates the board tables if absent and updates their
// schema based on the struct definitions in the domain package
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Announcement{},
		&domain.Comment{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}
