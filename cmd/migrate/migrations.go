package main

import (
	"gorm.io/gorm"

	"github.com/routeburn/product-flow/internal/models"
)

// registerModels returns all models that need migration
func registerModels() []interface{} {
	return []interface{}{
		// Tenancy
		&models.Portfolio{},
		&models.Studio{},
		&models.StudioUser{},

		// Ideas & Knowledge Base
		&models.Idea{},
		&models.KBDocument{},
	}
}

// runMigrations executes all database migrations
func runMigrations(db *gorm.DB) error {
	models := registerModels()

	if err := db.AutoMigrate(models...); err != nil {
		return err
	}

	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		enableUUIDExtension,
		addIdeaScopeIndex,
		addStudioUserEmailIndex,
	}

	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}

	return nil
}

// enableUUIDExtension ensures UUID generation is available
func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

// addIdeaScopeIndex backs the backlog listing, which always queries by
// product code.
func addIdeaScopeIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_ideas_product_number
		ON ideas(product_code, idea_number)
	`).Error
}

// addStudioUserEmailIndex backs the login lookup, which is case-insensitive.
func addStudioUserEmailIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_studio_users_email
		ON studio_users(lower(email))
	`).Error
}
