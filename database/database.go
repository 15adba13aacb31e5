package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"paydesk/config"
	"paydesk/models"
)

// Connect establishes a connection to PostgreSQL using the configured
// connection string and runs the schema migrations. The returned handle is
// shared by every request handler; Postgres serializes concurrent row
// updates, so no locking happens above it.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) error {
	log.Println("Running Migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.TransactionQueue{},
	); err != nil {
		return err
	}

	log.Println("Migrations completed successfully.")
	return nil
}
