package config

import (
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"food-delivery-analytics/database"
	"food-delivery-analytics/models"
)

var DB *gorm.DB

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DSN returns the sqlite datasource with referential integrity enabled for
// every connection in the pool.
func DSN() string {
	return getEnv("DB_PATH", "food_delivery_analytics.db") + "?_pragma=foreign_keys(1)"
}

// InitDB opens the database, migrates the schema and installs constraints.
// The handle is also stored in the package-level DB.
func InitDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	DB = db
	return db, nil
}

// Migrate creates or updates all eleven tables and their constraints.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return err
	}
	return database.EnsureConstraints(db)
}
