// Package postgres holds the gorm adapters of the label service and the
// schema they share.
package postgres

import (
	"fmt"

	"parcellabel/internal/adapters/out/postgres/orderrepo"
	"parcellabel/internal/adapters/out/postgres/settingsrepo"
	"parcellabel/internal/adapters/out/postgres/submissionrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN builds a libpq keyword/value connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)
}

// Open connects gorm to dsn.
func Open(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	if cfg == nil {
		cfg = &gorm.Config{}
	}
	return gorm.Open(gormpostgres.Open(dsn), cfg)
}

// Migrate creates or updates every table the adapters use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&settingsrepo.SettingDTO{},
		&submissionrepo.SubmissionDTO{},
	)
}
