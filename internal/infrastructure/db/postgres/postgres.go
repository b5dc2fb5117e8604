// Package postgres implements the repository ports on GORM/PostgreSQL.
// Repositories return plain domain records; relationships are explicit
// queries issued by the caller, never lazy loads.
package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens a GORM connection. TranslateError is enabled so unique
// violations surface as gorm.ErrDuplicatedKey (the receipt-number allocator
// relies on this).
func Connect(dsn string, verbose bool) (*gorm.DB, error) {
	logMode := gormlogger.Silent
	if verbose {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}),
		&gorm.Config{
			Logger:         gormlogger.Default.LogMode(logMode),
			TranslateError: true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&adminUserRow{},
		&propertyRow{},
		&enquiryRow{},
		&settingRow{},
		&transactionRow{},
		&receiptRow{},
	)
}
