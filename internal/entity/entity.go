// Package entity persists sampling sessions and saved crops.
package entity

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"

	"github.com/faceset/faceset/internal/event"
)

var log = event.Log

var db *gorm.DB

// Db returns the database connection, or nil if none was initialized.
func Db() *gorm.DB {
	return db
}

// HasDb reports whether a database connection was initialized.
func HasDb() bool {
	return db != nil
}

// InitDb opens the database connection and migrates the schema.
func InitDb(driver, dsn string) error {
	conn, err := gorm.Open(driver, dsn)

	if err != nil {
		return fmt.Errorf("entity: %s", err)
	}

	conn.LogMode(false)

	db = conn

	return MigrateDb()
}

// MigrateDb creates or updates the database tables.
func MigrateDb() error {
	if db == nil {
		return fmt.Errorf("entity: no database connection")
	}

	return db.AutoMigrate(
		&Session{},
		&CropFile{},
	).Error
}

// CloseDb closes the database connection.
func CloseDb() error {
	if db == nil {
		return nil
	}

	err := db.Close()
	db = nil

	return err
}
