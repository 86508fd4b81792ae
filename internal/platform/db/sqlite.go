package db

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

const sqliteConnOpts = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

// OpenSQLite opens a file-backed database through the pure Go driver. All
// access goes through one connection, which serializes writers the way the
// row locks do on postgres.
func OpenSQLite(path string) (*Database, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?%s", path, sqliteConnOpts)), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open gorm sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("resolve sqlite sql db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &Database{DB: db}, nil
}
