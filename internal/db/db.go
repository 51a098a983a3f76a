// Package db opens the embedded SQLite store and initializes its schema.
package db

import (
	"fmt"

	"github.com/diewo77/oficina/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the SQLite database described by cfg.
//
// The pool is pinned to a single connection: SQLite allows one writer at a
// time, the foreign_keys pragma is per connection, and a shared in-memory
// database only lives as long as a connection to it stays open.
func Open(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}
	gdb, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger: NewGormLogger(log, logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.Path, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	log.Info("database opened",
		zap.String("path", cfg.Path),
		zap.Bool("in_memory", cfg.InMemory))
	return gdb, nil
}

// OpenAndMigrate opens the store and runs Migrate on it.
func OpenAndMigrate(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	gdb, err := Open(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := Migrate(gdb); err != nil {
		_ = Close(gdb)
		return nil, err
	}
	log.Debug("schema ready")
	return gdb, nil
}

// Close releases the underlying connection.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ForeignKeysEnabled reports whether the current connection enforces
// foreign keys.
func ForeignKeysEnabled(gdb *gorm.DB) (bool, error) {
	var on int
	if err := gdb.Raw("PRAGMA foreign_keys").Scan(&on).Error; err != nil {
		return false, err
	}
	return on == 1, nil
}
