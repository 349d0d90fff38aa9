// Package database owns the single storage handle and the one-time schema
// creation. SQLite over a local file is the default engine; the driver switch
// exists so deployments can point the same code at Postgres.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database for the configured driver and pins the pool to a
// single connection, so every storage call serializes on one handle. Callers
// pass the returned *gorm.DB down explicitly; there is no package-level
// singleton.
func Connect(driver, dsn string) (*gorm.DB, error) {
	dialector, err := buildDialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection: %w", err)
	}

	// Single-writer, serialized-per-call access model.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres)", driver)
	}
}

const (
	sqliteProdutosDDL = `
		CREATE TABLE IF NOT EXISTS produtos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nome TEXT NOT NULL,
			preco REAL NOT NULL,
			estoque INTEGER NOT NULL DEFAULT 0,
			data_criacao DATETIME DEFAULT CURRENT_TIMESTAMP
		)`

	sqliteClientesDDL = `
		CREATE TABLE IF NOT EXISTS clientes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nome TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			data_criacao DATETIME DEFAULT CURRENT_TIMESTAMP
		)`

	postgresProdutosDDL = `
		CREATE TABLE IF NOT EXISTS produtos (
			id BIGSERIAL PRIMARY KEY,
			nome TEXT NOT NULL,
			preco DOUBLE PRECISION NOT NULL,
			estoque INTEGER NOT NULL DEFAULT 0,
			data_criacao TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`

	postgresClientesDDL = `
		CREATE TABLE IF NOT EXISTS clientes (
			id BIGSERIAL PRIMARY KEY,
			nome TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			data_criacao TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`
)

// Initialize creates the produtos and clientes tables if they do not exist.
// Safe to call on every startup.
func Initialize(db *gorm.DB, driver string) error {
	var ddls []string
	switch driver {
	case "sqlite":
		ddls = []string{sqliteProdutosDDL, sqliteClientesDDL}
	case "postgres":
		ddls = []string{postgresProdutosDDL, postgresClientesDDL}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	for _, ddl := range ddls {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
