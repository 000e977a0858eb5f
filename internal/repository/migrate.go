package repository

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite3 "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/studentdesk/studentdesk-go/internal/config"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrator applies the embedded schema for one driver. It takes ownership of
// the *sql.DB it is given: Up and Down close it when they return.
type Migrator struct {
	migrate *migrate.Migrate
}

func NewMigrator(db *sql.DB, driver string) (*Migrator, error) {
	src, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations for %s: %w", driver, err)
	}

	var target database.Driver
	switch driver {
	case DriverMySQL:
		target, err = migratemysql.WithInstance(db, &migratemysql.Config{})
	case DriverSQLite3:
		target, err = migratesqlite3.WithInstance(db, &migratesqlite3.Config{})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}

	return &Migrator{migrate: m}, nil
}

func (m *Migrator) Up() error {
	defer func() { _, _ = m.migrate.Close() }()
	if err := m.migrate.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (m *Migrator) Down() error {
	defer func() { _, _ = m.migrate.Close() }()
	if err := m.migrate.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to rollback migrations: %w", err)
	}
	return nil
}

// RunMigrations opens a dedicated connection, migrates in the given
// direction ("up" or "down") and closes it.
func RunMigrations(cfg config.DatabaseConfig, direction string) error {
	if direction != "up" && direction != "down" {
		return fmt.Errorf("unknown migration direction %q", direction)
	}

	db, err := open(cfg.Driver, cfg.DSN)
	if err != nil {
		return err
	}

	m, err := NewMigrator(db, cfg.Driver)
	if err != nil {
		db.Close()
		return err
	}

	if direction == "down" {
		return m.Down()
	}
	return m.Up()
}
