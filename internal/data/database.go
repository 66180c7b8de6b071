package data

import (
	"embed"
	"errors"
	"fmt"
	"go-admin-dashboard/internal/config"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations
var migrationFS embed.FS

const (
	DriverSQLite = "sqlite3"
	DriverMySQL  = "mysql"
)

// NewDB creates a new database connection pool for the configured driver.
func NewDB(cfg config.DBConfig) (*sqlx.DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	if driver != DriverSQLite && driver != DriverMySQL {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	dsn := cfg.DSN
	if driver == DriverMySQL {
		// DATETIME columns scan into time.Time only with parseTime set.
		mc, err := gomysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("invalid mysql dsn: %w", err)
		}
		mc.ParseTime = true
		dsn = mc.FormatDSN()
	}

	// sqlx.Connect opens a connection and pings it to verify it's alive.
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if driver == DriverSQLite {
		// One connection keeps writers serialised and lets ":memory:" databases work.
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// ApplyMigrations runs all up migrations embedded for the connection's driver.
func ApplyMigrations(db *sqlx.DB) error {
	driver := db.DriverName()

	src, err := iofs.New(migrationFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("failed to open migrations for %s: %w", driver, err)
	}

	var target database.Driver
	switch driver {
	case DriverSQLite:
		target, err = sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	case DriverMySQL:
		target, err = mysql.WithInstance(db.DB, &mysql.Config{})
	default:
		err = fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// The migrate instance is not closed: closing it would close the shared *sql.DB.
	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	// Up applies all available up migrations.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
