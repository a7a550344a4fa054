package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// ErrUnsupportedDriver is returned by Open for drivers other than sqlite and postgres.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Models lists every entity managed by auto-migration.
var Models = []any{
	&entities.User{},
	&entities.Book{},
	&entities.ReadingList{},
	&entities.AuditEvent{},
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (or creates) a SQLite database at dbPath and migrates it.
func NewDatabase(dbPath string) (*Database, error) {
	return Open(config.Database{
		Driver:   config.DriverSQLite,
		Path:     dbPath,
		LogLevel: "silent",
	})
}

// Open connects using the configured driver and migrates all entities.
func Open(cfg config.Database) (*Database, error) {
	dialector, target, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully (%s at %s)", cfg.Driver, target)

	return &Database{DB: db}, nil
}

func dialectorFor(cfg config.Database) (gorm.Dialector, string, error) {
	switch cfg.Driver {
	case "", config.DriverSQLite:
		return sqlite.Open(sqliteDSN(cfg.Path)), cfg.Path, nil
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, "", errors.New("DATABASE_DSN is required for the postgres driver")
		}
		// The DSN may carry a password, so it is never logged.
		return postgres.Open(cfg.DSN), "postgres", nil
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// sqliteDSN enables WAL and a busy timeout so request writes and background
// audit writes can share one file.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_journal=WAL&_busy_timeout=5000"
}

func parseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// Ping verifies the underlying connection is alive.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
