package database

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"portfolioAPI/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func newMigrator(cfg config.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("init migrator: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending migration. An up-to-date schema is not an
// error.
func MigrateUp(cfg config.DB, logger *slog.Logger) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("schema up to date")
			return nil
		}
		return fmt.Errorf("migrate up: %w", err)
	}

	version, _, _ := m.Version()
	logger.Info("migrations applied", slog.Uint64("version", uint64(version)))
	return nil
}

// MigrateDown rolls back the given number of migrations.
func MigrateDown(cfg config.DB, steps int, logger *slog.Logger) error {
	if steps <= 0 {
		return fmt.Errorf("migrate down: steps must be positive")
	}

	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("migrate down: %w", err)
	}

	logger.Info("migrations rolled back", slog.Int("steps", steps))
	return nil
}
