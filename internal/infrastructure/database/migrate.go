package database

import (
	"embed"
	"errors"
	"fmt"

	"hospital-admin/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrator applies the embedded schema migrations.
type Migrator struct {
	m   *migrate.Migrate
	log *logrus.Logger
}

func NewMigrator(cfg config.DBConfig, log *logrus.Logger) (*Migrator, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to init migrator: %w", err)
	}
	m.Log = migrateLogger{log: log}

	return &Migrator{m: m, log: log}, nil
}

// Up applies every pending migration. Nothing to apply is not an error.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	m.logVersion()
	return nil
}

// Down rolls back the given number of migrations.
func (m *Migrator) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("migrate down: steps must be positive, got %d", steps)
	}
	if err := m.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	m.logVersion()
	return nil
}

func (m *Migrator) logVersion() {
	version, dirty, err := m.m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			m.log.Info("Database has no migrations applied")
			return
		}
		m.log.Warnf("Failed to read migration version: %+v", err)
		return
	}
	m.log.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("Database migrated")
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	return errors.Join(srcErr, dbErr)
}

type migrateLogger struct {
	log *logrus.Logger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

func (l migrateLogger) Verbose() bool {
	return l.log.IsLevelEnabled(logrus.DebugLevel)
}
