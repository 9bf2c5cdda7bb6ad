package main

import (
	"fmt"
	"os"

	"hospital-admin/cmd/bootstrap"
	"hospital-admin/config"
	"hospital-admin/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hospital-admin",
		Short:        "Hospital administration API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// load reads the configuration and builds the logger every command shares.
func load() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log := bootstrap.NewLogger(cfg.App.LogLevel)
	log.Info("Configuration loaded successfully")
	return cfg, log, nil
}

func serveCmd() *cobra.Command {
	var migrateFirst bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			if migrateFirst {
				if err := runMigrations(cfg, log, func(m *database.Migrator) error { return m.Up() }); err != nil {
					return err
				}
			}

			// Initialize application with all dependencies
			app, err := bootstrap.New(cfg, log)
			if err != nil {
				log.Errorf("Failed to initialize application: %v", err)
				return err
			}

			return app.Run()
		},
	}
	cmd.Flags().BoolVar(&migrateFirst, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			return runMigrations(cfg, log, func(m *database.Migrator) error { return m.Up() })
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			return runMigrations(cfg, log, func(m *database.Migrator) error { return m.Down(steps) })
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	cmd.AddCommand(down)

	return cmd
}

func runMigrations(cfg *config.Config, log *logrus.Logger, apply func(*database.Migrator) error) error {
	migrator, err := database.NewMigrator(cfg.DB, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Warnf("Failed to close migrator: %+v", err)
		}
	}()

	return apply(migrator)
}
