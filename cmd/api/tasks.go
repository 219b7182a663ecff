package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"portfolioAPI/cmd/app"
	"portfolioAPI/internal/database"
	"portfolioAPI/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return database.MigrateUp(cfg.DB, logger.New(cfg.LogLevel))
	},
}

var downSteps int

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return database.MigrateDown(cfg.DB, downSteps, logger.New(cfg.LogLevel))
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin user and import static content into empty tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		a, err := app.New(cmd.Context(), cfg, logger.New(cfg.LogLevel), false)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Seeder.Run(cmd.Context())
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep-tokens",
	Short: "Delete expired refresh tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := logger.New(cfg.LogLevel)

		a, err := app.New(cmd.Context(), cfg, log, false)
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := a.Services.Auth.SweepExpiredTokens(cmd.Context())
		if err != nil {
			return err
		}
		log.Info("sweep finished", slog.Int64("deleted", n))
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 1, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd, seedCmd, sweepCmd)
}
