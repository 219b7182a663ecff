package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"portfolioAPI/cmd/app"
	"portfolioAPI/internal/database"
	"portfolioAPI/internal/logger"
)

var (
	serveMigrate bool
	serveSeed    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := logger.New(cfg.LogLevel)
		ctx := cmd.Context()

		if serveMigrate {
			if err := database.MigrateUp(cfg.DB, log); err != nil {
				return err
			}
		}

		a, err := app.New(ctx, cfg, log, true)
		if err != nil {
			return err
		}
		defer a.Close()

		if serveSeed {
			if err := a.Seeder.Run(ctx); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}

		srv := a.Server()
		errCh := make(chan error, 1)
		go func() {
			log.Info("server listening", slog.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "apply pending migrations before starting")
	serveCmd.Flags().BoolVar(&serveSeed, "seed", true, "create the admin user and import static content on start")
	rootCmd.AddCommand(serveCmd)
}
