package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"portfolioAPI/internal/config"
	"portfolioAPI/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "portfolio-api",
	Short:         "Portfolio and blog backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadConfig is shared by every command.
func loadConfig() (*config.Config, error) {
	cfg := config.LoadConfig()
	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is not set")
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.New("error").Error("command failed", "err", err)
		stop()
		os.Exit(1)
	}
}
