package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"carmarket/pkg/config"
	"carmarket/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg     *config.Config
	rootCmd = &cobra.Command{
		Use:   "seed",
		Short: "Load the carmarket catalog into postgres",
		Long: `seed applies the database schema and imports listings from JSON files.

Files already imported with the same content are skipped unless --force is given.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); defaults to LOG_LEVEL")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(importCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = cfg.Logger.Level
	}
	if err := logger.Init(level, "console"); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	logger.Get().Debug("Configuration loaded", zap.String("database", cfg.Database.DBName))
	return nil
}
