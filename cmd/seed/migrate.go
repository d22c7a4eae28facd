package main

import (
	"carmarket/internal/repository"
	"carmarket/pkg/logger"
	"carmarket/pkg/postgres"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the listings and leads tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := logger.Get()

			db, err := postgres.NewPool(ctx, &cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := repository.Migrate(ctx, db); err != nil {
				return err
			}
			log.Info("Schema applied")
			return nil
		},
	}
}
