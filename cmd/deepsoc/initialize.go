package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/deepsoc/deepsoc/pkg/config"
	"github.com/deepsoc/deepsoc/pkg/database"
	"github.com/deepsoc/deepsoc/pkg/prompts"
	"github.com/deepsoc/deepsoc/pkg/services"
)

// initCmd prepares a fresh database: migrations, the bootstrap admin
// account, the default role prompts, and the driving mode setting.
// Safe to run repeatedly; existing rows are left alone.
func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Apply migrations and seed the admin account and default prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext(context.Background())
			defer stop()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			dbCfg, err := database.LoadConfigFromEnv()
			if err != nil {
				return fmt.Errorf("loading database configuration: %w", err)
			}

			// NewClient applies pending migrations before returning.
			db, err := database.NewClient(ctx, dbCfg)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer func() { _ = db.Close() }()
			slog.Info("Migrations applied", "database", dbCfg.Database)

			users := services.NewUserService(db.Client)
			created, err := users.EnsureAdmin(ctx, cfg.Auth)
			if err != nil {
				return fmt.Errorf("seeding admin account: %w", err)
			}
			if created {
				slog.Info("Admin account created", "username", cfg.Auth.AdminUsername)
			} else {
				slog.Info("Admin account already present", "username", cfg.Auth.AdminUsername)
			}

			seeded, err := prompts.NewStore(db.Client).Seed(ctx)
			if err != nil {
				return fmt.Errorf("seeding prompts: %w", err)
			}
			slog.Info("Prompts seeded", "created", seeded)

			settings := services.NewSettingService(db.Client)
			mode, err := settings.GetDrivingMode(ctx)
			if err != nil {
				return fmt.Errorf("reading driving mode: %w", err)
			}
			if err := settings.SetDrivingMode(ctx, mode); err != nil {
				return fmt.Errorf("seeding driving mode: %w", err)
			}
			slog.Info("Driving mode set", "mode", mode)

			slog.Info("Initialization complete")
			return nil
		},
	}
}
