package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/codehook/dashboard/internal/logger"
	"github.com/codehook/dashboard/internal/seed"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the dashboard tables without inserting data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pg, err := openPostgres(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		defer pg.Close()

		if err := seed.New(pg, logger.Log, seed.Options{}).EnsureSchema(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Migration complete")
		return nil
	},
}
