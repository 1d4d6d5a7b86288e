package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codehook/dashboard/internal/logger"
	"github.com/codehook/dashboard/internal/metrics"
	"github.com/codehook/dashboard/internal/placeholder"
	"github.com/codehook/dashboard/internal/seed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the dashboard tables and insert placeholder data (idempotent)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		data := placeholder.Default()
		if cfg.Seed.DataFile != "" {
			if data, err = placeholder.Load(cfg.Seed.DataFile); err != nil {
				return err
			}
		}

		pg, err := openPostgres(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		defer pg.Close()

		logger.Log.Info("seeding database", zap.Int("rows", data.Len()))

		rep, err := seed.New(pg, logger.Log, seed.Options{
			MaxInFlight: cfg.Seed.MaxInFlight,
			BcryptCost:  cfg.Seed.BcryptCost,
		}).Run(ctx, data)
		if url := cfg.Seed.Pushgateway; url != "" {
			pushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if perr := metrics.PushSeed(pushCtx, url); perr != nil {
				logger.Log.Warn("push seed metrics", zap.String("url", url), zap.Error(perr))
			}
			cancel()
		}
		for _, t := range rep.Tables {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %3d rows, %3d inserted\n", t.Table, t.Rows, t.Inserted)
		}
		if err != nil {
			return fmt.Errorf("seed database: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Database seeded successfully (%d of %d rows inserted)\n", rep.Inserted(), rep.Rows())
		return nil
	},
}
