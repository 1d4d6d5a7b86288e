package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/codehook/dashboard/internal/config"
	"github.com/codehook/dashboard/internal/db"
	"github.com/codehook/dashboard/internal/logger"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	rootCmd = &cobra.Command{
		Use:   "codehook-dashboard",
		Short: "Codehook admin dashboard and database seeder",
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file (optional)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// setup loads config and initializes the global logger.
func setup() (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Encoding); err != nil {
		return config.Config{}, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	pg, err := db.NewPostgresConnection(ctx, cfg.DSN, db.PostgresOpts{
		Driver:          cfg.Driver,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		PingTimeout:     cfg.PingTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return pg, nil
}
