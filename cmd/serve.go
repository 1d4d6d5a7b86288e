package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codehook/dashboard/internal/cache"
	"github.com/codehook/dashboard/internal/db"
	httpSrv "github.com/codehook/dashboard/internal/http"
	"github.com/codehook/dashboard/internal/logger"
	"github.com/codehook/dashboard/internal/metrics"
	"github.com/codehook/dashboard/internal/repository"
	"github.com/codehook/dashboard/internal/service/dashboard"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP server",
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

		var cardCache cache.CardCache
		redisClient, err := db.NewRedisClient(ctx, db.RedisOpts{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
		})
		if err != nil {
			return fmt.Errorf("redis connect: %w", err)
		}
		if redisClient != nil {
			defer func() { _ = redisClient.Close() }()
			cardCache = cache.NewGuardedCardCache(cache.NewRedisCardCache(redisClient, ""), cache.NewBreaker(0, 0))
		}

		metrics.MustRegister(prometheus.DefaultRegisterer)

		svc := dashboard.New(repository.NewDashboardRepository(pg), cardCache, logger.Log, dashboard.Options{
			CardsCacheTTL: cfg.Dashboard.CardsCacheTTL,
			LatestEvents:  cfg.Dashboard.LatestEvents,
		})
		server := httpSrv.NewServer(cfg, svc, logger.Log)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start(cfg.HTTP.Addr)
		}()

		select {
		case <-ctx.Done():
			logger.Log.Info("signal received, shutting down")
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
		}

		timeout := cfg.HTTP.ShutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Warn("http shutdown", zap.Error(err))
		}
		return nil
	},
}
