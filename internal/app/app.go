package app

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres"
	redisadapter "github.com/AFTLlimited25/Platrr-Business/internal/adapter/redis"
	"github.com/AFTLlimited25/Platrr-Business/internal/config"
)

// Run is the API entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), wires the services and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("broker", cfg.Realtime.Broker),
		slog.Bool("redis", cfg.Redis.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, ServiceName)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	var rdb *goredis.Client
	if cfg.Redis.Enabled() {
		rdb, err = redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rdb.Close()
	}

	srv, err := newServer(logger, cfg, pool, rdb)
	if err != nil {
		return err
	}
	return srv.serve(ctx)
}
