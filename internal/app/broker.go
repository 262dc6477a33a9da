package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/memory"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/changefeed"
	redisadapter "github.com/AFTLlimited25/Platrr-Business/internal/adapter/redis"
	"github.com/AFTLlimited25/Platrr-Business/internal/config"
	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// changeBroker carries change events between instances.
type changeBroker interface {
	Publish(ctx context.Context, c domain.Change) error
	Listen(ctx context.Context, fn func(domain.Change)) error
}

// newBroker picks the change transport named by cfg.Broker. The memory
// broker only reaches subscribers of this process.
func newBroker(log *slog.Logger, cfg config.RealtimeConfig, pool *pgxpool.Pool, rdb *goredis.Client) (changeBroker, error) {
	switch strings.ToLower(cfg.Broker) {
	case "postgres":
		if pool == nil {
			return nil, fmt.Errorf("postgres broker: no database pool")
		}
		return changefeed.New(log, pool, pool, cfg.Channel), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("redis broker: redis.addr is not set")
		}
		return redisadapter.NewBroker(log, rdb, cfg.Channel), nil
	case "memory":
		return memory.NewBroker(), nil
	default:
		return nil, fmt.Errorf("unknown realtime broker %q", cfg.Broker)
	}
}
