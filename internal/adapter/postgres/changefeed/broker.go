// Package changefeed carries collection change events between service
// instances over PostgreSQL LISTEN/NOTIFY.
package changefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres"
	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

const (
	minBackoff = 200 * time.Millisecond
	maxBackoff = 10 * time.Second
)

type connAcquirer interface {
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
}

// Broker publishes changes with pg_notify and listens on a dedicated
// connection.
type Broker struct {
	db      postgres.Querier
	pool    connAcquirer
	channel string
	log     *slog.Logger
}

// New creates a broker on the given notification channel.
func New(log *slog.Logger, db postgres.Querier, pool connAcquirer, channel string) *Broker {
	return &Broker{
		db:      db,
		pool:    pool,
		channel: channel,
		log:     log.With("component", "changefeed"),
	}
}

// Publish sends the change. Inside a transaction the notification is
// delivered on commit.
func (b *Broker) Publish(ctx context.Context, c domain.Change) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, b.db).Exec(ctx, `SELECT pg_notify($1, $2)`, b.channel, string(payload)); err != nil {
		return fmt.Errorf("publish change: %w", err)
	}
	return nil
}

// Listen delivers every change to fn until ctx ends. Connection failures are
// retried with exponential backoff.
func (b *Broker) Listen(ctx context.Context, fn func(domain.Change)) error {
	backoff := minBackoff
	for {
		err := b.listenOnce(ctx, fn)
		if ctx.Err() != nil {
			return nil
		}

		b.log.Warn("listen interrupted, reconnecting",
			slog.String("error", err.Error()),
			slog.Duration("backoff", backoff),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *Broker) listenOnce(ctx context.Context, fn func(domain.Change)) error {
	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{b.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen %s: %w", b.channel, err)
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}

		c, err := decode(n.Payload)
		if err != nil {
			b.log.Warn("drop malformed change", slog.String("error", err.Error()))
			continue
		}
		fn(c)
	}
}

func decode(payload string) (domain.Change, error) {
	var c domain.Change
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return domain.Change{}, fmt.Errorf("decode change: %w", err)
	}
	if !c.Collection.IsValid() {
		return domain.Change{}, fmt.Errorf("decode change: unknown collection %q", c.Collection)
	}
	return c, nil
}
