package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// Broker carries change events over Redis Pub/Sub.
type Broker struct {
	client  *goredis.Client
	channel string
	log     *slog.Logger
}

// NewBroker creates a broker on the given Pub/Sub channel.
func NewBroker(log *slog.Logger, client *goredis.Client, channel string) *Broker {
	return &Broker{
		client:  client,
		channel: channel,
		log:     log.With("component", "redis_broker"),
	}
}

// Publish sends the change to every subscribed instance.
func (b *Broker) Publish(ctx context.Context, c domain.Change) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish change: %w", err)
	}
	return nil
}

// Listen delivers every change to fn until ctx ends. go-redis reconnects the
// subscription on its own.
func (b *Broker) Listen(ctx context.Context, fn func(domain.Change)) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("subscribe %s: %w", b.channel, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var c domain.Change
			if err := json.Unmarshal([]byte(msg.Payload), &c); err != nil || !c.Collection.IsValid() {
				b.log.Warn("drop malformed change", slog.String("payload", msg.Payload))
				continue
			}
			fn(c)
		}
	}
}
