package app

import (
	"context"
	"log/slog"
	"time"
)

// sweeper is a guest-mode store that can drop idle sessions.
type sweeper interface {
	Sweep(idle time.Duration) int
}

// sweepGuests drops guest data idle for longer than ttl, checking every
// ttl/4 until ctx is done.
func sweepGuests(ctx context.Context, log *slog.Logger, ttl time.Duration, stores ...sweeper) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(ttl / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sweepOnce(ttl, stores); n > 0 {
				log.InfoContext(ctx, "guest sessions swept", slog.Int("partitions", n))
			}
		}
	}
}

func sweepOnce(ttl time.Duration, stores []sweeper) int {
	n := 0
	for _, s := range stores {
		n += s.Sweep(ttl)
	}
	return n
}
