package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/metrics"
)

// Subscription is one live stream of snapshots.
type Subscription struct {
	hub        *Hub
	key        subKey
	load       LoadFunc
	onSnapshot func(domain.Snapshot)

	// signal holds at most one pending reload, so bursts of changes
	// collapse into one.
	signal chan struct{}
	done   chan struct{}
	cancel context.CancelFunc
	once   sync.Once
}

// Collection returns the watched collection.
func (s *Subscription) Collection() domain.Collection { return s.key.collection }

// Done is closed once the subscription has stopped delivering.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// Close stops the subscription. It is safe to call more than once and from
// any goroutine. No snapshot is delivered after Close returns and the
// subscription goroutine has observed it.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.cancel()
		s.hub.remove(s)
		metrics.FeedSubscriptions.Dec()
	})
}

func (s *Subscription) wake() {
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *Subscription) run(ctx context.Context) {
	defer close(s.done)
	defer s.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.signal:
		}

		if s.hub.coalesce > 0 {
			t := time.NewTimer(s.hub.coalesce)
			select {
			case <-ctx.Done():
				t.Stop()
				return
			case <-t.C:
			}
		}

		s.reload(ctx)
	}
}

// reload delivers a fresh snapshot. A failed load delivers nothing, so the
// subscriber keeps its last list, and sends an error notice instead.
func (s *Subscription) reload(ctx context.Context) {
	items, err := s.load(ctx, s.key.owner)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return
		}
		s.hub.log.WarnContext(ctx, "snapshot load failed",
			slog.String("owner_id", s.key.owner.String()),
			slog.String("collection", string(s.key.collection)),
			slog.String("error", err.Error()),
		)
		s.hub.notices.Notify(ctx, domain.ErrorNotice(s.key.owner, "Live update failed", err.Error()))
		return
	}
	if ctx.Err() != nil {
		return
	}

	metrics.FeedSnapshots.WithLabelValues(string(s.key.collection)).Inc()
	s.onSnapshot(domain.Snapshot{
		Collection: s.key.collection,
		OwnerID:    s.key.owner,
		Items:      items,
		At:         s.hub.now().UTC(),
	})
}
