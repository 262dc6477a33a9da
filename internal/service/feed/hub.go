// Package feed keeps live subscribers in sync with owner-scoped collections.
// Every subscriber receives the full ordered list on subscribe and again
// after every change to the collection it watches.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/metrics"
)

// changeSource delivers change events until ctx is done.
type changeSource interface {
	Listen(ctx context.Context, fn func(domain.Change)) error
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notice)
}

// LoadFunc reads the full ordered content of one collection for an owner.
type LoadFunc func(ctx context.Context, ownerID uuid.UUID) (any, error)

// Loaders maps each subscribable collection to its reader.
type Loaders map[domain.Collection]LoadFunc

type subKey struct {
	owner      uuid.UUID
	collection domain.Collection
}

// Hub fans change events out to subscriptions.
type Hub struct {
	loaders  Loaders
	notices  notifier
	coalesce time.Duration
	now      func() time.Time
	log      *slog.Logger

	mu   sync.Mutex
	subs map[subKey]map[*Subscription]struct{}
}

// NewHub creates a hub. coalesce is how long a subscription waits after a
// change for more changes before reloading.
func NewHub(log *slog.Logger, loaders Loaders, notices notifier, coalesce time.Duration) *Hub {
	return &Hub{
		loaders:  loaders,
		notices:  notices,
		coalesce: coalesce,
		now:      time.Now,
		log:      log.With("service", "feed"),
		subs:     make(map[subKey]map[*Subscription]struct{}),
	}
}

// Run dispatches events from src until ctx is done.
func (h *Hub) Run(ctx context.Context, src changeSource) error {
	h.log.InfoContext(ctx, "feed hub started")
	err := src.Listen(ctx, h.Dispatch)
	h.log.InfoContext(ctx, "feed hub stopped")
	return err
}

// Dispatch wakes every subscription watching the changed collection.
func (h *Hub) Dispatch(c domain.Change) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs[subKey{owner: c.OwnerID, collection: c.Collection}] {
		sub.wake()
	}
}

// Subscribe starts streaming snapshots of (ownerID, collection) to
// onSnapshot. The first snapshot is loaded immediately. onSnapshot is called
// from the subscription's own goroutine, one call at a time. The
// subscription ends when ctx is done or Close is called.
func (h *Hub) Subscribe(
	ctx context.Context,
	ownerID uuid.UUID,
	collection domain.Collection,
	onSnapshot func(domain.Snapshot),
) (*Subscription, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	load, ok := h.loaders[collection]
	if !ok {
		return nil, domain.NewValidationError("collection", fmt.Sprintf("unknown collection %q", collection))
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		hub:        h,
		key:        subKey{owner: ownerID, collection: collection},
		load:       load,
		onSnapshot: onSnapshot,
		signal:     make(chan struct{}, 1),
		done:       make(chan struct{}),
		cancel:     cancel,
	}

	h.mu.Lock()
	set, ok := h.subs[sub.key]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[sub.key] = set
	}
	set[sub] = struct{}{}
	h.mu.Unlock()

	metrics.FeedSubscriptions.Inc()
	sub.signal <- struct{}{}
	go sub.run(subCtx)

	h.log.DebugContext(ctx, "subscribed",
		slog.String("owner_id", ownerID.String()),
		slog.String("collection", string(collection)),
	)
	return sub, nil
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, set := range h.subs {
		n += len(set)
	}
	return n
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.subs[sub.key]
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.key)
	}
}
