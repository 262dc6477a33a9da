package memory

import (
	"context"
	"sync"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// Broker delivers change events to listeners of the same process.
type Broker struct {
	mu        sync.RWMutex
	listeners map[int]func(domain.Change)
	nextID    int
}

// NewBroker creates a broker with no listeners.
func NewBroker() *Broker {
	return &Broker{listeners: make(map[int]func(domain.Change))}
}

// Publish calls every listener synchronously.
func (b *Broker) Publish(_ context.Context, c domain.Change) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, fn := range b.listeners {
		fn(c)
	}
	return nil
}

// Listen registers fn and blocks until ctx is done.
func (b *Broker) Listen(ctx context.Context, fn func(domain.Change)) error {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	<-ctx.Done()

	b.mu.Lock()
	delete(b.listeners, id)
	b.mu.Unlock()
	return nil
}

// Listeners returns the number of registered listeners.
func (b *Broker) Listeners() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}
