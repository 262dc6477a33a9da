// Package memory provides process-local adapters: a guest-mode record store
// partitioned by session and a single-process change broker. Nothing here
// survives a restart.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// Store keeps records of type T per partition key, in insertion order.
type Store[T any] struct {
	mu     sync.RWMutex
	parts  map[uuid.UUID]*partition[T]
	idOf   func(T) uuid.UUID
	entity string
	now    func() time.Time
}

type partition[T any] struct {
	rows     []T
	lastSeen time.Time
}

// NewStore creates an empty store. idOf extracts the record key; entity names
// the record type in errors.
func NewStore[T any](entity string, idOf func(T) uuid.UUID) *Store[T] {
	return &Store[T]{
		parts:  make(map[uuid.UUID]*partition[T]),
		idOf:   idOf,
		entity: entity,
		now:    time.Now,
	}
}

// List returns a copy of the partition's records in insertion order.
func (s *Store[T]) List(key uuid.UUID) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.touch(key)
	out := make([]T, len(p.rows))
	copy(out, p.rows)
	return out
}

// Get returns one record.
func (s *Store[T]) Get(key, id uuid.UUID) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.touch(key)
	if i := s.index(p, id); i >= 0 {
		return p.rows[i], nil
	}
	var zero T
	return zero, fmt.Errorf("%s %s: %w", s.entity, id, domain.ErrNotFound)
}

// Insert appends a record. Returns domain.ErrAlreadyExists on a duplicate key.
func (s *Store[T]) Insert(key uuid.UUID, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.touch(key)
	if s.index(p, s.idOf(v)) >= 0 {
		return fmt.Errorf("%s %s: %w", s.entity, s.idOf(v), domain.ErrAlreadyExists)
	}
	p.rows = append(p.rows, v)
	return nil
}

// Modify applies fn to the stored record in place and returns the result.
func (s *Store[T]) Modify(key, id uuid.UUID, fn func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.touch(key)
	i := s.index(p, id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%s %s: %w", s.entity, id, domain.ErrNotFound)
	}
	p.rows[i] = fn(p.rows[i])
	return p.rows[i], nil
}

// Delete removes a record.
func (s *Store[T]) Delete(key, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.touch(key)
	i := s.index(p, id)
	if i < 0 {
		return fmt.Errorf("%s %s: %w", s.entity, id, domain.ErrNotFound)
	}
	p.rows = append(p.rows[:i], p.rows[i+1:]...)
	return nil
}

// Sweep drops partitions untouched for longer than idle and returns how
// many were dropped.
func (s *Store[T]) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	dropped := 0
	for key, p := range s.parts {
		if p.lastSeen.Before(cutoff) {
			delete(s.parts, key)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of live partitions.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.parts)
}

// touch must be called with mu held.
func (s *Store[T]) touch(key uuid.UUID) *partition[T] {
	p, ok := s.parts[key]
	if !ok {
		p = &partition[T]{}
		s.parts[key] = p
	}
	p.lastSeen = s.now()
	return p
}

func (s *Store[T]) index(p *partition[T], id uuid.UUID) int {
	for i, row := range p.rows {
		if s.idOf(row) == id {
			return i
		}
	}
	return -1
}
