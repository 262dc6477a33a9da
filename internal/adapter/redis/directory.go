package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

const directoryKeyPrefix = "platrr:employee:"

type employeeSource interface {
	FindGlobalByEmployeeID(ctx context.Context, employeeID string) (domain.StaffMember, error)
}

// Directory caches global employee ID lookups in front of the staff store.
// Only hits are cached, so a newly added employee can clock in immediately.
// Employee IDs are unique across accounts in the store and deletes call
// Invalidate, so a cached hit never names a different owner. Redis failures
// fall through to the source.
type Directory struct {
	source employeeSource
	client *goredis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewDirectory wraps source with a Redis cache of the given TTL.
func NewDirectory(log *slog.Logger, source employeeSource, client *goredis.Client, ttl time.Duration) *Directory {
	return &Directory{
		source: source,
		client: client,
		ttl:    ttl,
		log:    log.With("component", "employee_directory"),
	}
}

// FindGlobalByEmployeeID returns the cached member or loads it from source.
func (d *Directory) FindGlobalByEmployeeID(ctx context.Context, employeeID string) (domain.StaffMember, error) {
	key := directoryKeyPrefix + employeeID

	data, err := d.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var e entry
		if err := json.Unmarshal(data, &e); err == nil {
			e.Member.OwnerID = e.OwnerID
			return e.Member, nil
		}
		d.log.Warn("drop unreadable cache entry", slog.String("key", key))
	case errors.Is(err, goredis.Nil):
	default:
		d.log.Warn("redis get failed, using store", slog.String("error", err.Error()))
	}

	m, err := d.source.FindGlobalByEmployeeID(ctx, employeeID)
	if err != nil {
		return domain.StaffMember{}, err
	}

	data, err = json.Marshal(entry{Member: m, OwnerID: m.OwnerID})
	if err == nil {
		if err := d.client.Set(ctx, key, data, d.ttl).Err(); err != nil {
			d.log.Warn("redis set failed", slog.String("error", err.Error()))
		}
	}
	return m, nil
}

// Invalidate drops the cached entry of an employee ID.
func (d *Directory) Invalidate(ctx context.Context, employeeID string) {
	if err := d.client.Del(ctx, directoryKeyPrefix+employeeID).Err(); err != nil {
		d.log.Warn("redis del failed", slog.String("error", err.Error()))
	}
}

// entry carries the owner ID, which domain.StaffMember omits from JSON.
type entry struct {
	Member  domain.StaffMember `json:"member"`
	OwnerID uuid.UUID          `json:"ownerId"`
}
