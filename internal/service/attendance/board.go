package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/pkg/ctxutil"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ListForDay returns one record per staff member of the signed-in owner for
// day, in staff join order. Staff without a stored record get a not-started
// placeholder that is not persisted. A zero day means today.
func (s *Service) ListForDay(ctx context.Context, day domain.Date) ([]domain.AttendanceRecord, error) {
	owner, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if day.IsZero() {
		day, _ = s.clock()
	}

	members, err := s.staff.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	if len(members) == 0 {
		return []domain.AttendanceRecord{}, nil
	}

	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = domain.AttendanceKey(m.EmployeeID, day)
	}

	loader := newRecordLoader(s.records, owner)
	found, errs := loader.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("load attendance: %w", err)
		}
	}

	out := make([]domain.AttendanceRecord, len(members))
	for i, m := range members {
		if found[i] != nil {
			out[i] = *found[i]
			continue
		}
		out[i] = domain.NewAttendanceRecord(m, day)
	}
	return out, nil
}

// ListRange returns the owner's stored records between two days, newest
// first.
func (s *Service) ListRange(ctx context.Context, input RangeInput) ([]domain.AttendanceRecord, error) {
	owner, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	recs, err := s.records.ListRange(ctx, owner, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("list attendance range: %w", err)
	}
	return recs, nil
}

// newRecordLoader batches record reads for one owner into GetByIDs calls.
// A missing record resolves to nil.
func newRecordLoader(store recordStore, owner uuid.UUID) *dataloader.Loader[string, *domain.AttendanceRecord] {
	batchFn := func(ctx context.Context, keys []string) []*dataloader.Result[*domain.AttendanceRecord] {
		results := make([]*dataloader.Result[*domain.AttendanceRecord], len(keys))

		recs, err := store.GetByIDs(ctx, owner, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.AttendanceRecord]{Error: err}
			}
			return results
		}

		byID := make(map[string]*domain.AttendanceRecord, len(recs))
		for i := range recs {
			byID[recs[i].ID] = &recs[i]
		}
		for i, k := range keys {
			results[i] = &dataloader.Result[*domain.AttendanceRecord]{Data: byID[k]}
		}
		return results
	}

	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, *domain.AttendanceRecord](wait),
		dataloader.WithBatchCapacity[string, *domain.AttendanceRecord](maxBatch),
		dataloader.WithCache[string, *domain.AttendanceRecord](&dataloader.NoCache[string, *domain.AttendanceRecord]{}),
	)
}
