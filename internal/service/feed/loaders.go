package feed

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// ActivityLimit caps the activity feed snapshot.
const ActivityLimit = 50

type inventoryLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.InventoryItem, error)
}

type staffLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.StaffMember, error)
}

type attendanceLister interface {
	ListRange(ctx context.Context, ownerID uuid.UUID, from, to domain.Date) ([]domain.AttendanceRecord, error)
}

type activityLister interface {
	ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.Activity, error)
}

type shiftLister interface {
	List(ctx context.Context, ownerID uuid.UUID, from domain.Date, limit int) ([]domain.Shift, error)
}

type orderLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error)
}

// Sources are the readers behind each collection. Nil readers leave their
// collection unsubscribable.
type Sources struct {
	Inventory  inventoryLister
	Staff      staffLister
	Attendance attendanceLister
	Activity   activityLister
	Shifts     shiftLister
	Orders     orderLister
	// Location decides "today" for inventory status and the attendance window.
	Location *time.Location
	// AttendanceDays bounds the attendance snapshot to the most recent days,
	// today included. Values below one mean today only.
	AttendanceDays int
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewLoaders builds the per-collection readers. Each one re-applies the
// collection's ordering so that snapshots do not depend on store order.
func NewLoaders(src Sources) Loaders {
	loc := src.Location
	if loc == nil {
		loc = time.UTC
	}
	now := src.Now
	if now == nil {
		now = time.Now
	}
	today := func() domain.Date { return domain.DateOf(now().In(loc)) }
	attendanceDays := max(src.AttendanceDays, 1)

	l := Loaders{}

	if src.Inventory != nil {
		l[domain.CollectionInventory] = func(ctx context.Context, owner uuid.UUID) (any, error) {
			items, err := src.Inventory.List(ctx, owner)
			if err != nil {
				return nil, fmt.Errorf("load inventory: %w", err)
			}
			items = domain.ProjectInventory(items, today())
			slices.SortStableFunc(items, func(a, b domain.InventoryItem) int {
				return b.LastRestocked.Compare(a.LastRestocked)
			})
			return items, nil
		}
	}

	if src.Staff != nil {
		l[domain.CollectionStaff] = func(ctx context.Context, owner uuid.UUID) (any, error) {
			members, err := src.Staff.List(ctx, owner)
			if err != nil {
				return nil, fmt.Errorf("load staff: %w", err)
			}
			slices.SortStableFunc(members, func(a, b domain.StaffMember) int {
				return a.JoinDate.Compare(b.JoinDate)
			})
			return members, nil
		}
	}

	if src.Attendance != nil {
		l[domain.CollectionAttendance] = func(ctx context.Context, owner uuid.UUID) (any, error) {
			to := today()
			recs, err := src.Attendance.ListRange(ctx, owner, to.AddDays(1-attendanceDays), to)
			if err != nil {
				return nil, fmt.Errorf("load attendance: %w", err)
			}
			slices.SortStableFunc(recs, func(a, b domain.AttendanceRecord) int {
				if c := b.Date.Compare(a.Date); c != 0 {
					return c
				}
				return strings.Compare(a.EmployeeID, b.EmployeeID)
			})
			return recs, nil
		}
	}

	if src.Activity != nil {
		l[domain.CollectionActivity] = func(ctx context.Context, owner uuid.UUID) (any, error) {
			acts, err := src.Activity.ListRecent(ctx, owner, ActivityLimit)
			if err != nil {
				return nil, fmt.Errorf("load activity: %w", err)
			}
			slices.SortStableFunc(acts, func(a, b domain.Activity) int {
				return b.OccurredAt.Compare(a.OccurredAt)
			})
			if len(acts) > ActivityLimit {
				acts = acts[:ActivityLimit]
			}
			return acts, nil
		}
	}

	if src.Shifts != nil {
		l[domain.CollectionShifts] = func(ctx context.Context, owner uuid.UUID) (any, error) {
			shifts, err := src.Shifts.List(ctx, owner, domain.Date{}, 0)
			if err != nil {
				return nil, fmt.Errorf("load shifts: %w", err)
			}
			slices.SortStableFunc(shifts, func(a, b domain.Shift) int {
				if c := a.Date.Compare(b.Date); c != 0 {
					return c
				}
				return cmp.Compare(a.Start.Minutes(), b.Start.Minutes())
			})
			return shifts, nil
		}
	}

	if src.Orders != nil {
		l[domain.CollectionOrders] = func(ctx context.Context, owner uuid.UUID) (any, error) {
			orders, err := src.Orders.List(ctx, owner)
			if err != nil {
				return nil, fmt.Errorf("load orders: %w", err)
			}
			slices.SortStableFunc(orders, func(a, b domain.Order) int {
				return b.PlacedAt.Compare(a.PlacedAt)
			})
			return orders, nil
		}
	}

	return l
}
