// Package dashboard builds the owner's home-screen summary.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/pkg/ctxutil"
)

type inventoryLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.InventoryItem, error)
}

type staffLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.StaffMember, error)
}

type orderTotaler interface {
	TotalsBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (domain.OrderTotals, error)
}

type activityReader interface {
	ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.Activity, error)
}

type shiftLister interface {
	List(ctx context.Context, ownerID uuid.UUID, from domain.Date, limit int) ([]domain.Shift, error)
}

type settingsReader interface {
	GetSettings(ctx context.Context, accountID uuid.UUID) (domain.AccountSettings, error)
}

const (
	recentActivityLimit = 5
	upcomingShiftsLimit = 3
)

// Summary is the dashboard home-screen figures.
type Summary struct {
	LowStockCount      int               `json:"lowStockCount"`
	TotalRevenue       decimal.Decimal   `json:"totalRevenue"`
	RevenueToday       decimal.Decimal   `json:"revenueToday"`
	OrdersToday        int               `json:"ordersToday"`
	ActiveStaff        int               `json:"activeStaff"`
	RecentActivity     []domain.Activity `json:"recentActivity"`
	UpcomingShifts     []domain.Shift    `json:"upcomingShifts"`
	TrialDaysRemaining int               `json:"trialDaysRemaining"`
}

// Service computes dashboard summaries.
type Service struct {
	inventory inventoryLister
	staff     staffLister
	orders    orderTotaler
	activity  activityReader
	shifts    shiftLister
	settings  settingsReader
	loc       *time.Location
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(
	log *slog.Logger,
	inventory inventoryLister,
	staff staffLister,
	orders orderTotaler,
	activity activityReader,
	shifts shiftLister,
	settings settingsReader,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		inventory: inventory,
		staff:     staff,
		orders:    orders,
		activity:  activity,
		shifts:    shifts,
		settings:  settings,
		loc:       loc,
		now:       time.Now,
		log:       log.With("service", "dashboard"),
	}
}

// Summary loads every figure concurrently. Any failing source fails the
// whole summary.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Summary{}, domain.ErrUnauthorized
	}

	now := s.now().In(s.loc)
	today := domain.DateOf(now)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var (
		out      Summary
		allTime  domain.OrderTotals
		todays   domain.OrderTotals
		settings domain.AccountSettings
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.inventory.List(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("list inventory: %w", err)
		}
		for _, item := range items {
			if item.IsLowStock(today) {
				out.LowStockCount++
			}
		}
		return nil
	})

	g.Go(func() error {
		members, err := s.staff.List(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("list staff: %w", err)
		}
		for _, m := range members {
			if m.IsActive() {
				out.ActiveStaff++
			}
		}
		return nil
	})

	g.Go(func() error {
		var err error
		allTime, err = s.orders.TotalsBetween(gctx, ownerID, time.Time{}, dayEnd)
		if err != nil {
			return fmt.Errorf("total revenue: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		todays, err = s.orders.TotalsBetween(gctx, ownerID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("orders today: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		out.RecentActivity, err = s.activity.ListRecent(gctx, ownerID, recentActivityLimit)
		if err != nil {
			return fmt.Errorf("recent activity: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		out.UpcomingShifts, err = s.shifts.List(gctx, ownerID, today, upcomingShiftsLimit)
		if err != nil {
			return fmt.Errorf("upcoming shifts: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		settings, err = s.settings.GetSettings(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	out.TotalRevenue = allTime.Revenue
	out.RevenueToday = todays.Revenue
	out.OrdersToday = todays.Count
	out.TrialDaysRemaining = settings.TrialDaysRemaining(today)
	if out.RecentActivity == nil {
		out.RecentActivity = []domain.Activity{}
	}
	if out.UpcomingShifts == nil {
		out.UpcomingShifts = []domain.Shift{}
	}

	s.log.DebugContext(ctx, "dashboard summary built",
		slog.String("owner_id", ownerID.String()),
		slog.Int("low_stock", out.LowStockCount),
	)

	return out, nil
}
