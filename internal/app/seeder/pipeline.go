package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/account"
)

// allPhases defines the canonical execution order. Shifts and attendance
// need the members created by the staff phase of the same run.
var allPhases = []string{"inventory", "staff", "shifts", "orders", "attendance"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline seeds one demo account phase by phase.
type Pipeline struct {
	log      *slog.Logger
	accounts AccountService
	stores   Stores
	cfg      Config
	loc      *time.Location
	rng      *rand.Rand
	now      func() time.Time
	results  map[string]PhaseResult

	owner uuid.UUID
	staff []domain.StaffMember
}

// NewPipeline creates a new Pipeline. loc decides "today" for the seeded
// dates; nil means UTC.
func NewPipeline(log *slog.Logger, accounts AccountService, stores Stores, cfg Config, loc *time.Location) *Pipeline {
	if loc == nil {
		loc = time.UTC
	}
	return &Pipeline{
		log:      log,
		accounts: accounts,
		stores:   stores,
		cfg:      cfg,
		loc:      loc,
		rng:      rand.New(rand.NewPCG(cfg.RandSeed, cfg.RandSeed^0x9e3779b97f4a7c15)),
		now:      time.Now,
		results:  make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Owner returns the demo account ID once Run has resolved it.
func (p *Pipeline) Owner() uuid.UUID { return p.owner }

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run resolves the demo account and executes the phases. If phases is
// non-empty, only the listed phases run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	// Step 1: Resolve the owner account.
	if err := p.resolveOwner(ctx); err != nil {
		return fmt.Errorf("demo account: %w", err)
	}

	// Step 2: Determine which phases to run.
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	// Step 3: Execute phases in order.
	for _, phase := range toRun {
		start := p.now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "inventory":
			result = p.runInventory(ctx)
		case "staff":
			result = p.runStaff(ctx)
		case "shifts":
			result = p.runShifts(ctx)
		case "orders":
			result = p.runOrders(ctx)
		case "attendance":
			result = p.runAttendance(ctx)
		}
		result.Duration = p.now().Sub(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	// Step 4: Summary log.
	p.log.Info("pipeline completed",
		slog.Int("phases_run", len(toRun)),
		slog.String("owner_id", p.owner.String()),
	)
	return nil
}

// resolveOwner registers the demo account, or signs in when it exists.
// A dry run works on a throwaway ID.
func (p *Pipeline) resolveOwner(ctx context.Context) error {
	if p.cfg.DryRun {
		p.owner = uuid.New()
		return nil
	}

	res, err := p.accounts.Register(ctx, account.RegisterInput{
		Name:            p.cfg.OwnerName,
		Email:           p.cfg.Email,
		Password:        p.cfg.Password,
		ConfirmPassword: p.cfg.Password,
		BusinessName:    p.cfg.BusinessName,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		p.log.Info("demo account exists, signing in", slog.String("email", p.cfg.Email))
		res, err = p.accounts.Login(ctx, account.LoginInput{Email: p.cfg.Email, Password: p.cfg.Password})
	}
	if err != nil {
		return err
	}
	p.owner = res.Account.ID
	return nil
}

func (p *Pipeline) today() domain.Date { return domain.Today(p.now(), p.loc) }

// ---------------------------------------------------------------------------
// Phases
// ---------------------------------------------------------------------------

func (p *Pipeline) runInventory(ctx context.Context) PhaseResult {
	today := p.today()
	now := p.now().UTC()

	items := make([]domain.InventoryItem, 0, len(demoInventory))
	for _, def := range demoInventory {
		var expiry *domain.Date
		if def.expiresIn != nil {
			d := today.AddDays(*def.expiresIn)
			expiry = &d
		}
		item := domain.InventoryItem{
			ID:            uuid.New(),
			OwnerID:       p.owner,
			Name:          def.name,
			Category:      def.category,
			CurrentStock:  def.stock,
			MinStock:      def.minStock,
			MaxStock:      def.maxStock,
			Unit:          def.unit,
			CostPerUnit:   def.costPerUnit(),
			Supplier:      def.supplier,
			ExpiryDate:    expiry,
			LastRestocked: today.AddDays(-p.rng.IntN(10)),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		items = append(items, item.WithStatus(today))
	}

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(items)}
	}

	n, err := writeAll(ctx, p.stores.Tx, items, p.cfg.BatchSize, func(ctx context.Context, item domain.InventoryItem) error {
		_, err := p.stores.Inventory.Create(ctx, item)
		return err
	})
	if err != nil {
		return PhaseResult{Inserted: n, Err: fmt.Errorf("insert inventory: %w", err)}
	}
	return PhaseResult{Inserted: n}
}

func (p *Pipeline) runStaff(ctx context.Context) PhaseResult {
	var existing []string
	if !p.cfg.DryRun {
		ids, err := p.stores.Staff.EmployeeIDs(ctx, uuid.Nil)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("list employee ids: %w", err)}
		}
		existing = ids
	}

	gen := domain.NewEmployeeIDGenerator(p.cfg.IDPrefix, existing)
	today := p.today()
	now := p.now().UTC()

	members := make([]domain.StaffMember, 0, len(demoStaff))
	for _, def := range demoStaff {
		members = append(members, domain.StaffMember{
			ID:         uuid.New(),
			OwnerID:    p.owner,
			EmployeeID: gen.Next(),
			Name:       def.name,
			Email:      def.email,
			Phone:      def.phone,
			Role:       def.role,
			Status:     def.status,
			JoinDate:   today.AddDays(-def.joinedDaysAgo),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	p.staff = members

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(members)}
	}

	n, err := writeAll(ctx, p.stores.Tx, members, p.cfg.BatchSize, func(ctx context.Context, m domain.StaffMember) error {
		_, err := p.stores.Staff.Create(ctx, m)
		return err
	})
	if err != nil {
		return PhaseResult{Inserted: n, Err: fmt.Errorf("insert staff: %w", err)}
	}
	return PhaseResult{Inserted: n}
}

// runShifts schedules the coming week for every active member.
func (p *Pipeline) runShifts(ctx context.Context) PhaseResult {
	if len(p.staff) == 0 {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("shifts need the staff phase")}
	}

	today := p.today()
	var shifts []domain.Shift
	for day := range 7 {
		for idx, m := range p.staff {
			if !m.IsActive() || (day+idx)%6 == 0 {
				continue
			}
			slot := demoStaff[idx].shift()
			shifts = append(shifts, domain.Shift{
				ID:        uuid.New(),
				OwnerID:   p.owner,
				StaffName: m.Name,
				Role:      m.Role,
				Date:      today.AddDays(day),
				Start:     slot[0],
				End:       slot[1],
			})
		}
	}

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(shifts)}
	}

	n, err := writeAll(ctx, p.stores.Tx, shifts, p.cfg.BatchSize, func(ctx context.Context, s domain.Shift) error {
		_, err := p.stores.Shifts.Create(ctx, s)
		return err
	})
	if err != nil {
		return PhaseResult{Inserted: n, Err: fmt.Errorf("insert shifts: %w", err)}
	}
	return PhaseResult{Inserted: n}
}

// runOrders places orders over the history window, today included.
func (p *Pipeline) runOrders(ctx context.Context) PhaseResult {
	today := p.today()
	perDay := max(1, p.cfg.OrdersPerDay)

	var orders []domain.Order
	for back := p.cfg.HistoryDays; back >= 0; back-- {
		day := today.AddDays(-back)
		count := perDay/2 + p.rng.IntN(perDay+1)
		for range count {
			// Service hours 11:00 to 22:00.
			minute := 11*60 + p.rng.IntN(11*60)
			placed := time.Date(day.Year, day.Month, day.Day, minute/60, minute%60, 0, 0, p.loc)
			if placed.After(p.now()) {
				continue
			}
			orders = append(orders, domain.Order{
				ID:          uuid.New(),
				OwnerID:     p.owner,
				TotalAmount: decimal.New(int64(800+p.rng.IntN(11200)), -2),
				PlacedAt:    placed.UTC(),
			})
		}
	}

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(orders)}
	}

	n, err := writeAll(ctx, p.stores.Tx, orders, p.cfg.BatchSize, func(ctx context.Context, o domain.Order) error {
		_, err := p.stores.Orders.Create(ctx, o)
		return err
	})
	if err != nil {
		return PhaseResult{Inserted: n, Err: fmt.Errorf("insert orders: %w", err)}
	}
	return PhaseResult{Inserted: n}
}

// runAttendance records finished days for active members. Today is left
// untouched so the terminal can be tried out.
func (p *Pipeline) runAttendance(ctx context.Context) PhaseResult {
	if len(p.staff) == 0 {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("attendance needs the staff phase")}
	}

	today := p.today()
	now := p.now().UTC()

	var records []domain.AttendanceRecord
	for back := p.cfg.HistoryDays; back >= 1; back-- {
		day := today.AddDays(-back)
		for idx, m := range p.staff {
			if !m.IsActive() || p.rng.IntN(100) < 15 {
				continue
			}
			slot := demoStaff[idx].shift()
			in := jitter(slot[0], p.rng.IntN(21)-10)
			out := jitter(slot[1], p.rng.IntN(31)-5)

			rec, err := domain.NewAttendanceRecord(m, day).ClockInAt(in)
			if err == nil {
				rec, err = rec.ClockOutAt(out)
			}
			if err != nil {
				return PhaseResult{Err: fmt.Errorf("build attendance %s: %w", rec.ID, err)}
			}
			rec.UpdatedAt = now
			records = append(records, rec)
		}
	}

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(records)}
	}

	n, err := writeAll(ctx, p.stores.Tx, records, p.cfg.BatchSize, func(ctx context.Context, r domain.AttendanceRecord) error {
		_, err := p.stores.Attendance.CreateIfAbsent(ctx, r)
		return err
	})
	if err != nil {
		return PhaseResult{Inserted: n, Err: fmt.Errorf("insert attendance: %w", err)}
	}
	return PhaseResult{Inserted: n}
}

// jitter shifts c by delta minutes, wrapping around midnight.
func jitter(c domain.ClockTime, delta int) domain.ClockTime {
	m := ((c.Minutes()+delta)%(24*60) + 24*60) % (24 * 60)
	return domain.ClockTime{Hour: m / 60, Minute: m % 60}
}

// ---------------------------------------------------------------------------
// Batching
// ---------------------------------------------------------------------------

// writeAll writes items in batches, one transaction per batch.
func writeAll[T any](ctx context.Context, tx TxRunner, items []T, batchSize int, write func(context.Context, T) error) (int, error) {
	return batchProcess(items, batchSize, func(batch []T) (int, error) {
		err := tx.RunInTx(ctx, func(ctx context.Context) error {
			for _, v := range batch {
				if err := write(ctx, v); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return 0, err
		}
		return len(batch), nil
	})
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
