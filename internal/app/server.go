package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/memory"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres"
	accountrepo "github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/account"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/activity"
	attendancerepo "github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/attendance"
	inventoryrepo "github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/inventory"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/order"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/shift"
	staffrepo "github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/staff"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/token"
	redisadapter "github.com/AFTLlimited25/Platrr-Business/internal/adapter/redis"
	"github.com/AFTLlimited25/Platrr-Business/internal/auth"
	"github.com/AFTLlimited25/Platrr-Business/internal/config"
	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/notify"
	accountsvc "github.com/AFTLlimited25/Platrr-Business/internal/service/account"
	attendancesvc "github.com/AFTLlimited25/Platrr-Business/internal/service/attendance"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/dashboard"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/feed"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	inventorysvc "github.com/AFTLlimited25/Platrr-Business/internal/service/inventory"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/report"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/schedule"
	staffsvc "github.com/AFTLlimited25/Platrr-Business/internal/service/staff"
	"github.com/AFTLlimited25/Platrr-Business/internal/transport/middleware"
	"github.com/AFTLlimited25/Platrr-Business/internal/transport/rest"
	"github.com/AFTLlimited25/Platrr-Business/internal/transport/ws"
)

const limiterCleanupInterval = 5 * time.Minute

type employeeDirectory interface {
	FindGlobalByEmployeeID(ctx context.Context, employeeID string) (domain.StaffMember, error)
}

type employeeCache interface {
	Invalidate(ctx context.Context, employeeID string)
}

// server owns every long-lived component of the API process.
type server struct {
	cfg     *config.Config
	log     *slog.Logger
	http    *http.Server
	hub     *feed.Hub
	broker  changeBroker
	ws      *ws.Server
	limiter *middleware.RateLimiter
	guests  []sweeper
}

// newServer builds repositories, services and transports on top of the
// given connections. rdb may be nil.
func newServer(log *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, rdb *goredis.Client) (*server, error) {
	loc := cfg.Attendance.Location
	if loc == nil {
		loc = time.UTC
	}

	// 1. Repositories.
	txm := postgres.NewTxManager(pool)
	accountRepo := accountrepo.New(pool)
	tokenRepo := token.New(pool)
	activityRepo := activity.New(pool)
	inventoryRepo := inventoryrepo.New(pool)
	staffRepo := staffrepo.New(pool)
	attendanceRepo := attendancerepo.New(pool)
	orderRepo := order.New(pool)
	shiftRepo := shift.New(pool)

	guestInventory := memory.NewInventoryStore()
	guestStaff := memory.NewStaffStore()

	// 2. Change transport and notices.
	broker, err := newBroker(log, cfg.Realtime, pool, rdb)
	if err != nil {
		return nil, err
	}

	var live notify.Relay
	notices := notify.Fanout{notify.NewLogSink(log), &live}

	reporter := func(c domain.Collection, k domain.ActivityKind) *gateway.Reporter {
		return gateway.NewReporter(log, c, k, activityRepo, broker, notices)
	}

	// 3. Employee lookup, cached in Redis when configured.
	var (
		directory      employeeDirectory = staffRepo
		directoryCache employeeCache
	)
	if rdb != nil {
		cached := redisadapter.NewDirectory(log, staffRepo, rdb, cfg.Redis.DirectoryTTL)
		directory, directoryCache = cached, cached
	}

	// 4. Services.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	accountService := accountsvc.NewService(log, accountRepo, tokenRepo, txm, jwtMgr, accountsvc.Options{
		BcryptCost:      cfg.Auth.BcryptCost,
		TrialDays:       cfg.Account.TrialDays,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
		Location:        loc,
	})

	inventoryService := inventorysvc.NewService(log, inventoryRepo, guestInventory,
		reporter(domain.CollectionInventory, domain.ActivityInventory), loc)

	staffService := staffsvc.NewService(log, staffRepo, guestStaff,
		reporter(domain.CollectionStaff, domain.ActivityStaff), directoryCache, staffsvc.Options{
			EmployeeIDPrefix:  cfg.Attendance.EmployeeIDPrefix,
			GlobalEmployeeIDs: cfg.Attendance.GlobalLookup(),
			Location:          loc,
		})

	attendanceService := attendancesvc.NewService(log, attendanceRepo, staffRepo, directory,
		reporter(domain.CollectionAttendance, domain.ActivityAttendance), attendancesvc.Options{
			GlobalLookup: cfg.Attendance.GlobalLookup(),
			Location:     loc,
		})

	scheduleService := schedule.NewService(log, orderRepo, shiftRepo, activityRepo,
		reporter(domain.CollectionOrders, domain.ActivityOrder),
		reporter(domain.CollectionShifts, domain.ActivityShift),
		loc)

	dashboardService := dashboard.NewService(log, inventoryRepo, staffRepo, orderRepo,
		activityRepo, shiftRepo, accountRepo, loc)

	reportService := report.NewService(log, inventoryRepo, attendanceRepo, accountRepo, loc)

	// 5. Live collections.
	hub := feed.NewHub(log, feed.NewLoaders(feed.Sources{
		Inventory:  inventoryRepo,
		Staff:      staffRepo,
		Attendance: attendanceRepo,
		Activity:   activityRepo,
		Shifts:     shiftRepo,
		Orders:     orderRepo,
		Location:   loc,

		AttendanceDays: cfg.Realtime.AttendanceDays,
	}), notices, cfg.Realtime.CoalesceWait)

	realtime := ws.NewServer(log, hub, accountService, cfg.CORS.Origins())
	live.Attach(realtime)

	// 6. HTTP.
	health := rest.NewHealthHandler(pool, BuildVersion())
	if rdb != nil {
		health.WithComponent("redis", rest.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}))
	}

	limiter := middleware.NewRateLimiter(limiterCleanupInterval, cfg.Server.TrustForwarded)

	handler := rest.NewHandler(rest.Handlers{
		Health:     health,
		Auth:       rest.NewAuthHandler(accountService, log),
		Account:    rest.NewAccountHandler(accountService, log),
		Inventory:  rest.NewInventoryHandler(inventoryService, log),
		Staff:      rest.NewStaffHandler(staffService, log),
		Attendance: rest.NewAttendanceHandler(attendanceService, log),
		Schedule:   rest.NewScheduleHandler(scheduleService, log),
		Reports:    rest.NewReportHandler(dashboardService, reportService, log),
		Realtime:   realtime,
		Metrics:    promhttp.Handler(),
	}, rest.RouterOptions{
		Logger:      log,
		CORS:        cfg.CORS,
		Tokens:      accountService,
		Limiter:     limiter,
		AuthRPM:     cfg.Server.AuthRPM,
		TerminalRPM: cfg.Server.TerminalRPM,
	})

	return &server{
		cfg: cfg,
		log: log,
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		hub:     hub,
		broker:  broker,
		ws:      realtime,
		limiter: limiter,
		guests:  []sweeper{guestInventory, guestStaff},
	}, nil
}

// serve runs the HTTP server and background loops until ctx is done, then
// shuts down within the configured timeout.
func (s *server) serve(ctx context.Context) error {
	defer s.limiter.Stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.hub.Run(gctx, s.broker); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("feed hub: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sweepGuests(gctx, s.log, s.cfg.Account.GuestIdleTTL, s.guests...)
		return nil
	})

	g.Go(func() error {
		s.log.Info("http server listening", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Server.ShutdownTimeout)
		defer cancel()

		s.ws.Close()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// NewHandler wires the full API on top of the given connections without
// starting the background loops. The returned stop func releases the rate
// limiter. rdb may be nil.
func NewHandler(log *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, rdb *goredis.Client) (http.Handler, func(), error) {
	s, err := newServer(log, cfg, pool, rdb)
	if err != nil {
		return nil, nil, err
	}
	return s.http.Handler, s.limiter.Stop, nil
}
