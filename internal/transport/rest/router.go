package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/AFTLlimited25/Platrr-Business/internal/config"
	"github.com/AFTLlimited25/Platrr-Business/internal/transport/middleware"
)

// Handlers groups every endpoint the router mounts. Realtime and Metrics are
// plain http.Handlers (websocket upgrader and Prometheus exporter).
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Account    *AccountHandler
	Inventory  *InventoryHandler
	Staff      *StaffHandler
	Attendance *AttendanceHandler
	Schedule   *ScheduleHandler
	Reports    *ReportHandler
	Realtime   http.Handler
	Metrics    http.Handler
}

// TokenValidator resolves a bearer token into an account id.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterOptions configures the middleware around the routes.
type RouterOptions struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	Tokens      TokenValidator
	Limiter     *middleware.RateLimiter
	AuthRPM     int
	TerminalRPM int
}

// NewHandler builds the full HTTP handler: global middleware around a
// gorilla/mux router carrying every route.
func NewHandler(h Handlers, opts RouterOptions) http.Handler {
	return middleware.Chain(
		middleware.Recovery(opts.Logger),
		middleware.RequestID(),
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.CORS),
		middleware.Auth(opts.Tokens),
		middleware.GuestSession(),
	)(NewRouter(h, opts))
}

// NewRouter registers the routes on a fresh router.
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()
	r.Use(mux.MiddlewareFunc(middleware.Metrics()))

	authLimit := limit(opts.Limiter, "auth", opts.AuthRPM)
	terminalLimit := limit(opts.Limiter, "terminal", opts.TerminalRPM)
	account := middleware.RequireAccount

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics).Methods(http.MethodGet)
	}
	if h.Realtime != nil {
		r.Handle("/ws", h.Realtime).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()

	api.Handle("/auth/register", authLimit(http.HandlerFunc(h.Auth.Register))).Methods(http.MethodPost)
	api.Handle("/auth/login", authLimit(http.HandlerFunc(h.Auth.Login))).Methods(http.MethodPost)
	api.Handle("/auth/refresh", authLimit(http.HandlerFunc(h.Auth.Refresh))).Methods(http.MethodPost)
	api.Handle("/auth/logout", account(http.HandlerFunc(h.Auth.Logout))).Methods(http.MethodPost)

	api.Handle("/account", account(http.HandlerFunc(h.Account.GetProfile))).Methods(http.MethodGet)
	api.Handle("/account", account(http.HandlerFunc(h.Account.UpdateProfile))).Methods(http.MethodPut)
	api.Handle("/account/settings", account(http.HandlerFunc(h.Account.GetSettings))).Methods(http.MethodGet)
	api.Handle("/account/settings", account(http.HandlerFunc(h.Account.UpdateSettings))).Methods(http.MethodPut)
	api.Handle("/account/password", authLimit(account(http.HandlerFunc(h.Account.ChangePassword)))).Methods(http.MethodPost)

	api.HandleFunc("/inventory", h.Inventory.List).Methods(http.MethodGet)
	api.HandleFunc("/inventory", h.Inventory.Create).Methods(http.MethodPost)
	api.HandleFunc("/inventory/{id}", h.Inventory.Get).Methods(http.MethodGet)
	api.HandleFunc("/inventory/{id}", h.Inventory.Update).Methods(http.MethodPut)
	api.HandleFunc("/inventory/{id}", h.Inventory.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/inventory/{id}/adjust", h.Inventory.Adjust).Methods(http.MethodPost)

	api.HandleFunc("/staff", h.Staff.List).Methods(http.MethodGet)
	api.HandleFunc("/staff", h.Staff.Create).Methods(http.MethodPost)
	api.HandleFunc("/staff/{id}", h.Staff.Get).Methods(http.MethodGet)
	api.HandleFunc("/staff/{id}", h.Staff.Update).Methods(http.MethodPut)
	api.HandleFunc("/staff/{id}", h.Staff.Delete).Methods(http.MethodDelete)

	api.Handle("/attendance/lookup", terminalLimit(http.HandlerFunc(h.Attendance.Lookup))).Methods(http.MethodPost)
	api.HandleFunc("/attendance", h.Attendance.Board).Methods(http.MethodGet)
	api.HandleFunc("/attendance/{employeeId}", h.Attendance.Get).Methods(http.MethodGet)
	api.HandleFunc("/attendance/{employeeId}/clock-in", h.Attendance.ClockIn).Methods(http.MethodPost)
	api.HandleFunc("/attendance/{employeeId}/clock-out", h.Attendance.ClockOut).Methods(http.MethodPost)

	api.HandleFunc("/orders", h.Schedule.ListOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders", h.Schedule.CreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/shifts", h.Schedule.ListShifts).Methods(http.MethodGet)
	api.HandleFunc("/shifts", h.Schedule.CreateShift).Methods(http.MethodPost)
	api.HandleFunc("/shifts/{id}", h.Schedule.DeleteShift).Methods(http.MethodDelete)
	api.HandleFunc("/activity", h.Schedule.ListActivity).Methods(http.MethodGet)

	api.HandleFunc("/dashboard", h.Reports.Dashboard).Methods(http.MethodGet)
	api.HandleFunc("/reports/inventory", h.Reports.Inventory).Methods(http.MethodGet)
	api.HandleFunc("/reports/inventory.pdf", h.Reports.InventoryPDF).Methods(http.MethodGet)
	api.HandleFunc("/reports/attendance", h.Reports.Attendance).Methods(http.MethodGet)
	api.HandleFunc("/reports/attendance.pdf", h.Reports.AttendancePDF).Methods(http.MethodGet)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	// A subrouter resolves its own mismatches; without these it answers 404.
	for _, router := range []*mux.Router{r, api} {
		router.NotFoundHandler = notFound
		router.MethodNotAllowedHandler = methodNotAllowed
	}
	return r
}

func limit(rl *middleware.RateLimiter, scope string, perMinute int) middleware.Middleware {
	if rl == nil || perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return rl.Limit(scope, perMinute)
}
