package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

const probeTimeout = 3 * time.Second

// Pinger is a dependency the service cannot work without.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type component struct {
	name   string
	pinger Pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components []component
	version    string
}

// NewHealthHandler creates a HealthHandler that always checks the database.
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{
		components: []component{{name: "database", pinger: db}},
		version:    version,
	}
}

// WithComponent adds another dependency to the readiness and health checks.
func (h *HealthHandler) WithComponent(name string, p Pinger) *HealthHandler {
	h.components = append(h.components, component{name: name, pinger: p})
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when every component answers, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.check(r.Context())
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())

	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out := make(map[string]CompStatus, len(h.components))
	healthy := true
	for _, c := range h.components {
		start := time.Now()
		if err := c.pinger.Ping(ctx); err != nil {
			out[c.name] = CompStatus{Status: "down"}
			healthy = false
			continue
		}
		out[c.name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return out, healthy
}

// ComponentNames lists the checked components, sorted.
func (h *HealthHandler) ComponentNames() []string {
	names := make([]string, len(h.components))
	for i, c := range h.components {
		names[i] = c.name
	}
	sort.Strings(names)
	return names
}
