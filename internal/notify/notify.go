// Package notify delivers toast-style notices. Delivery is fire-and-forget:
// sinks never return errors and never block the caller for long.
package notify

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/metrics"
)

// Sink receives notices.
type Sink interface {
	Notify(ctx context.Context, n domain.Notice)
}

// LogSink writes notices to the structured log.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a sink that logs every notice.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log.With("component", "notify")}
}

func (s *LogSink) Notify(ctx context.Context, n domain.Notice) {
	level := slog.LevelInfo
	if n.Level == domain.NoticeError {
		level = slog.LevelWarn
	}
	s.log.LogAttrs(ctx, level, "notice",
		slog.String("notice_level", string(n.Level)),
		slog.String("title", n.Title),
		slog.String("detail", n.Detail),
		slog.String("owner_id", n.OwnerID.String()),
	)
}

// Fanout forwards each notice to every sink in order and counts it.
type Fanout []Sink

func (f Fanout) Notify(ctx context.Context, n domain.Notice) {
	metrics.NoticesSent.WithLabelValues(string(n.Level)).Inc()
	for _, s := range f {
		s.Notify(ctx, n)
	}
}

// Discard drops every notice.
type Discard struct{}

func (Discard) Notify(context.Context, domain.Notice) {}

// Relay forwards to a sink attached after construction. Notices sent before
// Attach are dropped.
type Relay struct {
	target atomic.Pointer[Sink]
}

// Attach sets the sink notices are forwarded to.
func (r *Relay) Attach(s Sink) { r.target.Store(&s) }

func (r *Relay) Notify(ctx context.Context, n domain.Notice) {
	if s := r.target.Load(); s != nil {
		(*s).Notify(ctx, n)
	}
}
