// Package gateway holds the outcome reporting shared by every mutating
// service: success and error notices, the activity feed entry and the
// change events that wake live subscriptions.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/metrics"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

type activityLogger interface {
	Log(ctx context.Context, a domain.Activity) error
}

type changePublisher interface {
	Publish(ctx context.Context, c domain.Change) error
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notice)
}

// Outcome describes a successful write.
type Outcome struct {
	Title    string
	Detail   string
	EntityID string
	// Activity is the feed line; empty writes no activity entry.
	Activity string
}

// Reporter reports the outcomes of writes to one collection.
type Reporter struct {
	collection domain.Collection
	kind       domain.ActivityKind
	activity   activityLogger
	changes    changePublisher
	notices    notifier
	clock      func() time.Time
	log        *slog.Logger
}

// NewReporter creates a reporter for writes to collection.
func NewReporter(
	log *slog.Logger,
	collection domain.Collection,
	kind domain.ActivityKind,
	activity activityLogger,
	changes changePublisher,
	notices notifier,
) *Reporter {
	return &Reporter{
		collection: collection,
		kind:       kind,
		activity:   activity,
		changes:    changes,
		notices:    notices,
		clock:      time.Now,
		log:        log.With("component", "gateway", "collection", string(collection)),
	}
}

// Succeeded sends the success notice. For remote scopes it also appends the
// activity entry and publishes change events. Failures of these follow-ups
// are logged and never undo the write.
func (r *Reporter) Succeeded(ctx context.Context, sc scope.Scope, o Outcome) {
	r.notices.Notify(ctx, domain.SuccessNotice(sc.Key, o.Title, o.Detail))

	if !sc.Remote {
		return
	}

	if o.Activity != "" {
		a := domain.NewActivity(sc.Key, r.kind, o.EntityID, o.Activity, r.clock())
		if err := r.activity.Log(ctx, a); err != nil {
			r.log.WarnContext(ctx, "activity log failed", slog.String("error", err.Error()))
		} else {
			r.publish(ctx, domain.Change{Collection: domain.CollectionActivity, OwnerID: sc.Key})
		}
	}

	r.publish(ctx, domain.Change{Collection: r.collection, OwnerID: sc.Key})
}

// Failed sends an error notice carrying err's message verbatim, counts the
// failure and returns err wrapped with the operation name.
func (r *Reporter) Failed(ctx context.Context, sc scope.Scope, op, title string, err error) error {
	metrics.MutationFailures.WithLabelValues(string(r.collection), op).Inc()
	r.notices.Notify(ctx, domain.ErrorNotice(sc.Key, title, err.Error()))

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		r.log.ErrorContext(ctx, op+" failed",
			slog.String("mode", sc.Mode()),
			slog.String("error", err.Error()),
		)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *Reporter) publish(ctx context.Context, c domain.Change) {
	if err := r.changes.Publish(ctx, c); err != nil {
		r.log.WarnContext(ctx, "publish change failed",
			slog.String("change_collection", string(c.Collection)),
			slog.String("error", err.Error()),
		)
	}
}
