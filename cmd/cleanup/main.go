// Command cleanup enforces data retention: it deletes activity entries and
// attendance records older than the configured retention and drops expired
// or revoked refresh tokens. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/activity"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/attendance"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/token"
	"github.com/AFTLlimited25/Platrr-Business/internal/app"
	"github.com/AFTLlimited25/Platrr-Business/internal/config"
	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, app.ServiceName+"-cleanup")
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()
	failed := false

	activityCutoff := now.AddDate(0, 0, -cfg.Retention.ActivityDays)
	if n, err := activity.New(pool).DeleteBefore(ctx, activityCutoff); err != nil {
		logger.Error("activity cleanup failed", slog.String("error", err.Error()))
		failed = true
	} else {
		logger.Info("activity cleanup completed", slog.Int64("deleted", n), slog.Time("threshold", activityCutoff))
	}

	loc := cfg.Attendance.Location
	if loc == nil {
		loc = time.UTC
	}
	attendanceCutoff := domain.DateOf(now.In(loc)).AddDays(-cfg.Retention.AttendanceDays)
	if n, err := attendance.New(pool).DeleteBefore(ctx, attendanceCutoff); err != nil {
		logger.Error("attendance cleanup failed", slog.String("error", err.Error()))
		failed = true
	} else {
		logger.Info("attendance cleanup completed",
			slog.Int64("deleted", n),
			slog.String("threshold", attendanceCutoff.String()),
		)
	}

	if n, err := token.New(pool).DeleteExpired(ctx); err != nil {
		logger.Error("token cleanup failed", slog.String("error", err.Error()))
		failed = true
	} else {
		logger.Info("token cleanup completed", slog.Int64("deleted", n))
	}

	if failed {
		os.Exit(1)
	}
}
