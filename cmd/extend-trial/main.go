// Command extend-trial moves an account's trial end date.
//
// Usage:
//
//	extend-trial --email=owner@example.com --days=30
//
// The new end date is counted from today or from the current end date,
// whichever is later. Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	email := flag.String("email", "", "email of the account to extend")
	days := flag.Int("days", 30, "days to add to the trial")
	flag.Parse()

	if *email == "" || *days <= 0 {
		fmt.Fprintln(os.Stderr, "Usage: extend-trial --email=owner@example.com --days=30")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	var endsOn time.Time
	err = pool.QueryRow(ctx, `
		UPDATE account_settings s
		SET trial_ends_on = GREATEST(s.trial_ends_on, CURRENT_DATE) + $2::int,
		    updated_at    = now()
		FROM accounts a
		WHERE a.id = s.account_id AND lower(a.email) = lower($1)
		RETURNING s.trial_ends_on`,
		*email, *days,
	).Scan(&endsOn)
	if errors.Is(err, pgx.ErrNoRows) {
		fmt.Printf("No account found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("extend trial: %v", err)
	}

	fmt.Printf("Trial for %q now ends on %s.\n", *email, endsOn.Format(time.DateOnly))
}
