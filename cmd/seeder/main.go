// Command seeder fills a demo restaurant account with sample inventory,
// staff, shifts, orders and attendance history. It is intended to be run
// against development and demo databases, not as part of the main server.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        build the demo data without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres"
	accountrepo "github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/account"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/attendance"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/inventory"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/order"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/shift"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/staff"
	"github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres/token"
	"github.com/AFTLlimited25/Platrr-Business/internal/app"
	"github.com/AFTLlimited25/Platrr-Business/internal/app/seeder"
	"github.com/AFTLlimited25/Platrr-Business/internal/auth"
	"github.com/AFTLlimited25/Platrr-Business/internal/config"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/account"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "build demo data without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	// Load seeder config.
	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	// Parse phase filter.
	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// Connect to DB.
	pool, err := postgres.NewPool(ctx, appCfg.Database, app.ServiceName+"-seeder")
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	jwtMgr := auth.NewJWTManager(appCfg.Auth.JWTSecret, appCfg.Auth.JWTIssuer, appCfg.Auth.AccessTokenTTL)

	accounts := account.NewService(logger, accountrepo.New(pool), token.New(pool), txm, jwtMgr, account.Options{
		BcryptCost:      appCfg.Auth.BcryptCost,
		TrialDays:       appCfg.Account.TrialDays,
		RefreshTokenTTL: appCfg.Auth.RefreshTokenTTL,
		Location:        appCfg.Attendance.Location,
	})

	pipeline := seeder.NewPipeline(logger, accounts, seeder.Stores{
		Inventory:  inventory.New(pool),
		Staff:      staff.New(pool),
		Shifts:     shift.New(pool),
		Orders:     order.New(pool),
		Attendance: attendance.New(pool),
		Tx:         txm,
	}, *seederCfg, appCfg.Attendance.Location)

	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("demo data ready",
		slog.String("email", seederCfg.Email),
		slog.String("owner_id", pipeline.Owner().String()),
	)
}
