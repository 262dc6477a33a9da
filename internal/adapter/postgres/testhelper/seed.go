package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates an account and its default settings.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	acc := domain.Account{
		ID:           uuid.New(),
		Email:        "owner-" + suffix + "@example.com",
		Name:         "Owner " + suffix,
		BusinessName: "Bistro " + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO accounts (id, email, password_hash, name, business_name, phone_number, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		acc.ID, acc.Email, "x", acc.Name, acc.BusinessName, acc.PhoneNumber, acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert account: %v", err)
	}

	settings := domain.DefaultAccountSettings(acc.ID, domain.DateOf(now), 30)
	_, err = pool.Exec(ctx,
		`INSERT INTO account_settings (account_id, email_notifications, low_stock_alerts, staff_updates,
		     order_notifications, weekly_reports, trial_ends_on, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		settings.AccountID, settings.EmailNotifications, settings.LowStockAlerts, settings.StaffUpdates,
		settings.OrderNotifications, settings.WeeklyReports, settings.TrialEndsOn.Time(), now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert account_settings: %v", err)
	}

	return acc
}

// SeedStaff creates an active Cook with the given employee ID.
func SeedStaff(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, employeeID string) domain.StaffMember {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.StaffMember{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		EmployeeID: employeeID,
		Name:       "Cook " + employeeID,
		Email:      employeeID + "@example.com",
		Role:       domain.StaffRoleCook,
		Status:     domain.StaffStatusActive,
		JoinDate:   domain.DateOf(now),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO staff_members (id, owner_id, employee_id, name, email, phone, role, address, status, join_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.ID, m.OwnerID, m.EmployeeID, m.Name, m.Email, m.Phone, string(m.Role), m.Address, string(m.Status),
		m.JoinDate.Time(), m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStaff: %v", err)
	}
	return m
}

// SeedInventoryItem creates an item with the given stock levels, restocked today.
func SeedInventoryItem(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, name string, current, minStock int) domain.InventoryItem {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.InventoryItem{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          name,
		Category:      "Vegetables",
		CurrentStock:  current,
		MinStock:      minStock,
		MaxStock:      domain.DefaultMaxStock(minStock),
		Unit:          "kg",
		CostPerUnit:   decimal.RequireFromString("2.50"),
		Supplier:      "Fresh Farms",
		LastRestocked: domain.DateOf(now),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO inventory_items (id, owner_id, name, category, current_stock, min_stock, max_stock, unit,
		     cost_per_unit, supplier, expiry_date, last_restocked, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULL, $11, $12, $13)`,
		item.ID, item.OwnerID, item.Name, item.Category, item.CurrentStock, item.MinStock, item.MaxStock, item.Unit,
		item.CostPerUnit.String(), item.Supplier, item.LastRestocked.Time(), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInventoryItem: %v", err)
	}
	return item
}
