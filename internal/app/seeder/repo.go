// Package seeder fills a demo restaurant account with sample inventory,
// staff, shifts, orders and attendance history.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/account"
)

// AccountService creates or signs in to the demo account.
type AccountService interface {
	Register(ctx context.Context, input account.RegisterInput) (account.AuthResult, error)
	Login(ctx context.Context, input account.LoginInput) (account.AuthResult, error)
}

// Stores are the repositories the seeder writes through. Writes bypass the
// services so that seeding produces no activity entries or notices.
type Stores struct {
	Inventory  InventoryWriter
	Staff      StaffWriter
	Shifts     ShiftWriter
	Orders     OrderWriter
	Attendance AttendanceWriter
	Tx         TxRunner
}

type InventoryWriter interface {
	Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
}

type StaffWriter interface {
	Create(ctx context.Context, m domain.StaffMember) (domain.StaffMember, error)
	EmployeeIDs(ctx context.Context, ownerID uuid.UUID) ([]string, error)
}

type ShiftWriter interface {
	Create(ctx context.Context, s domain.Shift) (domain.Shift, error)
}

type OrderWriter interface {
	Create(ctx context.Context, o domain.Order) (domain.Order, error)
}

type AttendanceWriter interface {
	CreateIfAbsent(ctx context.Context, rec domain.AttendanceRecord) (domain.AttendanceRecord, error)
}

// TxRunner runs fn in one transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
