// Package account implements the account and account-settings repository
// using PostgreSQL.
package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres"
	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

var accountColumns = []string{
	"id", "email", "password_hash", "name", "business_name", "phone_number", "created_at", "updated_at",
}

var settingsColumns = []string{
	"account_id", "email_notifications", "low_stock_alerts", "staff_updates", "order_notifications",
	"weekly_reports", "trial_ends_on", "updated_at",
}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Account operations
// ---------------------------------------------------------------------------

// Create inserts an account with its password hash.
func (r *Repo) Create(ctx context.Context, acc domain.Account, passwordHash string) (domain.Account, error) {
	sql, args, err := postgres.Builder().
		Insert("accounts").
		Columns(accountColumns...).
		Values(acc.ID, acc.Email, passwordHash, acc.Name, acc.BusinessName, acc.PhoneNumber, acc.CreatedAt, acc.UpdatedAt).
		Suffix("RETURNING " + strings.Join(accountColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Account{}, fmt.Errorf("build create account: %w", err)
	}

	row, err := r.getAccount(ctx, sql, args...)
	if err != nil {
		return domain.Account{}, postgres.MapError(err, "account", acc.Email)
	}
	return row.toDomain(), nil
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	sql, args, err := postgres.Builder().
		Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Account{}, fmt.Errorf("build get account: %w", err)
	}

	row, err := r.getAccount(ctx, sql, args...)
	if err != nil {
		return domain.Account{}, postgres.MapError(err, "account", id)
	}
	return row.toDomain(), nil
}

// GetCredentials returns the account and password hash for an email,
// matched case-insensitively.
func (r *Repo) GetCredentials(ctx context.Context, email string) (domain.Account, string, error) {
	sql, args, err := postgres.Builder().
		Select(accountColumns...).
		From("accounts").
		Where("lower(email) = lower(?)", email).
		ToSql()
	if err != nil {
		return domain.Account{}, "", fmt.Errorf("build get credentials: %w", err)
	}

	row, err := r.getAccount(ctx, sql, args...)
	if err != nil {
		return domain.Account{}, "", postgres.MapError(err, "account", email)
	}
	return row.toDomain(), row.PasswordHash, nil
}

// GetPasswordHash returns the stored password hash of an account.
func (r *Repo) GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	var hash string
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT password_hash FROM accounts WHERE id = $1`, id).
		Scan(&hash)
	if err != nil {
		return "", postgres.MapError(err, "account", id)
	}
	return hash, nil
}

// Update replaces the profile fields of an account.
func (r *Repo) Update(ctx context.Context, acc domain.Account) (domain.Account, error) {
	sql, args, err := postgres.Builder().
		Update("accounts").
		Set("name", acc.Name).
		Set("business_name", acc.BusinessName).
		Set("phone_number", acc.PhoneNumber).
		Set("updated_at", acc.UpdatedAt).
		Where(squirrel.Eq{"id": acc.ID}).
		Suffix("RETURNING " + strings.Join(accountColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Account{}, fmt.Errorf("build update account: %w", err)
	}

	row, err := r.getAccount(ctx, sql, args...)
	if err != nil {
		return domain.Account{}, postgres.MapError(err, "account", acc.ID)
	}
	return row.toDomain(), nil
}

// UpdatePassword stores a new password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, now time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE accounts SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		passwordHash, now, id,
	)
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Settings operations
// ---------------------------------------------------------------------------

// CreateSettings inserts the settings row of a new account.
func (r *Repo) CreateSettings(ctx context.Context, s domain.AccountSettings) error {
	sql, args, err := postgres.Builder().
		Insert("account_settings").
		Columns(settingsColumns...).
		Values(s.AccountID, s.EmailNotifications, s.LowStockAlerts, s.StaffUpdates, s.OrderNotifications,
			s.WeeklyReports, s.TrialEndsOn.Time(), s.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create settings: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "account_settings", s.AccountID)
	}
	return nil
}

// GetSettings returns the settings of an account.
func (r *Repo) GetSettings(ctx context.Context, accountID uuid.UUID) (domain.AccountSettings, error) {
	sql, args, err := postgres.Builder().
		Select(settingsColumns...).
		From("account_settings").
		Where(squirrel.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return domain.AccountSettings{}, fmt.Errorf("build get settings: %w", err)
	}

	var row settingsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.AccountSettings{}, postgres.MapError(err, "account_settings", accountID)
	}
	return row.toDomain(), nil
}

// UpdateSettings replaces the notification preferences. The trial end date
// is not editable.
func (r *Repo) UpdateSettings(ctx context.Context, s domain.AccountSettings) (domain.AccountSettings, error) {
	sql, args, err := postgres.Builder().
		Update("account_settings").
		Set("email_notifications", s.EmailNotifications).
		Set("low_stock_alerts", s.LowStockAlerts).
		Set("staff_updates", s.StaffUpdates).
		Set("order_notifications", s.OrderNotifications).
		Set("weekly_reports", s.WeeklyReports).
		Set("updated_at", s.UpdatedAt).
		Where(squirrel.Eq{"account_id": s.AccountID}).
		Suffix("RETURNING " + strings.Join(settingsColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.AccountSettings{}, fmt.Errorf("build update settings: %w", err)
	}

	var row settingsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.AccountSettings{}, postgres.MapError(err, "account_settings", s.AccountID)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type accountRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	BusinessName string    `db:"business_name"`
	PhoneNumber  string    `db:"phone_number"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (row accountRow) toDomain() domain.Account {
	return domain.Account{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		BusinessName: row.BusinessName,
		PhoneNumber:  row.PhoneNumber,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func (r *Repo) getAccount(ctx context.Context, sql string, args ...any) (accountRow, error) {
	var row accountRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...)
	return row, err
}

type settingsRow struct {
	AccountID          uuid.UUID `db:"account_id"`
	EmailNotifications bool      `db:"email_notifications"`
	LowStockAlerts     bool      `db:"low_stock_alerts"`
	StaffUpdates       bool      `db:"staff_updates"`
	OrderNotifications bool      `db:"order_notifications"`
	WeeklyReports      bool      `db:"weekly_reports"`
	TrialEndsOn        time.Time `db:"trial_ends_on"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (row settingsRow) toDomain() domain.AccountSettings {
	return domain.AccountSettings{
		AccountID:          row.AccountID,
		EmailNotifications: row.EmailNotifications,
		LowStockAlerts:     row.LowStockAlerts,
		StaffUpdates:       row.StaffUpdates,
		OrderNotifications: row.OrderNotifications,
		WeeklyReports:      row.WeeklyReports,
		TrialEndsOn:        domain.DateOf(row.TrialEndsOn),
		UpdatedAt:          row.UpdatedAt,
	}
}
