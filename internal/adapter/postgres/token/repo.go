// Package token implements the refresh token repository using PostgreSQL.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres"
	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

const table = "refresh_tokens"

var columns = []string{"id", "account_id", "token_hash", "expires_at", "created_at", "revoked_at"}

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, t domain.RefreshToken) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "account_id", "token_hash", "expires_at").
		Values(t.ID, t.AccountID, t.TokenHash, t.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create refresh token: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", t.ID)
	}
	return nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (domain.RefreshToken, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"token_hash": tokenHash, "revoked_at": nil}).
		Where(squirrel.Gt{"expires_at": r.now()}).
		ToSql()
	if err != nil {
		return domain.RefreshToken{}, fmt.Errorf("build get refresh token: %w", err)
	}

	var row tokenRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.RefreshToken{}, postgres.MapError(err, "refresh_token", "by hash")
	}
	return row.toDomain(), nil
}

// RevokeByHash revokes the token with the given hash.
// Idempotent: revoking an unknown or already-revoked token is not an error.
func (r *Repo) RevokeByHash(ctx context.Context, tokenHash string) error {
	return r.revoke(ctx, squirrel.Eq{"token_hash": tokenHash})
}

// RevokeAllByAccount revokes all active refresh tokens of the account.
func (r *Repo) RevokeAllByAccount(ctx context.Context, accountID uuid.UUID) error {
	return r.revoke(ctx, squirrel.Eq{"account_id": accountID})
}

func (r *Repo) revoke(ctx context.Context, where squirrel.Eq) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("revoked_at", r.now()).
		Where(where).
		Where(squirrel.Eq{"revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke refresh token: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", "revoke")
	}
	return nil
}

// DeleteExpired removes all expired or revoked tokens and returns how many
// were deleted. May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Or{
			squirrel.LtOrEq{"expires_at": r.now()},
			squirrel.NotEq{"revoked_at": nil},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired tokens: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}

type tokenRow struct {
	ID        uuid.UUID  `db:"id"`
	AccountID uuid.UUID  `db:"account_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (row tokenRow) toDomain() domain.RefreshToken {
	return domain.RefreshToken{
		ID:        row.ID,
		AccountID: row.AccountID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
		RevokedAt: row.RevokedAt,
	}
}
