// Package account implements owner sign-up, sign-in, profile and settings.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// accountRepo defines the account persistence needed by the service.
type accountRepo interface {
	Create(ctx context.Context, acc domain.Account, passwordHash string) (domain.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error)
	GetCredentials(ctx context.Context, email string) (domain.Account, string, error)
	GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error)
	Update(ctx context.Context, acc domain.Account) (domain.Account, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, now time.Time) error
	CreateSettings(ctx context.Context, s domain.AccountSettings) error
	GetSettings(ctx context.Context, accountID uuid.UUID) (domain.AccountSettings, error)
	UpdateSettings(ctx context.Context, s domain.AccountSettings) (domain.AccountSettings, error)
}

// tokenRepo defines the refresh token persistence needed by the service.
type tokenRepo interface {
	Create(ctx context.Context, t domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (domain.RefreshToken, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllByAccount(ctx context.Context, accountID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the token issuing interface needed by the service.
type jwtManager interface {
	GenerateAccessToken(accountID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Options holds the account policy knobs.
type Options struct {
	BcryptCost      int
	TrialDays       int
	RefreshTokenTTL time.Duration
	Location        *time.Location
}

// Service implements account operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	tokens   tokenRepo
	tx       txManager
	jwt      jwtManager
	opts     Options
	now      func() time.Time
}

// NewService creates a new account service instance.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
	opts Options,
) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Service{
		log:      logger.With("service", "account"),
		accounts: accounts,
		tokens:   tokens,
		tx:       tx,
		jwt:      jwt,
		opts:     opts,
		now:      time.Now,
	}
}

// issueTokens generates access and refresh tokens for the account, stores
// the refresh token hash and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, acc domain.Account) (AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(acc.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokens.Create(ctx, domain.RefreshToken{
		ID:        uuid.New(),
		AccountID: acc.ID,
		TokenHash: hashRefresh,
		ExpiresAt: s.now().Add(s.opts.RefreshTokenTTL),
	}); err != nil {
		return AuthResult{}, fmt.Errorf("store refresh token: %w", err)
	}

	return AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		Account:      acc,
	}, nil
}

func (s *Service) today() domain.Date {
	return domain.Today(s.now(), s.opts.Location)
}
