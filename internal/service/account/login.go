package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AFTLlimited25/Platrr-Business/internal/auth"
	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/pkg/ctxutil"
)

// Login authenticates with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	acc, hash, err := s.accounts.GetCredentials(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthResult{}, domain.ErrUnauthorized
		}
		return AuthResult{}, fmt.Errorf("account.Login get credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		return AuthResult{}, domain.ErrUnauthorized
	}

	result, err := s.issueTokens(ctx, acc)
	if err != nil {
		return AuthResult{}, fmt.Errorf("account.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "account logged in",
		slog.String("account_id", acc.ID.String()))

	return result, nil
}

// Refresh performs token rotation and returns new access/refresh tokens.
// An unknown, revoked or expired refresh token returns ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (AuthResult, error) {
	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return AuthResult{}, domain.ErrUnauthorized
		}
		return AuthResult{}, fmt.Errorf("account.Refresh get token: %w", err)
	}
	if token.IsRevoked() || token.IsExpired(s.now()) {
		return AuthResult{}, domain.ErrUnauthorized
	}

	acc, err := s.accounts.GetByID(ctx, token.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted account",
				slog.String("account_id", token.AccountID.String()))
			return AuthResult{}, domain.ErrUnauthorized
		}
		return AuthResult{}, fmt.Errorf("account.Refresh get account: %w", err)
	}

	if err := s.tokens.RevokeByHash(ctx, hash); err != nil {
		return AuthResult{}, fmt.Errorf("account.Refresh revoke token: %w", err)
	}

	result, err := s.issueTokens(ctx, acc)
	if err != nil {
		return AuthResult{}, fmt.Errorf("account.Refresh issue tokens: %w", err)
	}
	return result, nil
}

// Logout revokes all refresh tokens of the signed-in account. Access tokens
// already issued stay valid until they expire.
func (s *Service) Logout(ctx context.Context) error {
	accountID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByAccount(ctx, accountID); err != nil {
		return fmt.Errorf("account.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "account logged out", slog.String("account_id", accountID.String()))
	return nil
}

// ValidateToken validates an access token and returns the account ID.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	accountID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return accountID, nil
}

// CleanupExpiredTokens removes expired and revoked refresh tokens.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("account.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int64("count", count))
	}

	return count, nil
}
