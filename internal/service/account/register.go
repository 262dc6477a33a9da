package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// Register creates an account with default settings and a trial starting
// today, then signs it in. Returns ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.opts.BcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("account.Register hash password: %w", err)
	}

	// Email uniqueness is enforced by a DB constraint.
	var created domain.Account
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now().UTC()
		acc, err := s.accounts.Create(txCtx, domain.Account{
			ID:           uuid.New(),
			Email:        input.Email,
			Name:         input.Name,
			BusinessName: input.BusinessName,
			PhoneNumber:  input.PhoneNumber,
			CreatedAt:    now,
			UpdatedAt:    now,
		}, string(hash))
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		settings := domain.DefaultAccountSettings(acc.ID, s.today(), s.opts.TrialDays)
		settings.UpdatedAt = now
		if err := s.accounts.CreateSettings(txCtx, settings); err != nil {
			return fmt.Errorf("create settings: %w", err)
		}

		created = acc
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return AuthResult{}, fmt.Errorf("account.Register: %w", domain.ErrAlreadyExists)
		}
		return AuthResult{}, fmt.Errorf("account.Register: %w", err)
	}

	result, err := s.issueTokens(ctx, created)
	if err != nil {
		return AuthResult{}, fmt.Errorf("account.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.String("account_id", created.ID.String()))

	return result, nil
}
