package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/pkg/ctxutil"
)

// GetProfile returns the signed-in account with its settings.
func (s *Service) GetProfile(ctx context.Context) (Profile, error) {
	accountID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Profile{}, domain.ErrUnauthorized
	}

	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return Profile{}, fmt.Errorf("account.GetProfile: %w", err)
	}
	settings, err := s.accounts.GetSettings(ctx, accountID)
	if err != nil {
		return Profile{}, fmt.Errorf("account.GetProfile settings: %w", err)
	}

	return Profile{
		Account:            acc,
		Settings:           settings,
		TrialDaysRemaining: settings.TrialDaysRemaining(s.today()),
	}, nil
}

// UpdateProfile applies partial profile changes. Email is not editable.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (domain.Account, error) {
	if err := input.Validate(); err != nil {
		return domain.Account{}, err
	}

	accountID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Account{}, domain.ErrUnauthorized
	}

	var updated domain.Account
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		acc, err := s.accounts.GetByID(txCtx, accountID)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}
		if input.Name != nil {
			acc.Name = strings.TrimSpace(*input.Name)
		}
		if input.BusinessName != nil {
			acc.BusinessName = strings.TrimSpace(*input.BusinessName)
		}
		if input.PhoneNumber != nil {
			acc.PhoneNumber = strings.TrimSpace(*input.PhoneNumber)
		}
		acc.UpdatedAt = s.now().UTC()

		updated, err = s.accounts.Update(txCtx, acc)
		if err != nil {
			return fmt.Errorf("update account: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Account{}, fmt.Errorf("account.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("account_id", accountID.String()))

	return updated, nil
}

// GetSettings returns the signed-in account's settings.
func (s *Service) GetSettings(ctx context.Context) (domain.AccountSettings, error) {
	accountID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.AccountSettings{}, domain.ErrUnauthorized
	}

	settings, err := s.accounts.GetSettings(ctx, accountID)
	if err != nil {
		return domain.AccountSettings{}, fmt.Errorf("account.GetSettings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies partial notification preference changes.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (domain.AccountSettings, error) {
	accountID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.AccountSettings{}, domain.ErrUnauthorized
	}

	var updated domain.AccountSettings
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.accounts.GetSettings(txCtx, accountID)
		if err != nil {
			return fmt.Errorf("get current settings: %w", err)
		}

		next := input.apply(current)
		next.UpdatedAt = s.now().UTC()

		updated, err = s.accounts.UpdateSettings(txCtx, next)
		if err != nil {
			return fmt.Errorf("update settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.AccountSettings{}, fmt.Errorf("account.UpdateSettings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("account_id", accountID.String()))

	return updated, nil
}

// ChangePassword replaces the password after checking the current one and
// revokes every refresh token so other sessions must sign in again.
// A wrong current password is reported as a validation error on
// currentPassword.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	accountID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	current, err := s.accounts.GetPasswordHash(ctx, accountID)
	if err != nil {
		return fmt.Errorf("account.ChangePassword get hash: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(current), []byte(input.CurrentPassword)); err != nil {
		return domain.NewValidationError("currentPassword", "incorrect password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.opts.BcryptCost)
	if err != nil {
		return fmt.Errorf("account.ChangePassword hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.accounts.UpdatePassword(txCtx, accountID, string(hash), s.now().UTC()); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if err := s.tokens.RevokeAllByAccount(txCtx, accountID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("account.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed",
		slog.String("account_id", accountID.String()))
	return nil
}
