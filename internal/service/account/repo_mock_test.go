package account

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	CreateFunc          func(ctx context.Context, acc domain.Account, passwordHash string) (domain.Account, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (domain.Account, error)
	GetCredentialsFunc  func(ctx context.Context, email string) (domain.Account, string, error)
	GetPasswordHashFunc func(ctx context.Context, id uuid.UUID) (string, error)
	UpdateFunc          func(ctx context.Context, acc domain.Account) (domain.Account, error)
	UpdatePasswordFunc  func(ctx context.Context, id uuid.UUID, passwordHash string, now time.Time) error
	CreateSettingsFunc  func(ctx context.Context, s domain.AccountSettings) error
	GetSettingsFunc     func(ctx context.Context, accountID uuid.UUID) (domain.AccountSettings, error)
	UpdateSettingsFunc  func(ctx context.Context, s domain.AccountSettings) (domain.AccountSettings, error)

	calls struct {
		Create []struct {
			Ctx          context.Context
			Acc          domain.Account
			PasswordHash string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetCredentials []struct {
			Ctx   context.Context
			Email string
		}
		GetPasswordHash []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			Acc domain.Account
		}
		UpdatePassword []struct {
			Ctx          context.Context
			ID           uuid.UUID
			PasswordHash string
			Now          time.Time
		}
		CreateSettings []struct {
			Ctx context.Context
			S   domain.AccountSettings
		}
		GetSettings []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		UpdateSettings []struct {
			Ctx context.Context
			S   domain.AccountSettings
		}
	}
	lockCreate          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockGetCredentials  sync.RWMutex
	lockGetPasswordHash sync.RWMutex
	lockUpdate          sync.RWMutex
	lockUpdatePassword  sync.RWMutex
	lockCreateSettings  sync.RWMutex
	lockGetSettings     sync.RWMutex
	lockUpdateSettings  sync.RWMutex
}

func (mock *accountRepoMock) Create(ctx context.Context, acc domain.Account, passwordHash string) (domain.Account, error) {
	if mock.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but accountRepo.Create was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Acc          domain.Account
		PasswordHash string
	}{Ctx: ctx, Acc: acc, PasswordHash: passwordHash}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, acc, passwordHash)
}

func (mock *accountRepoMock) CreateCalls() []struct {
	Ctx          context.Context
	Acc          domain.Account
	PasswordHash string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but accountRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *accountRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetCredentials(ctx context.Context, email string) (domain.Account, string, error) {
	if mock.GetCredentialsFunc == nil {
		panic("accountRepoMock.GetCredentialsFunc: method is nil but accountRepo.GetCredentials was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetCredentials.Lock()
	mock.calls.GetCredentials = append(mock.calls.GetCredentials, callInfo)
	mock.lockGetCredentials.Unlock()
	return mock.GetCredentialsFunc(ctx, email)
}

func (mock *accountRepoMock) GetCredentialsCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetCredentials.RLock()
	calls := mock.calls.GetCredentials
	mock.lockGetCredentials.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	if mock.GetPasswordHashFunc == nil {
		panic("accountRepoMock.GetPasswordHashFunc: method is nil but accountRepo.GetPasswordHash was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetPasswordHash.Lock()
	mock.calls.GetPasswordHash = append(mock.calls.GetPasswordHash, callInfo)
	mock.lockGetPasswordHash.Unlock()
	return mock.GetPasswordHashFunc(ctx, id)
}

func (mock *accountRepoMock) GetPasswordHashCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetPasswordHash.RLock()
	calls := mock.calls.GetPasswordHash
	mock.lockGetPasswordHash.RUnlock()
	return calls
}

func (mock *accountRepoMock) Update(ctx context.Context, acc domain.Account) (domain.Account, error) {
	if mock.UpdateFunc == nil {
		panic("accountRepoMock.UpdateFunc: method is nil but accountRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Acc domain.Account
	}{Ctx: ctx, Acc: acc}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, acc)
}

func (mock *accountRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Acc domain.Account
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *accountRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, now time.Time) error {
	if mock.UpdatePasswordFunc == nil {
		panic("accountRepoMock.UpdatePasswordFunc: method is nil but accountRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ID           uuid.UUID
		PasswordHash string
		Now          time.Time
	}{Ctx: ctx, ID: id, PasswordHash: passwordHash, Now: now}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, passwordHash, now)
}

func (mock *accountRepoMock) UpdatePasswordCalls() []struct {
	Ctx          context.Context
	ID           uuid.UUID
	PasswordHash string
	Now          time.Time
} {
	mock.lockUpdatePassword.RLock()
	calls := mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}

func (mock *accountRepoMock) CreateSettings(ctx context.Context, s domain.AccountSettings) error {
	if mock.CreateSettingsFunc == nil {
		panic("accountRepoMock.CreateSettingsFunc: method is nil but accountRepo.CreateSettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.AccountSettings
	}{Ctx: ctx, S: s}
	mock.lockCreateSettings.Lock()
	mock.calls.CreateSettings = append(mock.calls.CreateSettings, callInfo)
	mock.lockCreateSettings.Unlock()
	return mock.CreateSettingsFunc(ctx, s)
}

func (mock *accountRepoMock) CreateSettingsCalls() []struct {
	Ctx context.Context
	S   domain.AccountSettings
} {
	mock.lockCreateSettings.RLock()
	calls := mock.calls.CreateSettings
	mock.lockCreateSettings.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetSettings(ctx context.Context, accountID uuid.UUID) (domain.AccountSettings, error) {
	if mock.GetSettingsFunc == nil {
		panic("accountRepoMock.GetSettingsFunc: method is nil but accountRepo.GetSettings was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockGetSettings.Lock()
	mock.calls.GetSettings = append(mock.calls.GetSettings, callInfo)
	mock.lockGetSettings.Unlock()
	return mock.GetSettingsFunc(ctx, accountID)
}

func (mock *accountRepoMock) GetSettingsCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockGetSettings.RLock()
	calls := mock.calls.GetSettings
	mock.lockGetSettings.RUnlock()
	return calls
}

func (mock *accountRepoMock) UpdateSettings(ctx context.Context, s domain.AccountSettings) (domain.AccountSettings, error) {
	if mock.UpdateSettingsFunc == nil {
		panic("accountRepoMock.UpdateSettingsFunc: method is nil but accountRepo.UpdateSettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.AccountSettings
	}{Ctx: ctx, S: s}
	mock.lockUpdateSettings.Lock()
	mock.calls.UpdateSettings = append(mock.calls.UpdateSettings, callInfo)
	mock.lockUpdateSettings.Unlock()
	return mock.UpdateSettingsFunc(ctx, s)
}

func (mock *accountRepoMock) UpdateSettingsCalls() []struct {
	Ctx context.Context
	S   domain.AccountSettings
} {
	mock.lockUpdateSettings.RLock()
	calls := mock.calls.UpdateSettings
	mock.lockUpdateSettings.RUnlock()
	return calls
}

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc             func(ctx context.Context, t domain.RefreshToken) error
	GetByHashFunc          func(ctx context.Context, tokenHash string) (domain.RefreshToken, error)
	RevokeByHashFunc       func(ctx context.Context, tokenHash string) error
	RevokeAllByAccountFunc func(ctx context.Context, accountID uuid.UUID) error
	DeleteExpiredFunc      func(ctx context.Context) (int64, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   domain.RefreshToken
		}
		GetByHash []struct {
			Ctx       context.Context
			TokenHash string
		}
		RevokeByHash []struct {
			Ctx       context.Context
			TokenHash string
		}
		RevokeAllByAccount []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		DeleteExpired []struct {
			Ctx context.Context
		}
	}
	lockCreate             sync.RWMutex
	lockGetByHash          sync.RWMutex
	lockRevokeByHash       sync.RWMutex
	lockRevokeAllByAccount sync.RWMutex
	lockDeleteExpired      sync.RWMutex
}

func (mock *tokenRepoMock) Create(ctx context.Context, t domain.RefreshToken) error {
	if mock.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but tokenRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.RefreshToken
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tokenRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   domain.RefreshToken
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (domain.RefreshToken, error) {
	if mock.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but tokenRepo.GetByHash was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockGetByHash.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, callInfo)
	mock.lockGetByHash.Unlock()
	return mock.GetByHashFunc(ctx, tokenHash)
}

func (mock *tokenRepoMock) GetByHashCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockGetByHash.RLock()
	calls := mock.calls.GetByHash
	mock.lockGetByHash.RUnlock()
	return calls
}

func (mock *tokenRepoMock) RevokeByHash(ctx context.Context, tokenHash string) error {
	if mock.RevokeByHashFunc == nil {
		panic("tokenRepoMock.RevokeByHashFunc: method is nil but tokenRepo.RevokeByHash was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockRevokeByHash.Lock()
	mock.calls.RevokeByHash = append(mock.calls.RevokeByHash, callInfo)
	mock.lockRevokeByHash.Unlock()
	return mock.RevokeByHashFunc(ctx, tokenHash)
}

func (mock *tokenRepoMock) RevokeByHashCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockRevokeByHash.RLock()
	calls := mock.calls.RevokeByHash
	mock.lockRevokeByHash.RUnlock()
	return calls
}

func (mock *tokenRepoMock) RevokeAllByAccount(ctx context.Context, accountID uuid.UUID) error {
	if mock.RevokeAllByAccountFunc == nil {
		panic("tokenRepoMock.RevokeAllByAccountFunc: method is nil but tokenRepo.RevokeAllByAccount was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockRevokeAllByAccount.Lock()
	mock.calls.RevokeAllByAccount = append(mock.calls.RevokeAllByAccount, callInfo)
	mock.lockRevokeAllByAccount.Unlock()
	return mock.RevokeAllByAccountFunc(ctx, accountID)
}

func (mock *tokenRepoMock) RevokeAllByAccountCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockRevokeAllByAccount.RLock()
	calls := mock.calls.RevokeAllByAccount
	mock.lockRevokeAllByAccount.RUnlock()
	return calls
}

func (mock *tokenRepoMock) DeleteExpired(ctx context.Context) (int64, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("tokenRepoMock.DeleteExpiredFunc: method is nil but tokenRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx)
}

func (mock *tokenRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(accountID uuid.UUID) (string, error)
	ValidateAccessTokenFunc  func(token string) (uuid.UUID, error)
	GenerateRefreshTokenFunc func() (string, string, error)

	calls struct {
		GenerateAccessToken []struct {
			AccountID uuid.UUID
		}
		ValidateAccessToken []struct {
			Token string
		}
		GenerateRefreshToken []struct{}
	}
	lockGenerateAccessToken  sync.RWMutex
	lockValidateAccessToken  sync.RWMutex
	lockGenerateRefreshToken sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(accountID uuid.UUID) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		AccountID uuid.UUID
	}{AccountID: accountID}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(accountID)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	AccountID uuid.UUID
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *jwtManagerMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	mock.lockValidateAccessToken.RLock()
	calls := mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	if mock.GenerateRefreshTokenFunc == nil {
		panic("jwtManagerMock.GenerateRefreshTokenFunc: method is nil but jwtManager.GenerateRefreshToken was just called")
	}
	mock.lockGenerateRefreshToken.Lock()
	mock.calls.GenerateRefreshToken = append(mock.calls.GenerateRefreshToken, struct{}{})
	mock.lockGenerateRefreshToken.Unlock()
	return mock.GenerateRefreshTokenFunc()
}

func (mock *jwtManagerMock) GenerateRefreshTokenCalls() []struct{} {
	mock.lockGenerateRefreshToken.RLock()
	calls := mock.calls.GenerateRefreshToken
	mock.lockGenerateRefreshToken.RUnlock()
	return calls
}
