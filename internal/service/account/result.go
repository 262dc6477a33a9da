package account

import "github.com/AFTLlimited25/Platrr-Business/internal/domain"

// AuthResult is returned by Register, Login and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	Account      domain.Account
}

// Profile is the account together with its settings.
type Profile struct {
	Account            domain.Account         `json:"account"`
	Settings           domain.AccountSettings `json:"settings"`
	TrialDaysRemaining int                    `json:"trialDaysRemaining"`
}
