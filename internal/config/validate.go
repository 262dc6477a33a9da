package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}

	switch strings.ToLower(c.Realtime.Broker) {
	case "postgres", "memory":
	case "redis":
		if !c.Redis.Enabled() {
			return fmt.Errorf("realtime.broker redis requires redis.addr")
		}
	default:
		return fmt.Errorf("realtime.broker must be one of postgres, redis, memory (got %q)", c.Realtime.Broker)
	}

	if err := c.Attendance.validate(); err != nil {
		return fmt.Errorf("attendance: %w", err)
	}

	if c.Auth.RefreshTokenTTL < c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl must not be shorter than auth.access_token_ttl")
	}

	if c.Account.TrialDays < 0 {
		return fmt.Errorf("account.trial_days must be >= 0 (got %d)", c.Account.TrialDays)
	}

	return nil
}

func (a *AttendanceConfig) validate() error {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", a.Timezone, err)
	}
	a.Location = loc

	prefix := strings.TrimSpace(a.EmployeeIDPrefix)
	if prefix == "" {
		return fmt.Errorf("employee_id_prefix is required")
	}
	if len(prefix) > 8 {
		return fmt.Errorf("employee_id_prefix max 8 characters (got %d)", len(prefix))
	}
	a.EmployeeIDPrefix = prefix

	return nil
}
