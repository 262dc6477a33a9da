package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Redis      RedisConfig      `yaml:"redis"`
	Realtime   RealtimeConfig   `yaml:"realtime"`
	Attendance AttendanceConfig `yaml:"attendance"`
	Account    AccountConfig    `yaml:"account"`
	Retention  RetentionConfig  `yaml:"retention"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Guest-Session,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins splits AllowedOrigins into a trimmed list.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods into a trimmed list.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders into a trimmed list.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	TerminalRPM     int           `yaml:"terminal_rpm"     env:"SERVER_TERMINAL_RPM"     env-default:"30"`
	AuthRPM         int           `yaml:"auth_rpm"         env:"SERVER_AUTH_RPM"         env-default:"20"`
	// TrustForwarded keys rate limits on X-Forwarded-For. Enable only behind
	// a proxy that overwrites the header.
	TrustForwarded bool `yaml:"trust_forwarded" env:"SERVER_TRUST_FORWARDED" env-default:"false"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string { return net.JoinHostPort(c.Host, strconv.Itoa(c.Port)) }

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"        env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"        env:"AUTH_JWT_ISSUER"        env-default:"platrr"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"24h"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"AUTH_REFRESH_TOKEN_TTL" env-default:"720h"`
	BcryptCost      int           `yaml:"bcrypt_cost"       env:"AUTH_BCRYPT_COST"       env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RedisConfig holds the optional Redis connection. An empty Addr disables Redis.
type RedisConfig struct {
	Addr         string        `yaml:"addr"          env:"REDIS_ADDR"`
	Password     string        `yaml:"password"      env:"REDIS_PASSWORD"`
	DB           int           `yaml:"db"            env:"REDIS_DB"            env-default:"0"`
	DirectoryTTL time.Duration `yaml:"directory_ttl" env:"REDIS_DIRECTORY_TTL" env-default:"1m"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool { return strings.TrimSpace(c.Addr) != "" }

// RealtimeConfig selects how change events travel between instances.
type RealtimeConfig struct {
	Broker       string        `yaml:"broker"        env:"REALTIME_BROKER"        env-default:"postgres"`
	Channel      string        `yaml:"channel"       env:"REALTIME_CHANNEL"       env-default:"platrr_changes"`
	CoalesceWait time.Duration `yaml:"coalesce_wait" env:"REALTIME_COALESCE_WAIT" env-default:"50ms"`

	// AttendanceDays is how many days, today included, the live attendance
	// collection carries.
	AttendanceDays int `yaml:"attendance_days" env:"REALTIME_ATTENDANCE_DAYS" env-default:"1"`
}

// AttendanceConfig holds attendance terminal settings.
type AttendanceConfig struct {
	Timezone         string `yaml:"timezone"           env:"ATTENDANCE_TIMEZONE"            env-default:"UTC"`
	EmployeeIDPrefix string `yaml:"employee_id_prefix" env:"ATTENDANCE_EMPLOYEE_ID_PREFIX"  env-default:"PLA"`

	// ScopedLookup confines the public terminal to employees of the
	// signed-in account. Off by default, so the terminal resolves IDs
	// across every account.
	ScopedLookup bool `yaml:"scoped_lookup" env:"ATTENDANCE_SCOPED_LOOKUP" env-default:"false"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// GlobalLookup reports whether employee IDs resolve across accounts.
func (c AttendanceConfig) GlobalLookup() bool { return !c.ScopedLookup }

// AccountConfig holds account defaults.
type AccountConfig struct {
	TrialDays int `yaml:"trial_days" env:"ACCOUNT_TRIAL_DAYS" env-default:"30"`
	// GuestIdleTTL drops in-memory guest data not touched for this long.
	GuestIdleTTL time.Duration `yaml:"guest_idle_ttl" env:"ACCOUNT_GUEST_IDLE_TTL" env-default:"12h"`
}

// RetentionConfig holds data retention used by the cleanup command.
type RetentionConfig struct {
	ActivityDays   int `yaml:"activity_days"   env:"RETENTION_ACTIVITY_DAYS"   env-default:"90"`
	AttendanceDays int `yaml:"attendance_days" env:"RETENTION_ATTENDANCE_DAYS" env-default:"365"`
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
