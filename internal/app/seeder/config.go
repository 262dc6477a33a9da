package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo seeding settings.
type Config struct {
	Email        string `yaml:"email"          env:"SEEDER_EMAIL"          env-default:"demo@platrr.app"`
	Password     string `yaml:"password"       env:"SEEDER_PASSWORD"       env-default:"platrr-demo"`
	OwnerName    string `yaml:"owner_name"     env:"SEEDER_OWNER_NAME"     env-default:"Demo Owner"`
	BusinessName string `yaml:"business_name"  env:"SEEDER_BUSINESS_NAME"  env-default:"Platrr Demo Kitchen"`
	HistoryDays  int    `yaml:"history_days"   env:"SEEDER_HISTORY_DAYS"   env-default:"14"`
	OrdersPerDay int    `yaml:"orders_per_day" env:"SEEDER_ORDERS_PER_DAY" env-default:"12"`
	RandSeed     uint64 `yaml:"rand_seed"      env:"SEEDER_RAND_SEED"      env-default:"1"`
	IDPrefix     string `yaml:"id_prefix"      env:"SEEDER_ID_PREFIX"      env-default:"PLA"`
	BatchSize    int    `yaml:"batch_size"     env:"SEEDER_BATCH_SIZE"     env-default:"100"`
	DryRun       bool   `yaml:"dry_run"        env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
