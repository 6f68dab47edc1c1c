// Package config loads runtime settings from PURSUIT_* environment
// variables.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/caarlos0/env/v11"
)

// Config holds every environment-driven setting. Command-line flags
// override Root and NoColor after loading.
type Config struct {
	Root         string `env:"PURSUIT_ROOT"          envDefault:"pipeline"`
	BlocksDir    string `env:"PURSUIT_BLOCKS_DIR"`
	MaterialsDir string `env:"PURSUIT_MATERIALS_DIR"`

	DailyMinutes     int `env:"PURSUIT_DAILY_MINUTES"       envDefault:"360"`
	CampaignDays     int `env:"PURSUIT_CAMPAIGN_DAYS"       envDefault:"14"`
	ExpiredFloorDays int `env:"PURSUIT_EXPIRED_FLOOR_DAYS"  envDefault:"3"`
	StaleDays        int `env:"PURSUIT_STALE_DAYS"          envDefault:"14"`
	PendingStaleDays int `env:"PURSUIT_PENDING_STALE_DAYS"  envDefault:"30"`

	LogUseCases bool `env:"PURSUIT_LOG_USECASES"`
	NoColor     bool `env:"PURSUIT_NO_COLOR"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return load(env.Options{})
}

// LoadFrom reads settings from the given variables instead of the process
// environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return load(env.Options{Environment: vars})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects non-positive windows and budgets.
func (c Config) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"PURSUIT_DAILY_MINUTES", c.DailyMinutes},
		{"PURSUIT_CAMPAIGN_DAYS", c.CampaignDays},
		{"PURSUIT_STALE_DAYS", c.StaleDays},
		{"PURSUIT_PENDING_STALE_DAYS", c.PendingStaleDays},
	}
	for _, chk := range checks {
		if chk.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", chk.name, chk.value)
		}
	}
	if c.ExpiredFloorDays < 0 {
		return fmt.Errorf("PURSUIT_EXPIRED_FLOOR_DAYS must not be negative, got %d", c.ExpiredFloorDays)
	}
	return nil
}

// Blocks returns the composition block directory, defaulting to
// <root>/blocks.
func (c Config) Blocks() string {
	if c.BlocksDir != "" {
		return c.BlocksDir
	}
	return filepath.Join(c.Root, "blocks")
}

// Materials returns the materials directory, defaulting to
// <root>/materials.
func (c Config) Materials() string {
	if c.MaterialsDir != "" {
		return c.MaterialsDir
	}
	return filepath.Join(c.Root, "materials")
}

// Policy overlays the configured thresholds on the default policy.
func (c Config) Policy() domain.Policy {
	p := domain.DefaultPolicy()
	p.DailyAvailableMin = c.DailyMinutes
	p.CampaignHorizonDays = c.CampaignDays
	p.ExpiredFloorDays = c.ExpiredFloorDays
	p.StaleDays = c.StaleDays
	p.PendingStaleDays = c.PendingStaleDays
	return p
}
