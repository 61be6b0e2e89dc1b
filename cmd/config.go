package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/chamander/harry/internal/inspect"
)

// Config holds the defaults harry reads from the environment. Command-line
// flags override them.
type Config struct {
	Format []string `env:"HARRY_FORMAT" envDefault:"newline" envSeparator:","`
	Shell  string   `env:"HARRY_SHELL"  envDefault:"auto"`
	Debug  bool     `env:"HARRY_DEBUG"`
}

// LoadConfig parses and validates the HARRY_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := inspect.CheckFormats(cfg.Format); err != nil {
		return Config{}, fmt.Errorf("HARRY_FORMAT: %w", err)
	}
	if _, err := inspect.ShellTypeString(cfg.Shell); err != nil {
		return Config{}, fmt.Errorf("HARRY_SHELL: %w", err)
	}
	return cfg, nil
}
