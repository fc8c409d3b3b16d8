package config

import (
	"fmt"

	"github.com/quillsec/phrasegen/internal/mnemonic"
)

// Validate checks the assembled configuration for operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if !mnemonic.ValidStrength(cfg.Strength) {
		return fmt.Errorf("strength must be 128, 160, 192, 224 or 256 bits, got %d", cfg.Strength)
	}
	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", cfg.Log.Level)
	}
	return nil
}
