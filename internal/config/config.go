// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds everything tunable from outside the binary.
type Config struct {
	// SavePath is where the pet's record lives. Empty means the default
	// under the user's home directory.
	SavePath string `env:"TINPET_SAVE_PATH"`

	// StoreBackend forces a persistence backend ("json" or "sqlite").
	// Empty lets the save path's extension decide.
	StoreBackend string `env:"TINPET_STORE"`

	// AutosaveSeconds is the background save cadence.
	AutosaveSeconds int `env:"TINPET_AUTOSAVE_SECONDS" envDefault:"60"`

	// PetName is the display name.
	PetName string `env:"TINPET_NAME" envDefault:"Tinny"`
}

// Load parses the environment and fills in derived defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SavePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SavePath = filepath.Join(home, ".tinpet", "save.json")
	}
	return cfg, nil
}
