package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads the file named by CONFIG_PATH, or ./config.yaml when the
// variable is empty. Environment variables override the file. Without
// CONFIG_PATH a missing default file is fine and env plus defaults apply.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFrom(path)
	}
	if _, err := os.Stat(defaultPath); errors.Is(err, fs.ErrNotExist) {
		var cfg Config
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
		return validated(&cfg)
	}
	return LoadFrom(defaultPath)
}

// LoadFrom reads path, applies environment overrides and validates.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return validated(&cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
