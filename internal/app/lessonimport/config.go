package lessonimport

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds lesson import settings.
type Config struct {
	Dir    string `yaml:"dir"     env:"IMPORT_DIR"     env-default:"./lessons"`
	DryRun bool   `yaml:"dry_run" env:"IMPORT_DRY_RUN"`
}

// LoadConfig reads import configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("import config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("import config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("import config: read env: %w", err)
	}

	return &cfg, nil
}
