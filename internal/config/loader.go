package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when no config file is named. It is optional.
const DefaultPath = "./config.yaml"

// Load reads the file named by CONFIG_PATH (or DefaultPath) plus the
// environment. See LoadFile.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// LoadFile reads configuration from path and the environment, then
// validates it. Environment values win over the file, and env-default tags
// fill the rest. An empty path falls back to DefaultPath, which may be
// absent; a named path must exist.
func LoadFile(path string) (*Config, error) {
	required := path != ""
	if !required {
		path = DefaultPath
	}

	var cfg Config
	if err := read(path, required, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path string, required bool, cfg *Config) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	case required || !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, err)
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}
	return nil
}
