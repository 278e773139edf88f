// Package config loads the application configuration from an optional YAML
// file in the data directory, with environment overrides.
package config

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the flat shiftledger configuration.
type Config struct {
	Env     string `yaml:"env" env:"SHIFTLEDGER_ENV" env-default:"local"`
	DataDir string `yaml:"data_dir" env:"SHIFTLEDGER_DATA_DIR"`
	LogFile string `yaml:"log_file" env:"SHIFTLEDGER_LOG_FILE"`

	// RemoteDSN is the MySQL DSN of the remote mirror; must include
	// parseTime=true. Empty disables remote sync entirely.
	RemoteDSN string `yaml:"remote_dsn" env:"SHIFTLEDGER_REMOTE_DSN"`
}

// Load reads <data-dir>/config.yaml when present, then applies environment
// overrides. A missing file is not an error: the defaults describe a guest,
// local-only installation.
func Load() (*Config, error) {
	var cfg Config

	dir, err := defaultDataDir()
	if err != nil {
		return nil, err
	}
	cfg.DataDir = dir

	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.DataDir == "" {
		cfg.DataDir = dir
	}
	return &cfg, nil
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".shiftledger"), nil
}
