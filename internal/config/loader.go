package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Load reads configuration from the given path, layering the file
// over defaults and environment variables over the file. A missing
// file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse reads configuration from TOML bytes layered over defaults.
// Environment variables are not consulted.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides configuration from QUILL_* environment variables.
func applyEnv(cfg *Config) {
	if val, ok := os.LookupEnv("QUILL_WRAP_WIDTH"); ok {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Editor.WrapWidth = n
		}
	}
	if val, ok := os.LookupEnv("QUILL_LINE_ENDING"); ok {
		cfg.Files.LineEnding = val
	}
	if val, ok := os.LookupEnv("QUILL_STATE_PATH"); ok {
		cfg.Files.StatePath = val
	}
	if val, ok := os.LookupEnv("QUILL_LOG_LEVEL"); ok {
		cfg.Logging.Level = val
	}
	if val, ok := os.LookupEnv("QUILL_LOG_PATH"); ok {
		cfg.Logging.Path = val
	}
}
