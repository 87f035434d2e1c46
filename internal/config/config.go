// Package config loads and validates editor configuration.
//
// Configuration comes from a TOML file layered over built-in
// defaults, with QUILL_* environment variables taking precedence over
// both. A Watcher reloads the file on change.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/quilledit/quill/internal/engine/buffer"
)

// Config is the full editor configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Files   FilesConfig   `toml:"files"`
	Logging LoggingConfig `toml:"logging"`
}

// EditorConfig holds editing behavior settings.
type EditorConfig struct {
	// WrapWidth is the soft-wrap column width.
	WrapWidth int `toml:"wrap_width"`
}

// FilesConfig holds persistence settings.
type FilesConfig struct {
	// LineEnding is "auto", "lf", "crlf", or "cr". Auto keeps the
	// style detected when the file was opened.
	LineEnding string `toml:"line_ending"`

	// StatePath is where session state is stored. Empty means the
	// default location under the user config directory.
	StatePath string `toml:"state_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is "debug", "info", "warn", or "error".
	Level string `toml:"level"`

	// Path is the log file location. Empty disables file logging.
	Path string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			WrapWidth: 60,
		},
		Files: FilesConfig{
			LineEnding: "auto",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.Editor.WrapWidth <= 0 {
		return fmt.Errorf("editor.wrap_width must be positive, got %d", c.Editor.WrapWidth)
	}
	switch c.Files.LineEnding {
	case "auto", "lf", "crlf", "cr":
	default:
		return fmt.Errorf("files.line_ending must be auto, lf, crlf, or cr, got %q", c.Files.LineEnding)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

// LineEnding returns the configured line ending style. ok is false
// for "auto", where the caller keeps the detected style.
func (c Config) LineEnding() (buffer.LineEnding, bool) {
	switch c.Files.LineEnding {
	case "lf":
		return buffer.LineEndingLF, true
	case "crlf":
		return buffer.LineEndingCRLF, true
	case "cr":
		return buffer.LineEndingCR, true
	}
	return buffer.LineEndingLF, false
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "quill", "config.toml")
}

// DefaultStatePath returns the default session state location,
// honoring files.state_path when set.
func (c Config) DefaultStatePath() string {
	if c.Files.StatePath != "" {
		return c.Files.StatePath
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "quill", "state.json")
}
