// Package config loads the optional crossdialog preference file and the
// environment overrides layered on top of it. The file is read-only
// input: nothing here ever writes configuration back.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables understood by the library.
const (
	// EnvPicker overrides the backend preference list, comma-separated
	// ("kdialog,portal").
	EnvPicker = "CROSSDIALOG_PICKER"

	// EnvStartDir is honored under its historical name: when set, dialogs
	// start in this directory unless the caller passes one explicitly.
	EnvStartDir = "FILEDIALOG_CWD"
)

// Config holds the file-level preferences.
type Config struct {
	// Pickers is the backend preference list, highest priority first.
	// Empty means the per-platform default order.
	Pickers []string `yaml:"pickers"`

	// LogLevel names the slog level for the default logger
	// (DEBUG/INFO/WARN/ERROR). Empty means INFO.
	LogLevel string `yaml:"log_level"`
}

// Default returns the zero configuration: platform-default backend order
// and INFO logging.
func Default() Config {
	return Config{}
}

// DefaultPath returns the location of the preference file inside the
// user configuration directory, or "" when that directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "crossdialog", "config.yaml")
}

// Load reads the preference file at path (DefaultPath() when empty) and
// applies environment overrides. A missing file is not an error; a
// malformed one is logged and skipped so a broken preference file never
// disables dialogs.
func Load(path string, log *slog.Logger) Config {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// No preference file, defaults apply.
		case err != nil:
			log.Warn("cannot read config file",
				slog.String("path", path),
				slog.Any("error", err))
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				log.Warn("malformed config file, ignoring",
					slog.String("path", path),
					slog.Any("error", err))
				cfg = Default()
			}
		}
	}

	if env := os.Getenv(EnvPicker); env != "" {
		cfg.Pickers = ParsePickerList(env)
	}

	return cfg
}

// ParsePickerList splits a comma-separated preference list, trimming
// whitespace and dropping empty entries.
func ParsePickerList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// StartDir returns the environment-provided start directory, or "".
func StartDir() string {
	return os.Getenv(EnvStartDir)
}
