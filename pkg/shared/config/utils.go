package config

import (
	"os"
	"path/filepath"
	"reflect"
)

// SetThen selects value when it is set, otherwise the default.
func SetThen[T any](value T, defaultValue T) T {
	if reflect.ValueOf(value).IsZero() {
		return defaultValue
	}
	return value
}

// BoolOrDefault dereferences an optional YAML bool, falling back to the
// default when the field was not set at all.
func BoolOrDefault(value *bool, defaultValue bool) bool {
	if value == nil {
		return defaultValue
	}
	return *value
}

// GetPluginsHome resolves the external rule plugin folder: configuration
// first, then the BUNDLELINT_PLUGINS_FOLDER environment variable, then
// ~/.bundlelint/plugins.
func GetPluginsHome(cfg *Config) string {
	if cfg != nil && cfg.Lint.PluginsFolder != "" {
		return cfg.Lint.PluginsFolder
	}
	if env := os.Getenv("BUNDLELINT_PLUGINS_FOLDER"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".bundlelint", "plugins")
	}
	return filepath.Join(home, ".bundlelint", "plugins")
}
