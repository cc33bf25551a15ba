package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  level: debug
http_client:
  retry_count: 5
lint:
  name_prefixes:
    - INT-
    - EXT-
  required_policy_type: VerifyAPIKey
  disabled_rules:
    - BN502
  plugins_folder: /opt/bundlelint/plugins
`)

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 5, cfg.HttpClient.RetryCount)
	assert.Equal(t, []string{"INT-", "EXT-"}, cfg.Lint.NamePrefixes)
	assert.Equal(t, "VerifyAPIKey", cfg.Lint.RequiredPolicyType)
	assert.Equal(t, []string{"BN502"}, cfg.Lint.DisabledRules)
	assert.Equal(t, "/opt/bundlelint/plugins", cfg.Lint.PluginsFolder)
}

func TestLoadConfigMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.yml")

	t.Run("default path tolerates absence", func(t *testing.T) {
		cfg, err := LoadConfig(missing, false)
		require.NoError(t, err)
		assert.Equal(t, &Config{}, cfg)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		cfg, err := LoadConfig(missing, true)
		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestLoadConfigRejectsDirectory(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir(), true)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("lint:\n  required_policy_type: Quota\n"))
	require.NoError(t, err)
	assert.Equal(t, "Quota", cfg.Lint.RequiredPolicyType)

	_, err = ParseConfig([]byte("lint: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{name: "nil config", cfg: nil, wantErr: "config is not set"},
		{name: "empty config", cfg: &Config{}},
		{
			name:    "empty name prefix",
			cfg:     &Config{Lint: Lint{NamePrefixes: []string{"B2B-", ""}}},
			wantErr: "lint.name_prefixes",
		},
		{
			name:    "empty disabled rule",
			cfg:     &Config{Lint: Lint{DisabledRules: []string{""}}},
			wantErr: "lint.disabled_rules",
		},
		{
			name:    "negative retry count",
			cfg:     &Config{HttpClient: HttpClient{RetryCount: -1}},
			wantErr: "retry_count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSetThen(t *testing.T) {
	assert.Equal(t, "fallback", SetThen("", "fallback"))
	assert.Equal(t, "value", SetThen("value", "fallback"))
	assert.Equal(t, 3, SetThen(0, 3))
	assert.Equal(t, 7, SetThen(7, 3))
}

func TestBoolOrDefault(t *testing.T) {
	verify := false
	assert.True(t, BoolOrDefault(nil, true))
	assert.False(t, BoolOrDefault(&verify, true))
}

func TestGetPluginsHome(t *testing.T) {
	t.Run("config wins", func(t *testing.T) {
		t.Setenv("BUNDLELINT_PLUGINS_FOLDER", "/from/env")
		cfg := &Config{Lint: Lint{PluginsFolder: "/from/config"}}
		assert.Equal(t, "/from/config", GetPluginsHome(cfg))
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv("BUNDLELINT_PLUGINS_FOLDER", "/from/env")
		assert.Equal(t, "/from/env", GetPluginsHome(&Config{}))
	})

	t.Run("home default", func(t *testing.T) {
		t.Setenv("BUNDLELINT_PLUGINS_FOLDER", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".bundlelint", "plugins"), GetPluginsHome(nil))
	})
}
