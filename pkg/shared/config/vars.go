package config

import (
	"crypto/tls"
	"time"
)

// Config is the top-level bundlelint configuration, usually loaded from
// config.yml in the working directory or from a remote URL.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	HttpClient HttpClient `yaml:"http_client"`
	Lint       Lint       `yaml:"lint"`
}

type Logger struct {
	Level string `yaml:"level"`
}

type HttpClient struct {
	Debug            *bool           `yaml:"debug"`
	RetryCount       int             `yaml:"retry_count"`
	RetryWaitTime    time.Duration   `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration   `yaml:"retry_max_wait_time"`
	Timeout          time.Duration   `yaml:"timeout"`
	TlsClientConfig  TlsClientConfig `yaml:"tls_client_config"`
	Proxy            Proxy           `yaml:"proxy"`
}

type TlsClientConfig struct {
	Verify *bool `yaml:"verify"`
}

type Proxy struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// Lint configures the rule set and external plugin discovery.
type Lint struct {
	// NamePrefixes accepted by the bundle naming rule (defaults B2B-, B2C-).
	NamePrefixes []string `yaml:"name_prefixes"`
	// RequiredPolicyType looked for by the PreFlow rule (default SpikeArrest).
	RequiredPolicyType string `yaml:"required_policy_type"`
	// DisabledRules lists rule IDs that must not be dispatched.
	DisabledRules []string `yaml:"disabled_rules"`
	// PluginsFolder overrides the external rule plugin folder.
	PluginsFolder string `yaml:"plugins_folder"`
}

// RestyHttpClientConfig is the resolved HTTP client configuration after
// defaults are applied.
type RestyHttpClientConfig struct {
	Debug            bool
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
	Timeout          time.Duration
	TLSClientConfig  *tls.Config
	Proxy            string
}

// DefaultRestyConfig returns the HTTP client defaults used when the
// http_client section is absent or partial.
func DefaultRestyConfig() RestyHttpClientConfig {
	return RestyHttpClientConfig{
		RetryCount:       3,
		RetryWaitTime:    1 * time.Second,
		RetryMaxWaitTime: 10 * time.Second,
		Timeout:          30 * time.Second,
		TLSClientConfig:  &tls.Config{},
	}
}
