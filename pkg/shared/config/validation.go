package config

import "fmt"

// ValidateConfig checks the semantic constraints the YAML schema cannot
// express.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is not set")
	}

	for _, prefix := range cfg.Lint.NamePrefixes {
		if prefix == "" {
			return fmt.Errorf("lint.name_prefixes must not contain empty entries")
		}
	}

	for _, id := range cfg.Lint.DisabledRules {
		if id == "" {
			return fmt.Errorf("lint.disabled_rules must not contain empty entries")
		}
	}

	if cfg.HttpClient.RetryCount < 0 {
		return fmt.Errorf("http_client.retry_count must not be negative")
	}

	return nil
}
