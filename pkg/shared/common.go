package shared

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-plugin"

	"github.com/bundlelint/bundlelint/pkg/shared/config"
	"github.com/bundlelint/bundlelint/pkg/shared/logger"
)

const PluginTypeRule string = "rule"

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "BUNDLELINT",
	MagicCookieValue: "6c3f0e5b9a274d6c8f3f2b1a0d9e8c7b6a5f4e3d",
}

var PluginMap = map[string]plugin.Plugin{
	PluginTypeRule: &RulePlugin{},
}

// WithRulePlugin launches the named plugin executable from the plugins
// folder, hands the dispensed RuleExecutor to f and tears the subprocess down
// afterwards.
func WithRulePlugin(cfg *config.Config, loggerName string, pluginName string, f func(RuleExecutor) error) error {
	log := logger.NewLogger(cfg, loggerName)

	pluginPath := filepath.Join(config.GetPluginsHome(cfg), pluginName)
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: HandshakeConfig,
		Plugins:         PluginMap,
		Cmd:             exec.Command(pluginPath),
		Logger:          log,
	})
	defer client.Kill()

	rpcClient, err := client.Client()
	if err != nil {
		return fmt.Errorf("start rule plugin %q: %w", pluginName, err)
	}

	raw, err := rpcClient.Dispense(PluginTypeRule)
	if err != nil {
		return fmt.Errorf("dispense rule plugin %q: %w", pluginName, err)
	}

	executor, ok := raw.(RuleExecutor)
	if !ok {
		return fmt.Errorf("rule plugin %q does not implement the rule contract", pluginName)
	}

	return f(executor)
}

// DiscoverRulePlugins lists the executable names in the plugins folder in
// sorted order. A missing folder simply means no plugins are installed.
func DiscoverRulePlugins(cfg *config.Config) ([]string, error) {
	folder := config.GetPluginsHome(cfg)

	entries, err := os.ReadDir(folder)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read plugins folder %q: %w", folder, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.Mode()&0111 == 0 {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
