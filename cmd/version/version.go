package version

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bundlelint/bundlelint/pkg/shared"
	"github.com/bundlelint/bundlelint/pkg/shared/config"
)

var (
	AppConfig     *config.Config
	CoreVersion   = "unknown"
	GolangVersion = "unknown"
	BuildTime     = "unknown"
)

// Versions holds version information for the core binary.
type Versions struct {
	Version       string `json:"version"`
	GolangVersion string `json:"golang_version"`
	BuildTime     string `json:"build_time"`
}

// CoreVersions pairs the core version with the installed rule plugins.
type CoreVersions struct {
	Versions    Versions `json:"versions"`
	RulePlugins []string `json:"rule_plugins"`
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// NewVersionCmd creates a new cobra.Command for the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "version",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Print the version of the binary and the installed rule plugins",
		Run: func(cmd *cobra.Command, args []string) {
			plugins, err := shared.DiscoverRulePlugins(AppConfig)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to list rule plugins: %v\n", err)
			}

			info := CoreVersions{
				Versions: Versions{
					Version:       CoreVersion,
					GolangVersion: GolangVersion,
					BuildTime:     BuildTime,
				},
				RulePlugins: plugins,
			}

			data, err := json.MarshalIndent(info, "", "    ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to render version info: %v\n", err)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		},
	}
}
