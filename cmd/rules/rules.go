package rules

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	builtin "github.com/bundlelint/bundlelint/pkg/rule/rules"
	"github.com/bundlelint/bundlelint/pkg/shared/config"
)

var AppConfig *config.Config

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// NewRulesCmd creates the rules command, listing the built-in rule set with
// the active configuration applied.
func NewRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "rules",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "List the built-in lint rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			disabled := make(map[string]struct{})
			for _, id := range AppConfig.Lint.DisabledRules {
				disabled[id] = struct{}{}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tKIND\tSEVERITY\tENABLED")
			for _, rl := range builtin.Builtin(builtin.Options{
				NamePrefixes:       AppConfig.Lint.NamePrefixes,
				RequiredPolicyType: AppConfig.Lint.RequiredPolicyType,
			}) {
				meta := rl.Metadata()
				_, off := disabled[meta.ID]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
					meta.ID, meta.Name, meta.Kind, meta.Severity, meta.Enabled && !off)
			}
			return w.Flush()
		},
	}
}
