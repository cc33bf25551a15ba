package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bundlelint/bundlelint/cmd/lint"
	"github.com/bundlelint/bundlelint/cmd/rules"
	"github.com/bundlelint/bundlelint/cmd/version"
	"github.com/bundlelint/bundlelint/pkg/shared/config"
	"github.com/bundlelint/bundlelint/pkg/shared/errors"
	"github.com/bundlelint/bundlelint/pkg/shared/httpclient"
	"github.com/bundlelint/bundlelint/pkg/shared/logger"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "bundlelint [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Bundlelint is a static analyzer for API-gateway proxy bundles.",
		Long: `Bundlelint lints API proxy bundles against built-in rules and external
rule plugins, and renders the aggregated report as a table, JSON, or SARIF.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file or URL (default is config.yml)")
	rootCmd.AddCommand(lint.LintCmd)
	rootCmd.AddCommand(rules.NewRulesCmd())
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and maps the outcome onto a process exit
// code: 0 clean, 2 findings at the failure threshold, 1 anything else.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		var lintFailure *errors.LintFailureError
		if stderrors.As(err, &lintFailure) {
			return lintFailure.ExitCode()
		}
		return errors.ExitError
	}
	return errors.ExitOK
}

func initConfig() {
	var err error

	explicit := cfgFile != ""
	if cfgFile == "" {
		cfgFile = "config.yml"
	}

	if strings.HasPrefix(cfgFile, "http://") || strings.HasPrefix(cfgFile, "https://") {
		AppConfig, err = httpclient.FetchRemoteConfig(logger.NewLogger(nil, "config"), cfgFile)
	} else {
		AppConfig, err = config.LoadConfig(cfgFile, explicit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config %q: %v\n", cfgFile, err)
		os.Exit(errors.ExitError)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(errors.ExitError)
	}

	lint.Init(AppConfig)
	rules.Init(AppConfig)
	version.Init(AppConfig)
}
