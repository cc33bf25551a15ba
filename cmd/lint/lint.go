package lint

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/bundlelint/bundlelint/internal/formatter"
	"github.com/bundlelint/bundlelint/internal/git"
	"github.com/bundlelint/bundlelint/internal/linter"
	"github.com/bundlelint/bundlelint/pkg/bundle"
	"github.com/bundlelint/bundlelint/pkg/rule"
	builtin "github.com/bundlelint/bundlelint/pkg/rule/rules"
	"github.com/bundlelint/bundlelint/pkg/shared/config"
	"github.com/bundlelint/bundlelint/pkg/shared/errors"
	"github.com/bundlelint/bundlelint/pkg/shared/files"
	"github.com/bundlelint/bundlelint/pkg/shared/logger"
)

// RunOptionsLint holds the arguments for the lint command.
type RunOptionsLint struct {
	Source  string
	Format  string
	Output  string
	Plugins []string
}

var (
	AppConfig        *config.Config
	lintOptions      RunOptionsLint
	exampleLintUsage = `  # Linting a bundle folder with the default table output
  bundlelint lint --source /path/to/my-proxy

  # Linting with a positional path and SARIF output written to a file
  bundlelint lint /path/to/my-proxy --format sarif --output report.sarif

  # Linting with JSON output and only the named external rule plugins
  bundlelint lint -s /path/to/my-proxy -f json --plugins desclength`
)

// LintCmd represents the lint command.
var LintCmd = &cobra.Command{
	Use:                   "lint {--source/-s PATH | PATH} [--format/-f table|json|sarif] [--output/-o PATH] [--plugins NAME,...]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleLintUsage,
	Short:                 "Lints an API proxy bundle with the registered rules and plugins",
	RunE:                  runLintCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runLintCommand executes the lint command.
func runLintCommand(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(AppConfig, "core-lint")

	if err := validateLintArgs(&lintOptions, args); err != nil {
		log.Error("invalid lint arguments", "error", err)
		return err
	}

	source := files.ResolveSourceFolder(lintOptions.Source, log)

	b, err := bundle.Load(log, source)
	if err != nil {
		log.Error("failed to load bundle", "source", source, "error", err)
		return err
	}

	registry := rule.NewRegistry()
	if err := registry.Register(builtin.Builtin(builtin.Options{
		NamePrefixes:       AppConfig.Lint.NamePrefixes,
		RequiredPolicyType: AppConfig.Lint.RequiredPolicyType,
	})...); err != nil {
		return err
	}
	registry.Disable(AppConfig.Lint.DisabledRules...)

	var plugins []string
	if cmd.Flags().Changed("plugins") {
		plugins = lintOptions.Plugins
	}

	result, err := linter.New(AppConfig, log, registry, plugins).Run(b, source)
	if err != nil {
		log.Error("lint run failed", "error", err)
		return err
	}

	repoMetadata, err := git.CollectRepositoryMetadata(source)
	if err != nil {
		log.Debug("no repository provenance for source", "source", source, "reason", err)
		repoMetadata = nil
	}

	f, err := formatter.Get(lintOptions.Format, formatter.Options{RepoMetadata: repoMetadata})
	if err != nil {
		return err
	}
	rendered, err := f.Format(result)
	if err != nil {
		return err
	}

	if err := writeReport(rendered, lintOptions.Output, log); err != nil {
		log.Error("failed to write report", "error", err)
		return err
	}

	if result.Failed() {
		return errors.NewLintFailureError(result.Summary.Errors, result.Summary.Warnings, result.HasFatal())
	}

	log.Info("lint command completed successfully")
	return nil
}

func writeReport(rendered, outputPath string, log hclog.Logger) error {
	if outputPath == "" {
		fmt.Print(rendered)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(rendered), 0644); err != nil {
		return err
	}
	log.Info("report saved to file", "path", outputPath)
	return nil
}

// Initialize flags for the lint command.
func init() {
	LintCmd.Flags().StringVarP(&lintOptions.Source, "source", "s", "", "Path to the bundle folder to lint, or its parent.")
	LintCmd.Flags().StringVarP(&lintOptions.Format, "format", "f", "table", "Format for the report: table, json or sarif.")
	LintCmd.Flags().StringVarP(&lintOptions.Output, "output", "o", "", "Path to the output file for the report. Defaults to stdout.")
	LintCmd.Flags().StringSliceVar(&lintOptions.Plugins, "plugins", nil, "External rule plugins to run. Defaults to every plugin in the plugins folder.")
}
