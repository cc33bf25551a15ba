package lint

import (
	"fmt"
	"strings"

	"github.com/bundlelint/bundlelint/internal/formatter"
)

// validateLintArgs resolves the source from the flag or the single positional
// argument and rejects inconsistent invocations before any work starts.
func validateLintArgs(options *RunOptionsLint, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("too many positional arguments: %d", len(args))
	}

	if len(args) == 1 {
		if options.Source != "" {
			return fmt.Errorf("both --source and a positional path were given")
		}
		options.Source = args[0]
	}

	if options.Source == "" {
		return fmt.Errorf("a bundle folder is required: pass --source or a positional path")
	}

	if !isKnownFormat(options.Format) {
		return fmt.Errorf("unknown format %q, supported formats: %s",
			options.Format, strings.Join(formatter.Names(), ", "))
	}

	return nil
}

func isKnownFormat(format string) bool {
	if format == "" {
		return true
	}
	for _, name := range formatter.Names() {
		if format == name {
			return true
		}
	}
	return false
}
