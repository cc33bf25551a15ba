// Package formatter renders an aggregated lint result for people (table),
// machines (json) or code-scanning pipelines (sarif).
package formatter

import (
	"github.com/bundlelint/bundlelint/internal/git"
	"github.com/bundlelint/bundlelint/internal/linter"
	"github.com/bundlelint/bundlelint/pkg/shared/errors"
)

// Formatter renders an aggregated result to a string.
type Formatter interface {
	Format(result *linter.Result) (string, error)
}

// Options carries optional context formatters may embed in their output.
type Options struct {
	// RepoMetadata is the version-control provenance of the lint source, nil
	// when the source is not inside a git repository.
	RepoMetadata *git.RepositoryMetadata
}

// Get returns the formatter registered under name.
func Get(name string, opts Options) (Formatter, error) {
	switch name {
	case "", "table":
		return &tableFormatter{}, nil
	case "json":
		return &jsonFormatter{}, nil
	case "sarif":
		return &sarifFormatter{repoMetadata: opts.RepoMetadata}, nil
	default:
		return nil, errors.NewUnknownFormatterError(name)
	}
}

// Names lists the supported formatter names.
func Names() []string {
	return []string{"table", "json", "sarif"}
}
