// Package rules carries the built-in lint rules shipped with bundlelint.
package rules

import (
	"fmt"
	"strings"

	"github.com/bundlelint/bundlelint/pkg/bundle"
	"github.com/bundlelint/bundlelint/pkg/finding"
	"github.com/bundlelint/bundlelint/pkg/rule"
)

// DefaultNamePrefixes are the accepted bundle name prefixes when the
// configuration sets none.
var DefaultNamePrefixes = []string{"B2B-", "B2C-"}

// NamePrefix flags bundles whose name starts with none of the accepted
// prefixes.
type NamePrefix struct {
	meta     rule.Metadata
	prefixes []string
}

// NewNamePrefix builds the rule for the given accepted prefixes, falling back
// to DefaultNamePrefixes when the list is empty.
func NewNamePrefix(prefixes []string) *NamePrefix {
	if len(prefixes) == 0 {
		prefixes = DefaultNamePrefixes
	}
	owned := make([]string, len(prefixes))
	copy(owned, prefixes)

	return &NamePrefix{
		meta: rule.Metadata{
			ID:       "BN501",
			Name:     "Bundle naming convention",
			Message:  fmt.Sprintf("API Proxy name should start with %s", prefixGlobs(owned)),
			Fatal:    false,
			Severity: finding.SeverityError,
			Kind:     rule.KindBundle,
			Enabled:  true,
		},
		prefixes: owned,
	}
}

// Metadata returns the rule metadata.
func (r *NamePrefix) Metadata() rule.Metadata { return r.meta }

// CheckBundle reports a finding when the bundle name matches no accepted
// prefix.
func (r *NamePrefix) CheckBundle(b *bundle.Bundle) (bool, error) {
	name := b.Name()
	for _, prefix := range r.prefixes {
		if strings.HasPrefix(name, prefix) {
			return false, nil
		}
	}

	b.AddMessage(r.meta.Info(),
		fmt.Sprintf("API Proxy name (%s) should start with %s", name, prefixGlobs(r.prefixes)))
	return true, nil
}

func prefixGlobs(prefixes []string) string {
	globs := make([]string, len(prefixes))
	for i, prefix := range prefixes {
		globs[i] = prefix + "*"
	}
	return strings.Join(globs, " or ")
}
