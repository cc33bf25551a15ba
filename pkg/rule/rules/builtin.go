package rules

import "github.com/bundlelint/bundlelint/pkg/rule"

// Options carries the configurable knobs of the built-in rule set.
type Options struct {
	// NamePrefixes accepted by the bundle naming rule; empty means defaults.
	NamePrefixes []string
	// RequiredPolicyType looked for in PreFlows; empty means SpikeArrest.
	RequiredPolicyType string
}

// Builtin constructs the built-in rule set with the given options applied.
func Builtin(opts Options) []rule.Rule {
	return []rule.Rule{
		NewNamePrefix(opts.NamePrefixes),
		NewRequiredPreFlowPolicy(opts.RequiredPolicyType),
		NewUnattachedPolicy(),
	}
}
