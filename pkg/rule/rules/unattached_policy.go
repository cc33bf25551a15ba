package rules

import (
	"fmt"

	"github.com/bundlelint/bundlelint/pkg/bundle"
	"github.com/bundlelint/bundlelint/pkg/finding"
	"github.com/bundlelint/bundlelint/pkg/rule"
)

// UnattachedPolicy flags policies that no step of any endpoint flow
// references. Unreferenced policies are dead weight in the deployed bundle.
type UnattachedPolicy struct {
	meta rule.Metadata
}

// NewUnattachedPolicy builds the rule.
func NewUnattachedPolicy() *UnattachedPolicy {
	return &UnattachedPolicy{
		meta: rule.Metadata{
			ID:       "BN502",
			Name:     "Unattached policy",
			Message:  "Policy is not attached to any flow in the bundle.",
			Fatal:    false,
			Severity: finding.SeverityWarning,
			Kind:     rule.KindBundle,
			Enabled:  true,
		},
	}
}

// Metadata returns the rule metadata.
func (r *UnattachedPolicy) Metadata() rule.Metadata { return r.meta }

// CheckBundle reports one finding per policy that is never referenced by a
// step.
func (r *UnattachedPolicy) CheckBundle(b *bundle.Bundle) (bool, error) {
	attached := make(map[string]struct{})

	collect := func(flow *bundle.Flow) {
		if flow == nil {
			return
		}
		for _, step := range flow.RequestSteps() {
			attached[step.Name] = struct{}{}
		}
		for _, step := range flow.ResponseSteps() {
			attached[step.Name] = struct{}{}
		}
	}

	for _, ep := range b.ProxyEndpoints() {
		collect(ep.PreFlow())
	}
	for _, ep := range b.TargetEndpoints() {
		collect(ep.PreFlow())
	}

	flagged := false
	for _, policy := range b.Policies() {
		if _, ok := attached[policy.Name()]; ok {
			continue
		}
		flagged = true
		b.AddMessage(r.meta.Info(),
			fmt.Sprintf("Policy %s is not attached to any flow in the bundle.", policy.Name()))
	}
	return flagged, nil
}
