package rules

import (
	"fmt"
	"unicode"

	"github.com/bundlelint/bundlelint/pkg/bundle"
	"github.com/bundlelint/bundlelint/pkg/finding"
	"github.com/bundlelint/bundlelint/pkg/rule"
)

// DefaultRequiredPolicyType is the policy kind the PreFlow rule looks for when
// the configuration sets none.
const DefaultRequiredPolicyType = "SpikeArrest"

// RequiredPreFlowPolicy flags proxy endpoints whose PreFlow request steps
// reference no policy of the required type. An endpoint without a PreFlow at
// all cannot reference the policy either, so it is flagged the same way.
type RequiredPreFlowPolicy struct {
	meta       rule.Metadata
	policyType string
}

// NewRequiredPreFlowPolicy builds the rule for the given policy type, falling
// back to DefaultRequiredPolicyType when empty.
func NewRequiredPreFlowPolicy(policyType string) *RequiredPreFlowPolicy {
	if policyType == "" {
		policyType = DefaultRequiredPolicyType
	}

	return &RequiredPreFlowPolicy{
		meta: rule.Metadata{
			ID:       "PO501",
			Name:     fmt.Sprintf("%s policy in PreFlow", spacedName(policyType)),
			Message:  fmt.Sprintf("%s policy should be included in the PreFlow section.", spacedName(policyType)),
			Fatal:    false,
			Severity: finding.SeverityError,
			Kind:     rule.KindProxyEndpoint,
			Enabled:  true,
		},
		policyType: policyType,
	}
}

// Metadata returns the rule metadata.
func (r *RequiredPreFlowPolicy) Metadata() rule.Metadata { return r.meta }

// CheckProxyEndpoint reports the rule's default message when no PreFlow
// request step resolves to a policy of the required type.
func (r *RequiredPreFlowPolicy) CheckProxyEndpoint(ep *bundle.ProxyEndpoint) (bool, error) {
	if preFlow := ep.PreFlow(); preFlow != nil {
		parent := ep.Parent()
		for _, step := range preFlow.RequestSteps() {
			if parent == nil {
				break
			}
			if policy, ok := parent.PolicyByName(step.Name); ok && policy.Type() == r.policyType {
				return false, nil
			}
		}
	}

	ep.AddMessage(r.meta.Info(), r.meta.Message)
	return true, nil
}

// spacedName splits a CamelCase policy type into words: "SpikeArrest" becomes
// "Spike Arrest".
func spacedName(policyType string) string {
	var out []rune
	for i, r := range policyType {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(out[len(out)-1]) {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}
