package linter

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundlelint/bundlelint/pkg/bundle"
	"github.com/bundlelint/bundlelint/pkg/finding"
	"github.com/bundlelint/bundlelint/pkg/rule"
	"github.com/bundlelint/bundlelint/pkg/rule/rules"
)

type faultyRule struct {
	meta rule.Metadata
	err  error
}

func (r *faultyRule) Metadata() rule.Metadata { return r.meta }

func (r *faultyRule) CheckBundle(b *bundle.Bundle) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	b.AddMessage(r.meta.Info(), r.meta.Message)
	return true, nil
}

// noPluginLinter builds a linter that runs no external plugins.
func noPluginLinter(t *testing.T, registered ...rule.Rule) (*Linter, *rule.Registry) {
	t.Helper()
	registry := rule.NewRegistry()
	require.NoError(t, registry.Register(registered...))
	return New(nil, hclog.NewNullLogger(), registry, []string{}), registry
}

func flaggedBundle(t *testing.T) *bundle.Bundle {
	t.Helper()
	b := bundle.NewBundle("TwentyFour")
	b.AddPolicy(bundle.NewPolicy("Q-1", "Quota", "policies/Q-1.xml"))
	ep := bundle.NewProxyEndpoint("default")
	ep.SetPreFlow(bundle.NewFlow("PreFlow", []bundle.Step{{Name: "Q-1"}}, nil))
	b.AddProxyEndpoint(ep)
	return b
}

func cleanBundle(t *testing.T) *bundle.Bundle {
	t.Helper()
	b := bundle.NewBundle("B2B-TEST")
	b.AddPolicy(bundle.NewPolicy("SA-1", "SpikeArrest", "policies/SA-1.xml"))
	ep := bundle.NewProxyEndpoint("default")
	ep.SetPreFlow(bundle.NewFlow("PreFlow", []bundle.Step{{Name: "SA-1"}}, nil))
	b.AddProxyEndpoint(ep)
	return b
}

func TestRunAggregatesFindings(t *testing.T) {
	l, _ := noPluginLinter(t, rules.Builtin(rules.Options{})...)

	result, err := l.Run(flaggedBundle(t), "testdata/bundle")
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "testdata/bundle", result.Source)
	assert.Equal(t, "TwentyFour", result.BundleName)

	grouped := result.ByRule()
	require.Len(t, grouped["BN501"], 1)
	require.Len(t, grouped["PO501"], 1)

	namePrefix := grouped["BN501"][0]
	assert.Equal(t, "Bundle", namePrefix.EntityKind)
	assert.Equal(t, "TwentyFour", namePrefix.EntityName)
	assert.Equal(t, "API Proxy name (TwentyFour) should start with B2B-* or B2C-*", namePrefix.Message)

	requiredPolicy := grouped["PO501"][0]
	assert.Equal(t, "ProxyEndpoint", requiredPolicy.EntityKind)
	assert.Equal(t, "default", requiredPolicy.EntityName)
	assert.Equal(t, "Spike Arrest policy should be included in the PreFlow section.", requiredPolicy.Message)

	assert.Equal(t, 2, result.Summary.Errors)
	assert.Equal(t, 0, result.Summary.Warnings)
	assert.True(t, result.Failed())
	assert.False(t, result.HasFatal())
}

func TestRunCleanBundle(t *testing.T) {
	l, _ := noPluginLinter(t, rules.Builtin(rules.Options{})...)

	result, err := l.Run(cleanBundle(t), "testdata/bundle")
	require.NoError(t, err)

	assert.Empty(t, result.Findings)
	assert.Equal(t, Summary{}, result.Summary)
	assert.False(t, result.Failed())
}

func TestRunSkipsDisabledRules(t *testing.T) {
	l, registry := noPluginLinter(t, rules.Builtin(rules.Options{})...)
	registry.Disable("BN501", "PO501")

	result, err := l.Run(flaggedBundle(t), "testdata/bundle")
	require.NoError(t, err)

	grouped := result.ByRule()
	assert.Empty(t, grouped["BN501"])
	assert.Empty(t, grouped["PO501"])
}

func TestRunFatalRuleFailureAbortsRun(t *testing.T) {
	l, _ := noPluginLinter(t, &faultyRule{
		meta: rule.Metadata{
			ID:       "FT001",
			Name:     "always fails",
			Severity: finding.SeverityError,
			Fatal:    true,
			Kind:     rule.KindBundle,
			Enabled:  true,
		},
		err: errors.New("boom"),
	})

	result, err := l.Run(bundle.NewBundle("B2B-TEST"), "testdata/bundle")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), `fatal rule "FT001" failed`)
}

func TestRunNonFatalRuleFailureIsSkipped(t *testing.T) {
	broken := &faultyRule{
		meta: rule.Metadata{
			ID:       "BR001",
			Name:     "broken",
			Severity: finding.SeverityError,
			Kind:     rule.KindBundle,
			Enabled:  true,
		},
		err: errors.New("boom"),
	}
	working := &faultyRule{
		meta: rule.Metadata{
			ID:       "OK001",
			Name:     "working",
			Message:  "bundle flagged",
			Severity: finding.SeverityWarning,
			Kind:     rule.KindBundle,
			Enabled:  true,
		},
	}
	l, _ := noPluginLinter(t, broken, working)

	result, err := l.Run(bundle.NewBundle("B2B-TEST"), "testdata/bundle")
	require.NoError(t, err)

	grouped := result.ByRule()
	assert.Empty(t, grouped["BR001"])
	require.Len(t, grouped["OK001"], 1)
	assert.Equal(t, "bundle flagged", grouped["OK001"][0].Message)
	assert.Equal(t, 1, result.Summary.Warnings)
}

func TestResultFailureThreshold(t *testing.T) {
	tests := []struct {
		name     string
		finding  Finding
		failed   bool
		hasFatal bool
	}{
		{name: "note", finding: Finding{Severity: finding.SeverityInfo}},
		{name: "warning", finding: Finding{Severity: finding.SeverityWarning}},
		{name: "error", finding: Finding{Severity: finding.SeverityError}, failed: true},
		{name: "fatal warning", finding: Finding{Severity: finding.SeverityWarning, Fatal: true}, failed: true, hasFatal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &Result{}
			result.addFinding(tt.finding)

			assert.Equal(t, tt.failed, result.Failed())
			assert.Equal(t, tt.hasFatal, result.HasFatal())
		})
	}
}

func TestSnapshotBundleProjection(t *testing.T) {
	b := bundle.NewBundle("B2B-TEST")
	b.SetDescription("orders facade")
	b.AddPolicy(bundle.NewPolicy("SA-1", "SpikeArrest", "policies/SA-1.xml"))

	proxy := bundle.NewProxyEndpoint("default")
	proxy.SetPreFlow(bundle.NewFlow("PreFlow",
		[]bundle.Step{{Name: "SA-1", Condition: "request.verb = \"POST\""}},
		[]bundle.Step{{Name: "AM-1"}}))
	b.AddProxyEndpoint(proxy)
	b.AddTargetEndpoint(bundle.NewTargetEndpoint("backend"))

	snapshot := snapshotBundle(b, "testdata/bundle")

	assert.Equal(t, "B2B-TEST", snapshot.Name)
	assert.Equal(t, "orders facade", snapshot.Description)
	assert.Equal(t, "testdata/bundle", snapshot.Source)

	require.Len(t, snapshot.Policies, 1)
	assert.Equal(t, "SpikeArrest", snapshot.Policies[0].Type)

	require.Len(t, snapshot.ProxyEndpoints, 1)
	preFlow := snapshot.ProxyEndpoints[0].PreFlow
	require.NotNil(t, preFlow)
	require.Len(t, preFlow.Request, 1)
	assert.Equal(t, "SA-1", preFlow.Request[0].Name)
	assert.Equal(t, "request.verb = \"POST\"", preFlow.Request[0].Condition)
	require.Len(t, preFlow.Response, 1)

	require.Len(t, snapshot.TargetEndpoints, 1)
	assert.Nil(t, snapshot.TargetEndpoints[0].PreFlow)
}
