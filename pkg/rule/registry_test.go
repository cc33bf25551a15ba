package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundlelint/bundlelint/pkg/bundle"
	"github.com/bundlelint/bundlelint/pkg/finding"
)

type stubBundleRule struct {
	meta Metadata
}

func (s *stubBundleRule) Metadata() Metadata { return s.meta }

func (s *stubBundleRule) CheckBundle(b *bundle.Bundle) (bool, error) { return false, nil }

type stubProxyRule struct {
	meta Metadata
}

func (s *stubProxyRule) Metadata() Metadata { return s.meta }

func (s *stubProxyRule) CheckProxyEndpoint(ep *bundle.ProxyEndpoint) (bool, error) {
	return false, nil
}

// mismatchedRule declares KindBundle but only implements the proxy endpoint
// visitor.
type mismatchedRule struct{}

func (m *mismatchedRule) Metadata() Metadata {
	return Metadata{ID: "XX001", Name: "mismatch", Kind: KindBundle, Enabled: true}
}

func (m *mismatchedRule) CheckProxyEndpoint(ep *bundle.ProxyEndpoint) (bool, error) {
	return false, nil
}

func newStubBundleRule(id string, enabled bool) *stubBundleRule {
	return &stubBundleRule{meta: Metadata{
		ID:       id,
		Name:     "stub " + id,
		Message:  "stub message",
		Severity: finding.SeverityWarning,
		Kind:     KindBundle,
		Enabled:  enabled,
	}}
}

func TestRegistryRegisterAndDispatch(t *testing.T) {
	registry := NewRegistry()

	first := newStubBundleRule("ST001", true)
	second := newStubBundleRule("ST002", true)
	proxy := &stubProxyRule{meta: Metadata{ID: "ST003", Kind: KindProxyEndpoint, Enabled: true}}

	require.NoError(t, registry.Register(first, second, proxy))

	bundleRules := registry.ForKind(KindBundle)
	require.Len(t, bundleRules, 2)
	assert.Equal(t, "ST001", bundleRules[0].Metadata().ID)
	assert.Equal(t, "ST002", bundleRules[1].Metadata().ID)

	proxyRules := registry.ForKind(KindProxyEndpoint)
	require.Len(t, proxyRules, 1)
	assert.Equal(t, "ST003", proxyRules[0].Metadata().ID)

	assert.Empty(t, registry.ForKind(KindTargetEndpoint))
	assert.Len(t, registry.All(), 3)
}

func TestRegistryRejectsDuplicateIDs(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(newStubBundleRule("ST001", true)))

	err := registry.Register(newStubBundleRule("ST001", true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate rule ID "ST001"`)
}

func TestRegistryRejectsMissingID(t *testing.T) {
	registry := NewRegistry()
	err := registry.Register(&stubBundleRule{meta: Metadata{Name: "anonymous", Kind: KindBundle}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no ID")
}

func TestRegistryRejectsVisitorMismatch(t *testing.T) {
	registry := NewRegistry()
	err := registry.Register(&mismatchedRule{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "implements no Bundle visitor")
}

func TestRegistryDisable(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(
		newStubBundleRule("ST001", true),
		newStubBundleRule("ST002", true),
		newStubBundleRule("ST003", false), // disabled in metadata
	))

	registry.Disable("ST002", "UNKNOWN")

	dispatchable := registry.ForKind(KindBundle)
	require.Len(t, dispatchable, 1)
	assert.Equal(t, "ST001", dispatchable[0].Metadata().ID)

	assert.True(t, registry.Enabled("ST001"))
	assert.False(t, registry.Enabled("ST002"))
	assert.False(t, registry.Enabled("ST003"))
	assert.False(t, registry.Enabled("UNKNOWN"))

	// disabled rules stay listed
	assert.Len(t, registry.All(), 3)
}

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "Bundle", KindBundle.String())
	assert.Equal(t, "ProxyEndpoint", KindProxyEndpoint.String())
	assert.Equal(t, "TargetEndpoint", KindTargetEndpoint.String())
	assert.Equal(t, "Unknown", NodeKind(42).String())
}
