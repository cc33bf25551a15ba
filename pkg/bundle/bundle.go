// Package bundle models an API-gateway proxy bundle as an entity graph that
// lint rules inspect through read accessors. Entities are immutable from a
// rule's point of view; the only mutating surface a rule may touch is the
// per-entity report sink.
package bundle

// Bundle is the root entity of a lintable package. It owns the ordered
// endpoint and policy collections constructed by the loader before any rule
// runs.
type Bundle struct {
	reportSink

	name            string
	description     string
	proxyEndpoints  []*ProxyEndpoint
	targetEndpoints []*TargetEndpoint
	policies        []*Policy
}

// NewBundle creates an empty bundle with the given name.
func NewBundle(name string) *Bundle {
	return &Bundle{name: name}
}

// Name returns the bundle name.
func (b *Bundle) Name() string { return b.name }

// Description returns the bundle description, empty when none was declared.
func (b *Bundle) Description() string { return b.description }

// SetDescription sets the bundle description. Loader/test helper, not part of
// the rule-facing surface.
func (b *Bundle) SetDescription(description string) { b.description = description }

// AddProxyEndpoint appends a proxy endpoint and wires its parent reference.
func (b *Bundle) AddProxyEndpoint(ep *ProxyEndpoint) {
	ep.parent = b
	b.proxyEndpoints = append(b.proxyEndpoints, ep)
}

// AddTargetEndpoint appends a target endpoint and wires its parent reference.
func (b *Bundle) AddTargetEndpoint(ep *TargetEndpoint) {
	ep.parent = b
	b.targetEndpoints = append(b.targetEndpoints, ep)
}

// AddPolicy appends a policy to the bundle.
func (b *Bundle) AddPolicy(p *Policy) {
	b.policies = append(b.policies, p)
}

// ProxyEndpoints returns the bundle's proxy endpoints in load order.
func (b *Bundle) ProxyEndpoints() []*ProxyEndpoint {
	out := make([]*ProxyEndpoint, len(b.proxyEndpoints))
	copy(out, b.proxyEndpoints)
	return out
}

// TargetEndpoints returns the bundle's target endpoints in load order.
func (b *Bundle) TargetEndpoints() []*TargetEndpoint {
	out := make([]*TargetEndpoint, len(b.targetEndpoints))
	copy(out, b.targetEndpoints)
	return out
}

// Policies returns the bundle's policies in load order.
func (b *Bundle) Policies() []*Policy {
	out := make([]*Policy, len(b.policies))
	copy(out, b.policies)
	return out
}

// PolicyByName resolves a step reference to the policy it names. The second
// return value is false when the bundle declares no such policy.
func (b *Bundle) PolicyByName(name string) (*Policy, bool) {
	for _, p := range b.policies {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}
