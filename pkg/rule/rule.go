// Package rule defines the contract a lint rule must satisfy and the registry
// the linter dispatches through. A rule is a pairing of immutable metadata and
// one visitor for the entity kind the metadata declares.
package rule

import (
	"github.com/bundlelint/bundlelint/pkg/bundle"
	"github.com/bundlelint/bundlelint/pkg/finding"
)

// NodeKind enumerates the entity kinds a rule can visit. It is a closed set:
// the registry routes through a typed table keyed by kind, so a rule declaring
// a kind it has no visitor for is rejected at registration time.
type NodeKind int

const (
	KindBundle NodeKind = iota
	KindProxyEndpoint
	KindTargetEndpoint
)

// String returns the entity kind label used in reports.
func (k NodeKind) String() string {
	switch k {
	case KindBundle:
		return "Bundle"
	case KindProxyEndpoint:
		return "ProxyEndpoint"
	case KindTargetEndpoint:
		return "TargetEndpoint"
	default:
		return "Unknown"
	}
}

// Metadata describes a rule. Every field is required and immutable for the
// lifetime of the rule instance; constructors own their copy.
type Metadata struct {
	// ID uniquely identifies the rule across the host's rule set.
	ID string
	// Name is the human-readable rule name.
	Name string
	// Message is the default finding message.
	Message string
	// Fatal marks rules whose internal failure aborts the whole run.
	Fatal bool
	// Severity applies to every finding the rule reports.
	Severity finding.Severity
	// Kind selects the visitor interface the rule implements.
	Kind NodeKind
	// Enabled rules are dispatched; disabled ones are registered but skipped.
	Enabled bool
}

// Info returns the metadata slice attached to reported messages.
func (m Metadata) Info() finding.RuleInfo {
	return finding.RuleInfo{
		ID:       m.ID,
		Name:     m.Name,
		Severity: m.Severity,
		Fatal:    m.Fatal,
	}
}

// Rule is the common surface of every lint rule. Concrete rules additionally
// implement the visitor interface matching their declared kind.
type Rule interface {
	Metadata() Metadata
}

// BundleRule inspects a whole bundle. The boolean result reports whether any
// violation was found; the error is reserved for unexpected internal failures
// and must stay nil for ordinary "violation" or "no violation" outcomes.
// Visitors read entity state through accessors only and report through the
// entity's AddMessage sink; running a visitor twice appends findings twice.
type BundleRule interface {
	Rule
	CheckBundle(b *bundle.Bundle) (bool, error)
}

// ProxyEndpointRule inspects one proxy endpoint. Same result convention as
// BundleRule. A missing optional substructure (e.g. no PreFlow) is not an
// error.
type ProxyEndpointRule interface {
	Rule
	CheckProxyEndpoint(ep *bundle.ProxyEndpoint) (bool, error)
}

// TargetEndpointRule inspects one target endpoint. Same result convention as
// BundleRule.
type TargetEndpointRule interface {
	Rule
	CheckTargetEndpoint(ep *bundle.TargetEndpoint) (bool, error)
}
