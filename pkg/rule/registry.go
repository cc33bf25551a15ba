package rule

import "fmt"

// Registry is the typed lookup table from entity kind to the rules that visit
// it. Registration order is preserved per kind so runs are deterministic.
type Registry struct {
	byKind   map[NodeKind][]Rule
	ids      map[string]struct{}
	disabled map[string]struct{}
	all      []Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byKind:   make(map[NodeKind][]Rule),
		ids:      make(map[string]struct{}),
		disabled: make(map[string]struct{}),
	}
}

// Register adds rules to the registry. It rejects duplicate rule IDs and
// rules whose visitor interface does not match their declared kind, so a
// mismatch surfaces at startup instead of silently never dispatching.
func (r *Registry) Register(rules ...Rule) error {
	for _, rl := range rules {
		meta := rl.Metadata()
		if meta.ID == "" {
			return fmt.Errorf("rule %q has no ID", meta.Name)
		}
		if _, exists := r.ids[meta.ID]; exists {
			return fmt.Errorf("duplicate rule ID %q", meta.ID)
		}
		if err := checkVisitor(rl, meta.Kind); err != nil {
			return err
		}

		r.ids[meta.ID] = struct{}{}
		r.byKind[meta.Kind] = append(r.byKind[meta.Kind], rl)
		r.all = append(r.all, rl)
	}
	return nil
}

func checkVisitor(rl Rule, kind NodeKind) error {
	var ok bool
	switch kind {
	case KindBundle:
		_, ok = rl.(BundleRule)
	case KindProxyEndpoint:
		_, ok = rl.(ProxyEndpointRule)
	case KindTargetEndpoint:
		_, ok = rl.(TargetEndpointRule)
	default:
		return fmt.Errorf("rule %q declares unknown node kind %d", rl.Metadata().ID, kind)
	}
	if !ok {
		return fmt.Errorf("rule %q declares kind %s but implements no %s visitor",
			rl.Metadata().ID, kind, kind)
	}
	return nil
}

// Disable marks rule IDs as disabled without unregistering them. Unknown IDs
// are ignored so config listing a rule this build does not ship is harmless.
func (r *Registry) Disable(ids ...string) {
	for _, id := range ids {
		r.disabled[id] = struct{}{}
	}
}

// ForKind returns the dispatchable rules for an entity kind: registered for
// that kind, enabled in metadata and not disabled by configuration.
func (r *Registry) ForKind(kind NodeKind) []Rule {
	var out []Rule
	for _, rl := range r.byKind[kind] {
		meta := rl.Metadata()
		if !meta.Enabled {
			continue
		}
		if _, off := r.disabled[meta.ID]; off {
			continue
		}
		out = append(out, rl)
	}
	return out
}

// All returns every registered rule in registration order, including disabled
// ones. Used by the rules listing command.
func (r *Registry) All() []Rule {
	out := make([]Rule, len(r.all))
	copy(out, r.all)
	return out
}

// Enabled reports whether a registered rule would be dispatched.
func (r *Registry) Enabled(id string) bool {
	if _, off := r.disabled[id]; off {
		return false
	}
	for _, rl := range r.all {
		if meta := rl.Metadata(); meta.ID == id {
			return meta.Enabled
		}
	}
	return false
}
