package bundle

// Policy is a named, typed unit of gateway behavior attachable to flow steps.
// The type tag is the policy file's XML root element name, e.g. "SpikeArrest".
type Policy struct {
	name       string
	policyType string
	fileName   string
}

// NewPolicy creates a policy entity.
func NewPolicy(name, policyType, fileName string) *Policy {
	return &Policy{name: name, policyType: policyType, fileName: fileName}
}

// Name returns the policy name steps reference.
func (p *Policy) Name() string { return p.name }

// Type returns the policy kind tag.
func (p *Policy) Type() string { return p.policyType }

// FileName returns the policy's source file relative to the bundle root,
// empty for policies constructed in memory.
func (p *Policy) FileName() string { return p.fileName }
