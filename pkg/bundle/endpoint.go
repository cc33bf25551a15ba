package bundle

// Step references a policy by name from a point in a flow. It is a plain
// value; copies handed out by flow accessors cannot alter the graph.
type Step struct {
	Name      string
	Condition string
}

// Flow is an ordered pair of request and response step sequences.
type Flow struct {
	name     string
	request  []Step
	response []Step
}

// NewFlow builds a flow from its request and response step sequences.
func NewFlow(name string, request, response []Step) *Flow {
	return &Flow{name: name, request: request, response: response}
}

// Name returns the flow name.
func (f *Flow) Name() string { return f.name }

// RequestSteps returns the request steps in declaration order.
func (f *Flow) RequestSteps() []Step {
	out := make([]Step, len(f.request))
	copy(out, f.request)
	return out
}

// ResponseSteps returns the response steps in declaration order.
func (f *Flow) ResponseSteps() []Step {
	out := make([]Step, len(f.response))
	copy(out, f.response)
	return out
}

// ProxyEndpoint is a proxy-side entry point within a bundle.
type ProxyEndpoint struct {
	reportSink

	name    string
	preFlow *Flow
	parent  *Bundle
}

// NewProxyEndpoint creates a proxy endpoint with the given name.
func NewProxyEndpoint(name string) *ProxyEndpoint {
	return &ProxyEndpoint{name: name}
}

// Name returns the endpoint name.
func (ep *ProxyEndpoint) Name() string { return ep.name }

// PreFlow returns the endpoint's PreFlow, nil when the endpoint declares none.
func (ep *ProxyEndpoint) PreFlow() *Flow { return ep.preFlow }

// SetPreFlow attaches the PreFlow. Loader/test helper.
func (ep *ProxyEndpoint) SetPreFlow(f *Flow) { ep.preFlow = f }

// Parent returns the owning bundle.
func (ep *ProxyEndpoint) Parent() *Bundle { return ep.parent }

// TargetEndpoint is a target-side entry point within a bundle.
type TargetEndpoint struct {
	reportSink

	name    string
	preFlow *Flow
	parent  *Bundle
}

// NewTargetEndpoint creates a target endpoint with the given name.
func NewTargetEndpoint(name string) *TargetEndpoint {
	return &TargetEndpoint{name: name}
}

// Name returns the endpoint name.
func (ep *TargetEndpoint) Name() string { return ep.name }

// PreFlow returns the endpoint's PreFlow, nil when the endpoint declares none.
func (ep *TargetEndpoint) PreFlow() *Flow { return ep.preFlow }

// SetPreFlow attaches the PreFlow. Loader/test helper.
func (ep *TargetEndpoint) SetPreFlow(f *Flow) { ep.preFlow = f }

// Parent returns the owning bundle.
func (ep *TargetEndpoint) Parent() *Bundle { return ep.parent }
