package shared

import (
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// RuleDescriptor is the metadata an external rule plugin declares for itself.
// Severity uses the numeric scale: 0 info, 1 warning, 2 error.
type RuleDescriptor struct {
	ID       string
	Name     string
	Message  string
	Severity int
	Fatal    bool
	Enabled  bool
}

// RuleFinding is a single violation reported by an external plugin, attributed
// to one entity of the snapshot.
type RuleFinding struct {
	EntityKind string
	EntityName string
	Message    string
}

// RuleCheckRequest carries the read-only bundle projection the plugin inspects.
type RuleCheckRequest struct {
	Bundle BundleSnapshot
}

// RuleCheckResponse returns the plugin's findings. Flagged mirrors the in-
// process visitor convention: true when any violation was found.
type RuleCheckResponse struct {
	Flagged  bool
	Findings []RuleFinding
}

// RuleExecutor is the interface an external rule plugin implements. Describe
// is called once per run before Check.
type RuleExecutor interface {
	Describe() (RuleDescriptor, error)
	Check(req RuleCheckRequest) (RuleCheckResponse, error)
}

// BundleSnapshot is a gob-friendly projection of the entity graph. Plugins
// receive a copy, so the host's graph stays read-only across the process
// boundary.
type BundleSnapshot struct {
	Name            string
	Description     string
	Source          string
	Policies        []PolicySnapshot
	ProxyEndpoints  []EndpointSnapshot
	TargetEndpoints []EndpointSnapshot
}

type PolicySnapshot struct {
	Name     string
	Type     string
	FileName string
}

type EndpointSnapshot struct {
	Name    string
	PreFlow *FlowSnapshot
}

type FlowSnapshot struct {
	Name     string
	Request  []StepSnapshot
	Response []StepSnapshot
}

type StepSnapshot struct {
	Name      string
	Condition string
}

type RuleRPCClient struct{ client *rpc.Client }

func (g *RuleRPCClient) Describe() (RuleDescriptor, error) {
	var resp RuleDescriptor
	err := g.client.Call("Plugin.Describe", struct{}{}, &resp)
	if err != nil {
		return resp, err
	}
	return resp, nil
}

func (g *RuleRPCClient) Check(req RuleCheckRequest) (RuleCheckResponse, error) {
	var resp RuleCheckResponse
	err := g.client.Call("Plugin.Check", req, &resp)
	if err != nil {
		return resp, err
	}
	return resp, nil
}

type RuleRPCServer struct {
	Impl RuleExecutor
}

func (s *RuleRPCServer) Describe(args struct{}, resp *RuleDescriptor) error {
	var err error
	*resp, err = s.Impl.Describe()
	return err
}

func (s *RuleRPCServer) Check(args RuleCheckRequest, resp *RuleCheckResponse) error {
	var err error
	*resp, err = s.Impl.Check(args)
	return err
}

type RulePlugin struct {
	Impl RuleExecutor
}

func (p *RulePlugin) Server(*plugin.MuxBroker) (interface{}, error) {
	return &RuleRPCServer{Impl: p.Impl}, nil
}

func (RulePlugin) Client(b *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &RuleRPCClient{client: c}, nil
}
