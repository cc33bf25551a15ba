package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/bundlelint/bundlelint/pkg/shared"
)

var (
	Version       = "unknown"
	GolangVersion = "unknown"
	BuildTime     = "unknown"
)

// minDescriptionLength is the shortest bundle description the rule accepts.
const minDescriptionLength = 25

// RuleDescLength is an example external rule: every bundle must carry a
// meaningful description.
type RuleDescLength struct {
	logger hclog.Logger
}

func (g *RuleDescLength) Describe() (shared.RuleDescriptor, error) {
	return shared.RuleDescriptor{
		ID:       "EX501",
		Name:     "Bundle description length",
		Message:  fmt.Sprintf("API Proxy description should be at least %d characters long.", minDescriptionLength),
		Severity: 1,
		Fatal:    false,
		Enabled:  true,
	}, nil
}

func (g *RuleDescLength) Check(req shared.RuleCheckRequest) (shared.RuleCheckResponse, error) {
	g.logger.Debug("checking bundle description", "bundle", req.Bundle.Name)

	var resp shared.RuleCheckResponse
	description := req.Bundle.Description

	switch {
	case description == "":
		resp.Flagged = true
		resp.Findings = append(resp.Findings, shared.RuleFinding{
			EntityKind: "Bundle",
			EntityName: req.Bundle.Name,
			Message:    "API Proxy has no description.",
		})
	case len(description) < minDescriptionLength:
		resp.Flagged = true
		resp.Findings = append(resp.Findings, shared.RuleFinding{
			EntityKind: "Bundle",
			EntityName: req.Bundle.Name,
			Message: fmt.Sprintf("API Proxy description is %d characters long, expected at least %d.",
				len(description), minDescriptionLength),
		})
	}

	return resp, nil
}

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Level:      hclog.Trace,
		Output:     os.Stderr,
		JSONFormat: true,
	})

	rule := &RuleDescLength{
		logger: logger,
	}

	var pluginMap = map[string]plugin.Plugin{
		shared.PluginTypeRule: &shared.RulePlugin{Impl: rule},
	}

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: shared.HandshakeConfig,
		Plugins:         pluginMap,
	})
}
