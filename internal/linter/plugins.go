package linter

import (
	"fmt"

	"github.com/bundlelint/bundlelint/pkg/bundle"
	"github.com/bundlelint/bundlelint/pkg/finding"
	"github.com/bundlelint/bundlelint/pkg/shared"
	"github.com/bundlelint/bundlelint/pkg/shared/errors"
)

// runExternalPlugins executes each external rule plugin once against a
// snapshot of the bundle and appends its findings to the result. A plugin
// whose descriptor is fatal aborts the run on failure; any other plugin
// failure only skips that plugin's contribution.
func (l *Linter) runExternalPlugins(b *bundle.Bundle, source string, result *Result) error {
	names := l.plugins
	if names == nil {
		discovered, err := shared.DiscoverRulePlugins(l.cfg)
		if err != nil {
			return err
		}
		names = discovered
	}
	if len(names) == 0 {
		return nil
	}

	snapshot := snapshotBundle(b, source)
	seen := make(map[string]struct{})
	for _, rl := range l.registry.All() {
		seen[rl.Metadata().ID] = struct{}{}
	}

	for _, name := range names {
		err := shared.WithRulePlugin(l.cfg, "plugin-rule", name, func(executor shared.RuleExecutor) error {
			descriptor, err := executor.Describe()
			if err != nil {
				return fmt.Errorf("describe: %w", err)
			}
			if !descriptor.Enabled {
				l.logger.Debug("rule plugin disabled, skipping", "plugin", name, "rule", descriptor.ID)
				return nil
			}
			if _, dup := seen[descriptor.ID]; dup {
				l.logger.Warn("rule plugin reuses a registered rule ID, skipping", "plugin", name, "rule", descriptor.ID)
				return nil
			}
			seen[descriptor.ID] = struct{}{}

			resp, err := executor.Check(shared.RuleCheckRequest{Bundle: snapshot})
			if err != nil {
				if descriptor.Fatal {
					return fmt.Errorf("check: %w", err)
				}
				l.logger.Error("rule plugin failed, skipping its contribution", "plugin", name, "error", err)
				return nil
			}

			for _, pf := range resp.Findings {
				result.addFinding(Finding{
					RuleID:     descriptor.ID,
					RuleName:   descriptor.Name,
					Severity:   finding.ParseSeverity(descriptor.Severity),
					Fatal:      descriptor.Fatal,
					EntityKind: pf.EntityKind,
					EntityName: pf.EntityName,
					Message:    pf.Message,
				})
			}
			l.logger.Debug("rule plugin executed", "plugin", name, "rule", descriptor.ID, "flagged", resp.Flagged)
			return nil
		})
		if err != nil {
			return errors.NewPluginError(name, err)
		}
	}
	return nil
}

// snapshotBundle projects the entity graph into the gob-friendly form shipped
// to plugin subprocesses.
func snapshotBundle(b *bundle.Bundle, source string) shared.BundleSnapshot {
	snapshot := shared.BundleSnapshot{
		Name:        b.Name(),
		Description: b.Description(),
		Source:      source,
	}

	for _, p := range b.Policies() {
		snapshot.Policies = append(snapshot.Policies, shared.PolicySnapshot{
			Name:     p.Name(),
			Type:     p.Type(),
			FileName: p.FileName(),
		})
	}
	for _, ep := range b.ProxyEndpoints() {
		snapshot.ProxyEndpoints = append(snapshot.ProxyEndpoints, shared.EndpointSnapshot{
			Name:    ep.Name(),
			PreFlow: snapshotFlow(ep.PreFlow()),
		})
	}
	for _, ep := range b.TargetEndpoints() {
		snapshot.TargetEndpoints = append(snapshot.TargetEndpoints, shared.EndpointSnapshot{
			Name:    ep.Name(),
			PreFlow: snapshotFlow(ep.PreFlow()),
		})
	}
	return snapshot
}

func snapshotFlow(f *bundle.Flow) *shared.FlowSnapshot {
	if f == nil {
		return nil
	}
	out := &shared.FlowSnapshot{Name: f.Name()}
	for _, step := range f.RequestSteps() {
		out.Request = append(out.Request, shared.StepSnapshot{Name: step.Name, Condition: step.Condition})
	}
	for _, step := range f.ResponseSteps() {
		out.Response = append(out.Response, shared.StepSnapshot{Name: step.Name, Condition: step.Condition})
	}
	return out
}
