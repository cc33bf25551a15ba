// Package linter walks a loaded bundle once, offers every enabled rule
// matching each entity kind a chance to inspect and report, and aggregates
// the per-entity reports into a single result.
package linter

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/bundlelint/bundlelint/pkg/bundle"
	"github.com/bundlelint/bundlelint/pkg/finding"
	"github.com/bundlelint/bundlelint/pkg/rule"
	"github.com/bundlelint/bundlelint/pkg/shared/config"
)

// Linter dispatches registered rules and external rule plugins over a bundle.
type Linter struct {
	logger   hclog.Logger
	registry *rule.Registry
	cfg      *config.Config
	plugins  []string
}

// New creates a linter. plugins lists the external rule plugin executables to
// run; nil means "discover everything in the plugins folder".
func New(cfg *config.Config, logger hclog.Logger, registry *rule.Registry, plugins []string) *Linter {
	return &Linter{
		logger:   logger,
		registry: registry,
		cfg:      cfg,
		plugins:  plugins,
	}
}

// Run performs one single-pass lint of the bundle: the bundle node first,
// then proxy endpoints, then target endpoints, each visited once by every
// enabled matching rule in registration order. A visitor error from a fatal
// rule aborts the run; other visitor errors skip that rule's contribution.
func (l *Linter) Run(b *bundle.Bundle, source string) (*Result, error) {
	result := &Result{
		RunID:      uuid.New().String(),
		Source:     source,
		BundleName: b.Name(),
	}

	if err := l.checkBundle(b); err != nil {
		return nil, err
	}
	for _, ep := range b.ProxyEndpoints() {
		if err := l.checkProxyEndpoint(ep); err != nil {
			return nil, err
		}
	}
	for _, ep := range b.TargetEndpoints() {
		if err := l.checkTargetEndpoint(ep); err != nil {
			return nil, err
		}
	}

	l.collect(b, result)

	if err := l.runExternalPlugins(b, source, result); err != nil {
		return nil, err
	}

	l.logger.Info("lint run finished",
		"run_id", result.RunID,
		"bundle", result.BundleName,
		"errors", result.Summary.Errors,
		"warnings", result.Summary.Warnings,
		"notes", result.Summary.Notes)
	return result, nil
}

func (l *Linter) checkBundle(b *bundle.Bundle) error {
	for _, rl := range l.registry.ForKind(rule.KindBundle) {
		visitor := rl.(rule.BundleRule)
		flagged, err := visitor.CheckBundle(b)
		if err := l.handleVisitorError(rl, err); err != nil {
			return err
		}
		l.logger.Debug("rule executed", "rule", rl.Metadata().ID, "entity", b.Name(), "flagged", flagged)
	}
	return nil
}

func (l *Linter) checkProxyEndpoint(ep *bundle.ProxyEndpoint) error {
	for _, rl := range l.registry.ForKind(rule.KindProxyEndpoint) {
		visitor := rl.(rule.ProxyEndpointRule)
		flagged, err := visitor.CheckProxyEndpoint(ep)
		if err := l.handleVisitorError(rl, err); err != nil {
			return err
		}
		l.logger.Debug("rule executed", "rule", rl.Metadata().ID, "entity", ep.Name(), "flagged", flagged)
	}
	return nil
}

func (l *Linter) checkTargetEndpoint(ep *bundle.TargetEndpoint) error {
	for _, rl := range l.registry.ForKind(rule.KindTargetEndpoint) {
		visitor := rl.(rule.TargetEndpointRule)
		flagged, err := visitor.CheckTargetEndpoint(ep)
		if err := l.handleVisitorError(rl, err); err != nil {
			return err
		}
		l.logger.Debug("rule executed", "rule", rl.Metadata().ID, "entity", ep.Name(), "flagged", flagged)
	}
	return nil
}

// handleVisitorError applies the host policy for unexpected rule failures:
// fatal rules abort the run, others lose their contribution for this entity.
func (l *Linter) handleVisitorError(rl rule.Rule, err error) error {
	if err == nil {
		return nil
	}
	meta := rl.Metadata()
	if meta.Fatal {
		return fmt.Errorf("fatal rule %q failed: %w", meta.ID, err)
	}
	l.logger.Error("rule failed, skipping its contribution", "rule", meta.ID, "error", err)
	return nil
}

// collect drains the per-entity report sinks into the aggregated result, in
// walk order: bundle, proxy endpoints, target endpoints.
func (l *Linter) collect(b *bundle.Bundle, result *Result) {
	appendMessages := func(kind rule.NodeKind, entityName string, messages []finding.Message) {
		for _, msg := range messages {
			result.addFinding(Finding{
				RuleID:     msg.Rule.ID,
				RuleName:   msg.Rule.Name,
				Severity:   msg.Rule.Severity,
				Fatal:      msg.Rule.Fatal,
				EntityKind: kind.String(),
				EntityName: entityName,
				Message:    msg.Text,
			})
		}
	}

	appendMessages(rule.KindBundle, b.Name(), b.Report())
	for _, ep := range b.ProxyEndpoints() {
		appendMessages(rule.KindProxyEndpoint, ep.Name(), ep.Report())
	}
	for _, ep := range b.TargetEndpoints() {
		appendMessages(rule.KindTargetEndpoint, ep.Name(), ep.Report())
	}
}
