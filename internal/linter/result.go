package linter

import "github.com/bundlelint/bundlelint/pkg/finding"

// Finding is one rule violation in the aggregated report, attributed to the
// entity it was reported against.
type Finding struct {
	RuleID     string           `json:"rule_id"`
	RuleName   string           `json:"rule_name"`
	Severity   finding.Severity `json:"severity"`
	Fatal      bool             `json:"fatal,omitempty"`
	EntityKind string           `json:"entity_kind"`
	EntityName string           `json:"entity_name"`
	Message    string           `json:"message"`
}

// Summary counts findings per severity.
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Notes    int `json:"notes"`
}

// Result is the aggregated report of one lint run.
type Result struct {
	RunID      string    `json:"run_id"`
	Source     string    `json:"source"`
	BundleName string    `json:"bundle_name"`
	Findings   []Finding `json:"findings"`
	Summary    Summary   `json:"summary"`
}

// ByRule groups the findings by rule ID, preserving report order within each
// group.
func (r *Result) ByRule() map[string][]Finding {
	grouped := make(map[string][]Finding)
	for _, f := range r.Findings {
		grouped[f.RuleID] = append(grouped[f.RuleID], f)
	}
	return grouped
}

// Failed reports whether the run produced findings at the failure threshold:
// any error-severity finding or any finding from a fatal rule.
func (r *Result) Failed() bool {
	for _, f := range r.Findings {
		if f.Fatal || f.Severity == finding.SeverityError {
			return true
		}
	}
	return false
}

// HasFatal reports whether any finding came from a fatal rule.
func (r *Result) HasFatal() bool {
	for _, f := range r.Findings {
		if f.Fatal {
			return true
		}
	}
	return false
}

func (r *Result) addFinding(f Finding) {
	r.Findings = append(r.Findings, f)
	switch f.Severity {
	case finding.SeverityError:
		r.Summary.Errors++
	case finding.SeverityWarning:
		r.Summary.Warnings++
	default:
		r.Summary.Notes++
	}
}
