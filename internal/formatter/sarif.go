package formatter

import (
	"bytes"
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/bundlelint/bundlelint/internal/git"
	"github.com/bundlelint/bundlelint/internal/linter"
)

const informationURI = "https://github.com/bundlelint/bundlelint"

type sarifFormatter struct {
	repoMetadata *git.RepositoryMetadata
}

// Format renders the aggregated result as a SARIF 2.1.0 document: one run,
// one reporting descriptor per rule, one result per finding.
func (f *sarifFormatter) Format(result *linter.Result) (string, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return "", fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("bundlelint", informationURI)
	run.Properties = map[string]interface{}{
		"runId":  result.RunID,
		"bundle": result.BundleName,
	}
	f.addProvenance(run)

	declared := make(map[string]struct{})
	for _, finding := range result.Findings {
		if _, ok := declared[finding.RuleID]; !ok {
			declared[finding.RuleID] = struct{}{}
			run.AddRule(finding.RuleID).
				WithDescription(finding.RuleName).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{
					Level: finding.Severity.String(),
				})
		}

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(result.Source)),
		)

		sarifResult := sarif.NewRuleResult(finding.RuleID).
			WithMessage(sarif.NewTextMessage(finding.Message)).
			WithLevel(finding.Severity.String()).
			WithLocations([]*sarif.Location{location})
		sarifResult.Properties = map[string]interface{}{
			"entityKind": finding.EntityKind,
			"entityName": finding.EntityName,
		}
		run.AddResult(sarifResult)
	}

	report.AddRun(run)

	var buf bytes.Buffer
	if err := report.PrettyWrite(&buf); err != nil {
		return "", err
	}
	buf.WriteString("\n")
	return buf.String(), nil
}

// addProvenance records branch/commit/origin in the run properties when the
// lint source sat inside a git repository.
func (f *sarifFormatter) addProvenance(run *sarif.Run) {
	md := f.repoMetadata
	if md == nil {
		return
	}
	if md.RepositoryFullName != nil {
		run.Properties["repository"] = *md.RepositoryFullName
	}
	if md.BranchName != nil {
		run.Properties["branch"] = *md.BranchName
	}
	if md.CommitHash != nil {
		run.Properties["commit"] = *md.CommitHash
	}
}
