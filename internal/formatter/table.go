package formatter

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/bundlelint/bundlelint/internal/linter"
)

type tableFormatter struct{}

// Format renders one row per finding plus a severity summary line.
func (f *tableFormatter) Format(result *linter.Result) (string, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Bundle: %s (%s)\n", result.BundleName, result.Source)

	if len(result.Findings) == 0 {
		buf.WriteString("No findings.\n")
		return buf.String(), nil
	}

	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RULE\tSEVERITY\tENTITY\tMESSAGE")
	for _, finding := range result.Findings {
		fmt.Fprintf(w, "%s\t%s\t%s (%s)\t%s\n",
			finding.RuleID,
			finding.Severity,
			finding.EntityName,
			finding.EntityKind,
			finding.Message)
	}
	if err := w.Flush(); err != nil {
		return "", err
	}

	fmt.Fprintf(&buf, "\n%d errors, %d warnings, %d notes\n",
		result.Summary.Errors, result.Summary.Warnings, result.Summary.Notes)
	return buf.String(), nil
}
