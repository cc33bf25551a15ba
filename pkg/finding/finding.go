package finding

import "fmt"

// Severity ranks a finding. The zero value is informational so rules that
// forget to set it never fail a run by accident.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the SARIF-compatible level name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "note"
	}
}

// MarshalJSON renders the severity by name so reports stay readable.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// ParseSeverity maps the numeric rule severity (0 info, 1 warning, 2 error)
// onto a Severity, clamping out-of-range values to error.
func ParseSeverity(level int) Severity {
	switch level {
	case 0:
		return SeverityInfo
	case 1:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// RuleInfo is the slice of rule metadata carried by every message a rule
// reports. Entities store it verbatim; they never look inside.
type RuleInfo struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Severity Severity `json:"severity"`
	Fatal    bool     `json:"fatal"`
}

// Message is a single finding reported against one entity. Accumulation is
// append-only for the duration of a lint run; deduplication, if wanted, is the
// host's job.
type Message struct {
	Rule RuleInfo `json:"rule"`
	Text string   `json:"text"`
}
