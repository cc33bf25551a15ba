package bundle

import "github.com/bundlelint/bundlelint/pkg/finding"

// reportSink is the append-only message accumulator embedded in every
// reportable entity. Rules call AddMessage for each violation; the linter
// drains the collected messages once after the walk.
type reportSink struct {
	messages []finding.Message
}

// AddMessage appends a finding to the entity's report. There is no
// deduplication: reporting the same violation twice records it twice.
func (s *reportSink) AddMessage(rule finding.RuleInfo, text string) {
	s.messages = append(s.messages, finding.Message{Rule: rule, Text: text})
}

// Report returns a copy of the messages accumulated so far.
func (s *reportSink) Report() []finding.Message {
	out := make([]finding.Message, len(s.messages))
	copy(out, s.messages)
	return out
}
