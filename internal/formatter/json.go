package formatter

import (
	"encoding/json"

	"github.com/bundlelint/bundlelint/internal/linter"
)

type jsonFormatter struct{}

// Format renders the aggregated result as indented JSON.
func (f *jsonFormatter) Format(result *linter.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
