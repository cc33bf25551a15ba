package finding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "note", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
}

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, SeverityInfo, ParseSeverity(0))
	assert.Equal(t, SeverityWarning, ParseSeverity(1))
	assert.Equal(t, SeverityError, ParseSeverity(2))
	assert.Equal(t, SeverityError, ParseSeverity(99))
}

func TestSeverityMarshalJSON(t *testing.T) {
	data, err := json.Marshal(RuleInfo{ID: "BN501", Severity: SeverityError})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"severity":"error"`)
}
