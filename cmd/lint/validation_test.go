package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLintArgs(t *testing.T) {
	tests := []struct {
		name       string
		options    RunOptionsLint
		args       []string
		wantSource string
		wantErr    string
	}{
		{
			// valid: bundlelint lint --source /path/to/bundle
			name:       "Source flag only",
			options:    RunOptionsLint{Source: "/path/to/bundle", Format: "table"},
			args:       []string{},
			wantSource: "/path/to/bundle",
		},
		{
			// valid: bundlelint lint /path/to/bundle
			name:       "Positional path only",
			options:    RunOptionsLint{Format: "table"},
			args:       []string{"/path/to/bundle"},
			wantSource: "/path/to/bundle",
		},
		{
			// valid: bundlelint lint /path/to/bundle -f sarif
			name:       "Sarif format",
			options:    RunOptionsLint{Format: "sarif"},
			args:       []string{"/path/to/bundle"},
			wantSource: "/path/to/bundle",
		},
		{
			// fail: bundlelint lint --source /a /b
			name:    "Both source flag and positional path",
			options: RunOptionsLint{Source: "/a", Format: "table"},
			args:    []string{"/b"},
			wantErr: "both --source and a positional path were given",
		},
		{
			// fail: bundlelint lint /a /b
			name:    "Too many positional arguments",
			options: RunOptionsLint{Format: "table"},
			args:    []string{"/a", "/b"},
			wantErr: "too many positional arguments: 2",
		},
		{
			// fail: bundlelint lint
			name:    "No source at all",
			options: RunOptionsLint{Format: "table"},
			args:    []string{},
			wantErr: "a bundle folder is required: pass --source or a positional path",
		},
		{
			// fail: bundlelint lint /path/to/bundle -f xml
			name:    "Unknown format",
			options: RunOptionsLint{Format: "xml"},
			args:    []string{"/path/to/bundle"},
			wantErr: `unknown format "xml", supported formats: table, json, sarif`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLintArgs(&tt.options, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantSource, tt.options.Source)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestIsKnownFormat(t *testing.T) {
	assert.True(t, isKnownFormat(""))
	assert.True(t, isKnownFormat("table"))
	assert.True(t, isKnownFormat("json"))
	assert.True(t, isKnownFormat("sarif"))
	assert.False(t, isKnownFormat("junit"))
}
