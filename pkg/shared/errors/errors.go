package errors

import "fmt"

// Exit codes for the bundlelint binary.
const (
	ExitOK       = 0
	ExitError    = 1
	ExitFindings = 2
)

// UnknownFormatterError signals a formatter name the build does not ship.
type UnknownFormatterError struct {
	Name string
}

func (e *UnknownFormatterError) Error() string {
	return fmt.Sprintf("unknown formatter %q", e.Name)
}

// NewUnknownFormatterError creates an UnknownFormatterError.
func NewUnknownFormatterError(name string) error {
	return &UnknownFormatterError{Name: name}
}

// LintFailureError carries the outcome of a run that produced findings at the
// failure threshold. It maps to ExitFindings so CI can distinguish "bundle
// has violations" from "the tool broke".
type LintFailureError struct {
	Errors   int
	Warnings int
	Fatal    bool
}

func (e *LintFailureError) Error() string {
	if e.Fatal {
		return fmt.Sprintf("lint failed: fatal rule violated (%d errors, %d warnings)", e.Errors, e.Warnings)
	}
	return fmt.Sprintf("lint failed: %d errors, %d warnings", e.Errors, e.Warnings)
}

// ExitCode returns the process exit code for the failure.
func (e *LintFailureError) ExitCode() int {
	return ExitFindings
}

// NewLintFailureError creates a LintFailureError.
func NewLintFailureError(errors, warnings int, fatal bool) *LintFailureError {
	return &LintFailureError{Errors: errors, Warnings: warnings, Fatal: fatal}
}

// PluginError wraps a failure from an external rule plugin, keeping the
// plugin name for the operator.
type PluginError struct {
	Plugin string
	Err    error
}

func (e *PluginError) Error() string {
	return fmt.Sprintf("rule plugin %q failed: %v", e.Plugin, e.Err)
}

func (e *PluginError) Unwrap() error {
	return e.Err
}

// NewPluginError creates a PluginError.
func NewPluginError(plugin string, err error) error {
	return &PluginError{Plugin: plugin, Err: err}
}
