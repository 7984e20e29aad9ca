package models

import (
	"time"
)

// ExecutionResult is the raw record of one Beyond Compare invocation.
// The runner fills it in without interpreting the exit code; classification
// belongs to the interpret package.
type ExecutionResult struct {
	// ExitCode is the raw process exit status
	ExitCode int

	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Duration is the wall-clock time the process ran
	Duration time.Duration
}

// OutcomeStatus classifies one script execution
type OutcomeStatus string

const (
	// StatusSuccess indicates the script completed with no differences
	StatusSuccess OutcomeStatus = "success"
	// StatusDifferences indicates the compared sides differ
	StatusDifferences OutcomeStatus = "differences"
	// StatusExecutionFailed indicates Beyond Compare reported an error condition
	StatusExecutionFailed OutcomeStatus = "execution_failed"
	// StatusTimeout indicates the process exceeded the configured timeout
	StatusTimeout OutcomeStatus = "timeout"
)

// Outcome is the classification of one ExecutionResult.
// RawCode preserves the exit code for diagnostics even when unrecognized.
type Outcome struct {
	Status  OutcomeStatus
	RawCode int
	Reason  string
}

// ExitCode returns the process exit code the CLI should terminate with
func (s OutcomeStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusDifferences:
		return 1
	case StatusExecutionFailed:
		return 2
	case StatusTimeout:
		return 3
	default:
		return 2
	}
}

// RunReport describes one completed pipeline run for output formatting
type RunReport struct {
	// RunID identifies the invocation
	RunID string

	// Profile is the profile name, empty for ad-hoc runs
	Profile string

	// ScriptText is the rendered script that was executed
	ScriptText string

	// RunDir is the directory holding report and log artifacts
	RunDir string

	// Outcome is the interpreter's classification
	Outcome Outcome

	// Result is the raw execution record, nil when the process never ran
	Result *ExecutionResult

	// StartTime and EndTime bound the whole pipeline, not just the child process
	StartTime time.Time
	EndTime   time.Time
}

// Duration returns the total pipeline duration
func (r *RunReport) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
