// Package interpret maps Beyond Compare exit codes onto typed outcomes.
// The mapping is a fixed table owned by this package; the external
// application's exit-code semantics are authoritative, so the table must be
// updated in lockstep with the Beyond Compare version in use.
package interpret

import (
	"fmt"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// TableVersion identifies the exit-code table revision. Bump it whenever
// the table below changes for a new Beyond Compare release.
const TableVersion = 1

// entry is one row of the exit-code table
type entry struct {
	status models.OutcomeStatus
	reason string
}

// exitCodes is the table, revision 1
var exitCodes = map[int]entry{
	0: {models.StatusSuccess, "no differences"},
	1: {models.StatusDifferences, "differences found"},
	2: {models.StatusDifferences, "similar but not identical"},

	100: {models.StatusExecutionFailed, "unknown error"},
	101: {models.StatusExecutionFailed, "conflicting command line parameters"},
	102: {models.StatusExecutionFailed, "unable to load one or both sides"},
	103: {models.StatusExecutionFailed, "trial period expired"},
	104: {models.StatusExecutionFailed, "license check failed"},
	105: {models.StatusExecutionFailed, "crash recovery"},
	106: {models.StatusExecutionFailed, "script syntax error"},
}

// Interpret classifies an execution result. Unrecognized codes map to
// ExecutionFailed with the raw code preserved for diagnostics. The function
// is pure: same result in, same outcome out.
func Interpret(result *models.ExecutionResult) models.Outcome {
	if e, ok := exitCodes[result.ExitCode]; ok {
		return models.Outcome{
			Status:  e.status,
			RawCode: result.ExitCode,
			Reason:  e.reason,
		}
	}
	return models.Outcome{
		Status:  models.StatusExecutionFailed,
		RawCode: result.ExitCode,
		Reason:  fmt.Sprintf("unrecognized exit code %d", result.ExitCode),
	}
}

// TimeoutOutcome is the fixed outcome for a run that was killed by timeout.
// There is no exit code to preserve; the process never exited on its own.
func TimeoutOutcome() models.Outcome {
	return models.Outcome{
		Status:  models.StatusTimeout,
		RawCode: -1,
		Reason:  "process exceeded timeout",
	}
}
