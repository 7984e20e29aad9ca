package interpret

import (
	"testing"
	"time"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// synthetic builds an ExecutionResult without spawning any process
func synthetic(exitCode int) *models.ExecutionResult {
	return &models.ExecutionResult{
		ExitCode: exitCode,
		Stdout:   "bc output",
		Duration: 200 * time.Millisecond,
	}
}

func TestInterpretKnownCodes(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		status   models.OutcomeStatus
		reason   string
	}{
		{"Success", 0, models.StatusSuccess, "no differences"},
		{"Differences", 1, models.StatusDifferences, "differences found"},
		{"Similar", 2, models.StatusDifferences, "similar but not identical"},
		{"UnknownError", 100, models.StatusExecutionFailed, "unknown error"},
		{"ConflictingParams", 101, models.StatusExecutionFailed, "conflicting command line parameters"},
		{"LoadFailure", 102, models.StatusExecutionFailed, "unable to load one or both sides"},
		{"TrialExpired", 103, models.StatusExecutionFailed, "trial period expired"},
		{"LicenseCheck", 104, models.StatusExecutionFailed, "license check failed"},
		{"CrashRecovery", 105, models.StatusExecutionFailed, "crash recovery"},
		{"ScriptSyntax", 106, models.StatusExecutionFailed, "script syntax error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Interpret(synthetic(tt.exitCode))
			if outcome.Status != tt.status {
				t.Errorf("Status = %s, want %s", outcome.Status, tt.status)
			}
			if outcome.RawCode != tt.exitCode {
				t.Errorf("RawCode = %d, want %d", outcome.RawCode, tt.exitCode)
			}
			if outcome.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", outcome.Reason, tt.reason)
			}
		})
	}
}

func TestInterpretUnrecognizedCode(t *testing.T) {
	for _, code := range []int{3, 42, 99, 107, 255, -1} {
		outcome := Interpret(synthetic(code))
		if outcome.Status != models.StatusExecutionFailed {
			t.Errorf("code %d: Status = %s, want %s", code, outcome.Status, models.StatusExecutionFailed)
		}
		if outcome.RawCode != code {
			t.Errorf("code %d: RawCode = %d, raw code must be preserved", code, outcome.RawCode)
		}
	}
}

func TestInterpretIsPure(t *testing.T) {
	result := synthetic(1)
	first := Interpret(result)
	second := Interpret(result)
	if first != second {
		t.Errorf("Interpret() is not deterministic: %+v vs %+v", first, second)
	}
}

func TestTimeoutOutcome(t *testing.T) {
	outcome := TimeoutOutcome()
	if outcome.Status != models.StatusTimeout {
		t.Errorf("Status = %s, want %s", outcome.Status, models.StatusTimeout)
	}
	if outcome.Status.ExitCode() != 3 {
		t.Errorf("ExitCode() = %d, want 3", outcome.Status.ExitCode())
	}
}
