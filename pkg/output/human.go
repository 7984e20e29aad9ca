package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// HumanFormatter formats run results in human-readable form
type HumanFormatter struct{}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Name returns "human"
func (f *HumanFormatter) Name() string {
	return "human"
}

// Report writes one run's result
func (f *HumanFormatter) Report(w io.Writer, report *models.RunReport) error {
	label := report.Profile
	if label == "" {
		label = report.RunID
	}

	fmt.Fprintf(w, "%s %s: %s", statusMark(report.Outcome.Status), label, report.Outcome.Reason)
	if report.Result != nil {
		fmt.Fprintf(w, " (exit code %d, %s)", report.Result.ExitCode, report.Result.Duration.Round(time.Millisecond))
	}
	fmt.Fprintln(w)

	if report.RunDir != "" {
		fmt.Fprintf(w, "  artifacts: %s\n", report.RunDir)
	}

	// Surface captured stderr on failures; it often carries the only clue
	if report.Outcome.Status == models.StatusExecutionFailed && report.Result != nil {
		if msg := strings.TrimSpace(report.Result.Stderr); msg != "" {
			fmt.Fprintf(w, "  stderr: %s\n", msg)
		}
	}

	return nil
}

// Summary writes the closing summary for a batch of runs
func (f *HumanFormatter) Summary(w io.Writer, reports []*models.RunReport) error {
	var success, differences, failed, timedOut int
	var total time.Duration

	for _, report := range reports {
		total += report.Duration()
		switch report.Outcome.Status {
		case models.StatusSuccess:
			success++
		case models.StatusDifferences:
			differences++
		case models.StatusTimeout:
			timedOut++
		default:
			failed++
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Completed %d run(s) in %s\n", len(reports), total.Round(time.Millisecond))
	fmt.Fprintf(w, "  Success:     %d\n", success)
	fmt.Fprintf(w, "  Differences: %d\n", differences)
	fmt.Fprintf(w, "  Failed:      %d\n", failed)
	fmt.Fprintf(w, "  Timed out:   %d\n", timedOut)
	return nil
}

// statusMark returns the result marker for a status
func statusMark(status models.OutcomeStatus) string {
	switch status {
	case models.StatusSuccess:
		return "✓"
	case models.StatusDifferences:
		return "≠"
	default:
		return "✗"
	}
}
