package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// JSONFormatter formats run results as JSON for automation and scripting
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns "json"
func (f *JSONFormatter) Name() string {
	return "json"
}

// JSONRunData represents one run in the JSON output
type JSONRunData struct {
	RunID      string `json:"run_id"`
	Profile    string `json:"profile,omitempty"`
	Status     string `json:"status"`
	Reason     string `json:"reason"`
	RawCode    int    `json:"raw_code"`
	RunDir     string `json:"run_dir,omitempty"`
	DurationMs int64  `json:"duration_ms"`
	Stdout     string `json:"stdout,omitempty"`
	Stderr     string `json:"stderr,omitempty"`
}

// JSONSummaryData represents the batch summary
type JSONSummaryData struct {
	Runs        int   `json:"runs"`
	Success     int   `json:"success"`
	Differences int   `json:"differences"`
	Failed      int   `json:"failed"`
	TimedOut    int   `json:"timed_out"`
	DurationMs  int64 `json:"duration_ms"`
}

// Report writes one run's result as a JSON object
func (f *JSONFormatter) Report(w io.Writer, report *models.RunReport) error {
	data := JSONRunData{
		RunID:      report.RunID,
		Profile:    report.Profile,
		Status:     string(report.Outcome.Status),
		Reason:     report.Outcome.Reason,
		RawCode:    report.Outcome.RawCode,
		RunDir:     report.RunDir,
		DurationMs: report.Duration().Milliseconds(),
	}
	if report.Result != nil {
		data.Stdout = report.Result.Stdout
		data.Stderr = report.Result.Stderr
	}

	enc := json.NewEncoder(w)
	return enc.Encode(data)
}

// Summary writes the batch summary as a JSON object
func (f *JSONFormatter) Summary(w io.Writer, reports []*models.RunReport) error {
	data := JSONSummaryData{Runs: len(reports)}
	var total time.Duration

	for _, report := range reports {
		total += report.Duration()
		switch report.Outcome.Status {
		case models.StatusSuccess:
			data.Success++
		case models.StatusDifferences:
			data.Differences++
		case models.StatusTimeout:
			data.TimedOut++
		default:
			data.Failed++
		}
	}
	data.DurationMs = total.Milliseconds()

	enc := json.NewEncoder(w)
	return enc.Encode(data)
}
