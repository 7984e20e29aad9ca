package output

import (
	"io"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// Formatter defines the interface for presenting run results.
// Implementations include human-readable and JSON formatters.
type Formatter interface {
	// Report writes one run's result
	Report(w io.Writer, report *models.RunReport) error

	// Summary writes the closing summary for a batch of runs
	Summary(w io.Writer, reports []*models.RunReport) error

	// Name returns the formatter name
	Name() string
}

// New returns the formatter for the given name, defaulting to human
func New(name string) Formatter {
	switch name {
	case "json":
		return NewJSONFormatter()
	default:
		return NewHumanFormatter()
	}
}
