package output

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// BatchProgress displays a progress bar while a batch of profiles runs.
// Beyond Compare gives no per-run progress, so the bar counts whole runs.
type BatchProgress struct {
	bar *pb.ProgressBar
}

// NewBatchProgress creates a progress bar over total runs, writing to w
func NewBatchProgress(total int, w io.Writer) *BatchProgress {
	bar := pb.New(total)
	bar.SetWriter(w)
	bar.SetTemplateString(`{{counters . }} {{bar . }} {{percent . }}`)
	bar.Start()
	return &BatchProgress{bar: bar}
}

// Step marks one run as finished
func (p *BatchProgress) Step() {
	p.bar.Increment()
}

// Finish stops the bar
func (p *BatchProgress) Finish() {
	p.bar.Finish()
}
