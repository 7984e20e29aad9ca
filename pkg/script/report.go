package script

import (
	"fmt"
	"strings"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// ReportLayout selects the folder-report presentation
type ReportLayout string

const (
	LayoutSideBySide  ReportLayout = "side-by-side"
	LayoutSummary     ReportLayout = "summary"
	LayoutInterleaved ReportLayout = "interleaved"
	LayoutXML         ReportLayout = "xml"
)

var validLayouts = map[ReportLayout]bool{
	LayoutSideBySide:  true,
	LayoutSummary:     true,
	LayoutInterleaved: true,
	LayoutXML:         true,
}

// FolderReport describes a folder-report command. Layout and OutputPath are
// required; the remaining fields are optional grammar attributes.
type FolderReport struct {
	// Layout is the report presentation, e.g. side-by-side
	Layout ReportLayout

	// Options are comma-joined display options,
	// e.g. display-mismatches, include-file-links
	Options []string

	// Title is the report title
	Title string

	// OutputPath is the file the report is written to
	OutputPath string

	// OutputOptions are comma-joined output options, e.g. html-color
	OutputOptions []string
}

// FolderReportCommand generates a comparison report for the loaded folders
type FolderReportCommand struct {
	report FolderReport
}

// NewFolderReport creates a folder-report command
func NewFolderReport(r FolderReport) (*FolderReportCommand, error) {
	if !validLayouts[r.Layout] {
		return nil, &models.ValidationError{Field: "layout", Message: fmt.Sprintf("unknown report layout %q", r.Layout)}
	}
	if err := validateArg("output_path", r.OutputPath); err != nil {
		return nil, err
	}
	if r.Title != "" {
		if err := validateArg("title", r.Title); err != nil {
			return nil, err
		}
	}
	for _, opt := range append(append([]string{}, r.Options...), r.OutputOptions...) {
		if opt == "" || strings.ContainsAny(opt, " ,\"\r\n") {
			return nil, &models.ValidationError{Field: "options", Message: fmt.Sprintf("invalid report option %q", opt)}
		}
	}
	return &FolderReportCommand{report: r}, nil
}

// Kind returns KindReport
func (c *FolderReportCommand) Kind() Kind {
	return KindReport
}

// Render returns the folder-report command. Attributes after the first are
// placed on continuation lines ending in ` &`, as the grammar allows:
//
//	folder-report layout:side-by-side &
//	options:display-mismatches &
//	output-to:"/run/report.html"
func (c *FolderReportCommand) Render() string {
	parts := []string{"folder-report layout:" + string(c.report.Layout)}

	if len(c.report.Options) > 0 {
		parts = append(parts, "options:"+strings.Join(c.report.Options, ","))
	}
	if c.report.Title != "" {
		parts = append(parts, "title:"+quoteIfNeeded(c.report.Title))
	}
	parts = append(parts, "output-to:"+quote(c.report.OutputPath))
	if len(c.report.OutputOptions) > 0 {
		parts = append(parts, "output-options:"+strings.Join(c.report.OutputOptions, ","))
	}

	return strings.Join(parts, " &\n")
}
