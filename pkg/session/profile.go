package session

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sdejongh/bcpilot/pkg/config"
	"github.com/sdejongh/bcpilot/pkg/models"
	"github.com/sdejongh/bcpilot/pkg/script"
)

// defaultReportFilename is used when a profile enables the report without
// naming its output file
const defaultReportFilename = "folder_report.html"

// bcLogFilename is the Beyond Compare verbose log within the run directory
const bcLogFilename = "bc.log"

// BuildProfileScript turns a configured profile into a validated script.
// Report and log outputs are placed inside runDir.
func BuildProfileScript(profile config.Profile, runDir string) (*script.Script, error) {
	b := script.NewBuilder()

	criteria := profileCriteria(profile.Criteria)
	if criteria == nil && profile.Task != "compare" {
		// Sync without criteria would be rejected by the builder; fall back
		// to Beyond Compare's conservative default
		criteria = profileCriteria(DefaultSyncCriteria())
	}
	if criteria != nil {
		cmd, err := script.NewCriteria(*criteria)
		if err != nil {
			return nil, err
		}
		b.Append(cmd)
	}

	load, err := profileLoad(profile)
	if err != nil {
		return nil, err
	}
	b.Append(load)

	if profile.Filter != "" {
		cmd, err := script.NewFilter(profile.Filter)
		if err != nil {
			return nil, err
		}
		b.Append(cmd)
	}

	b.Append(script.NewExpandAll())

	if profile.Report.Enabled {
		cmd, err := profileReport(profile.Report, runDir)
		if err != nil {
			return nil, err
		}
		b.Append(cmd)
	}

	if profile.Verbose {
		cmd, err := script.NewLog(script.LogVerbose, filepath.Join(runDir, bcLogFilename))
		if err != nil {
			return nil, err
		}
		b.Append(cmd)
	}

	switch profile.Task {
	case "compare":
		// Report only, nothing else to append
	case "mirror", "update":
		cmd, err := profileSync(profile)
		if err != nil {
			return nil, err
		}
		b.Append(cmd)
	default:
		return nil, &models.ValidationError{Field: "task", Message: fmt.Sprintf("unknown task %q", profile.Task)}
	}

	return b.Build()
}

// profileLoad builds the load command for a folder pair or saved session
func profileLoad(profile config.Profile) (script.Command, error) {
	if profile.Session != "" {
		return script.NewLoadSession(profile.Session)
	}
	return script.NewLoad(profile.Left, profile.Right)
}

// profileCriteria maps the config representation onto script criteria.
// Sync tasks without explicit criteria get the conservative default of
// timestamp (2 second tolerance) plus size, matching Beyond Compare's own.
func profileCriteria(c config.CriteriaConfig) *script.Criteria {
	criteria := script.Criteria{
		Attributes:         c.Attributes,
		Timestamp:          c.Timestamp,
		TimestampTolerance: time.Duration(c.ToleranceSeconds) * time.Second,
		Size:               c.Size,
		CRC:                c.CRC,
		Binary:             c.Binary,
		RulesBased:         c.RulesBased,
	}
	if criteria == (script.Criteria{}) {
		return nil
	}
	return &criteria
}

// DefaultSyncCriteria is the criteria applied to sync tasks that configure
// none: timestamps within two seconds plus file size.
func DefaultSyncCriteria() config.CriteriaConfig {
	return config.CriteriaConfig{
		Timestamp:        true,
		ToleranceSeconds: 2,
		Size:             true,
	}
}

// profileReport builds the folder-report command with outputs in runDir
func profileReport(r config.ReportConfig, runDir string) (script.Command, error) {
	layout := script.ReportLayout(r.Layout)
	if r.Layout == "" {
		layout = script.LayoutSideBySide
	}

	filename := r.Filename
	if filename == "" {
		filename = defaultReportFilename
	}

	return script.NewFolderReport(script.FolderReport{
		Layout:        layout,
		Options:       r.Options,
		Title:         r.Title,
		OutputPath:    filepath.Join(runDir, filename),
		OutputOptions: r.OutputOptions,
	})
}

// profileSync builds the sync command for mirror and update tasks
func profileSync(profile config.Profile) (script.Command, error) {
	direction := script.SyncDirection(profile.Direction)
	if profile.Direction == "" {
		direction = script.DirectionLeftToRight
	}

	var mode script.SyncMode
	switch profile.Task {
	case "mirror":
		mode = script.SyncMirror
	case "update":
		mode = script.SyncUpdate
	}

	cmd, err := script.NewSync(mode, direction)
	if err != nil {
		return nil, err
	}
	if profile.CreateEmpty {
		cmd.CreateEmpty()
	}
	return cmd, nil
}
