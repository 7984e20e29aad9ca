package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/sdejongh/bcpilot/pkg/config"
	"github.com/sdejongh/bcpilot/pkg/models"
)

func TestBuildProfileScriptCompare(t *testing.T) {
	profile := config.Profile{
		Left:  "/srv/left",
		Right: "/srv/right",
		Task:  "compare",
		Report: config.ReportConfig{
			Enabled: true,
			Layout:  "summary",
			Options: []string{"display-mismatches"},
		},
	}

	sc, err := BuildProfileScript(profile, "/data/run")
	if err != nil {
		t.Fatalf("BuildProfileScript() error: %v", err)
	}

	want := `load "/srv/left" "/srv/right"
expand all
folder-report layout:summary &
options:display-mismatches &
output-to:"/data/run/folder_report.html"
`
	if got := sc.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildProfileScriptMirror(t *testing.T) {
	profile := config.Profile{
		Left:        "/srv/left",
		Right:       "/srv/right",
		Task:        "mirror",
		CreateEmpty: true,
		Verbose:     true,
	}

	sc, err := BuildProfileScript(profile, "/data/run")
	if err != nil {
		t.Fatalf("BuildProfileScript() error: %v", err)
	}

	want := `criteria timestamp:2sec size
load "/srv/left" "/srv/right"
expand all
log verbose "/data/run/bc.log"
sync create-empty mirror:left->right
`
	if got := sc.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildProfileScriptUpdateWithExplicitCriteria(t *testing.T) {
	profile := config.Profile{
		Left:      "/srv/left",
		Right:     "/srv/right",
		Task:      "update",
		Direction: "all",
		Filter:    "*.go;*.md",
		Criteria: config.CriteriaConfig{
			CRC: true,
		},
	}

	sc, err := BuildProfileScript(profile, "/data/run")
	if err != nil {
		t.Fatalf("BuildProfileScript() error: %v", err)
	}

	want := `criteria crc
load "/srv/left" "/srv/right"
filter "*.go;*.md"
expand all
sync update:all
`
	if got := sc.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildProfileScriptSession(t *testing.T) {
	profile := config.Profile{
		Session: "Nightly Backup",
		Task:    "compare",
		Report: config.ReportConfig{
			Enabled: true,
		},
	}

	sc, err := BuildProfileScript(profile, "/data/run")
	if err != nil {
		t.Fatalf("BuildProfileScript() error: %v", err)
	}

	if !strings.Contains(sc.Render(), `load "Nightly Backup"`) {
		t.Errorf("Render() = %q, want a session load", sc.Render())
	}
	// Report defaults apply when the profile only enables it
	if !strings.Contains(sc.Render(), "folder-report layout:side-by-side") {
		t.Errorf("Render() = %q, want default side-by-side layout", sc.Render())
	}
	if !strings.Contains(sc.Render(), `output-to:"/data/run/folder_report.html"`) {
		t.Errorf("Render() = %q, want default report filename", sc.Render())
	}
}

func TestBuildProfileScriptRejectsUnknownTask(t *testing.T) {
	profile := config.Profile{
		Left:  "/srv/left",
		Right: "/srv/right",
		Task:  "destroy",
	}

	_, err := BuildProfileScript(profile, "/data/run")
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *models.ValidationError", err)
	}
	if verr.Field != "task" {
		t.Errorf("Field = %s, want task", verr.Field)
	}
}

func TestBuildProfileScriptRejectsBadPaths(t *testing.T) {
	profile := config.Profile{
		Left:  "",
		Right: "/srv/right",
		Task:  "mirror",
	}

	if _, err := BuildProfileScript(profile, "/data/run"); err == nil {
		t.Error("BuildProfileScript() should reject an empty left path")
	}
}
