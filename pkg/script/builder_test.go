package script

import (
	"errors"
	"testing"
	"time"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// mirrorCriteria is the criteria used by most builder tests
func mirrorCriteria(t *testing.T) Command {
	t.Helper()
	cmd, err := NewCriteria(Criteria{Timestamp: true, TimestampTolerance: 2 * time.Second, Size: true})
	if err != nil {
		t.Fatalf("NewCriteria() error: %v", err)
	}
	return cmd
}

func loadPair(t *testing.T) Command {
	t.Helper()
	cmd, err := NewLoad("/data/source", "/data/target")
	if err != nil {
		t.Fatalf("NewLoad() error: %v", err)
	}
	return cmd
}

func mirrorSync(t *testing.T) Command {
	t.Helper()
	cmd, err := NewSync(SyncMirror, DirectionLeftToRight)
	if err != nil {
		t.Fatalf("NewSync() error: %v", err)
	}
	return cmd
}

func summaryReport(t *testing.T) Command {
	t.Helper()
	cmd, err := NewFolderReport(FolderReport{Layout: LayoutSummary, OutputPath: "/run/report.txt"})
	if err != nil {
		t.Fatalf("NewFolderReport() error: %v", err)
	}
	return cmd
}

// expectRule asserts Build fails with a StructuralError naming the rule
func expectRule(t *testing.T, b *Builder, rule string) {
	t.Helper()
	_, err := b.Build()
	if err == nil {
		t.Fatal("Build() succeeded, want StructuralError")
	}
	var structErr *models.StructuralError
	if !errors.As(err, &structErr) {
		t.Fatalf("error type = %T, want *models.StructuralError", err)
	}
	if structErr.Rule != rule {
		t.Errorf("violated rule = %s, want %s", structErr.Rule, rule)
	}
}

// ============== Structure Rule Tests ==============

func TestBuildRequiresLoad(t *testing.T) {
	b := NewBuilder().
		Append(mirrorCriteria(t)).
		Append(summaryReport(t))
	expectRule(t, b, "load-required")
}

func TestBuildRejectsEmptyScript(t *testing.T) {
	expectRule(t, NewBuilder(), "load-required")
}

func TestBuildRequiresLoadBeforeComparison(t *testing.T) {
	b := NewBuilder().
		Append(summaryReport(t)).
		Append(loadPair(t))
	expectRule(t, b, "load-before-comparison")
}

func TestBuildRejectsLoadOnlyScript(t *testing.T) {
	// A load with nothing to do is a structural error; the grammar decision
	// is documented in DESIGN.md.
	b := NewBuilder().Append(loadPair(t))
	expectRule(t, b, "action-required")
}

func TestBuildRequiresCriteriaBeforeSync(t *testing.T) {
	b := NewBuilder().
		Append(loadPair(t)).
		Append(mirrorSync(t))
	expectRule(t, b, "criteria-before-sync")
}

func TestBuildAcceptsCriteriaAfterLoad(t *testing.T) {
	// Criteria may appear before or after load, as long as sync comes later
	b := NewBuilder().
		Append(loadPair(t)).
		Append(mirrorCriteria(t)).
		Append(mirrorSync(t))
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
}

func TestBuildAcceptsReportWithoutCriteria(t *testing.T) {
	b := NewBuilder().
		Append(loadPair(t)).
		Append(summaryReport(t))
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
}

// ============== Rendering Tests ==============

func TestScriptRenderPreservesOrder(t *testing.T) {
	expand := NewExpandAll()
	b := NewBuilder().
		Append(mirrorCriteria(t)).
		Append(loadPair(t)).
		Append(expand).
		Append(mirrorSync(t))

	script, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := "criteria timestamp:2sec size\n" +
		`load "/data/source" "/data/target"` + "\n" +
		"expand all\n" +
		"sync mirror:left->right\n"
	if got := script.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestScriptRenderIsIdempotent(t *testing.T) {
	script, err := NewBuilder().
		Append(loadPair(t)).
		Append(summaryReport(t)).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	first := script.Render()
	second := script.Render()
	if first != second {
		t.Errorf("renders differ:\n%q\n%q", first, second)
	}
}

func TestScriptIsImmutableAfterBuild(t *testing.T) {
	b := NewBuilder().
		Append(loadPair(t)).
		Append(summaryReport(t))

	script, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	rendered := script.Render()

	// Appending to the builder afterwards must not affect the built script
	b.Append(NewExpandAll())
	if script.Render() != rendered {
		t.Error("built script changed after builder mutation")
	}
	if script.Len() != 2 {
		t.Errorf("Len() = %d, want 2", script.Len())
	}
}

func TestScriptCommandsReturnsCopy(t *testing.T) {
	script, err := NewBuilder().
		Append(loadPair(t)).
		Append(summaryReport(t)).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	commands := script.Commands()
	commands[0] = nil
	if script.Commands()[0] == nil {
		t.Error("mutating the returned slice affected the script")
	}
}

// Mirrors the flow from the Beyond Compare scripting documentation: criteria,
// load, expand, report, log, sync.
func TestFullMirrorScript(t *testing.T) {
	criteria, err := NewCriteria(Criteria{Attributes: "ashr", Timestamp: true, TimestampTolerance: 2 * time.Second, Size: true})
	if err != nil {
		t.Fatalf("NewCriteria() error: %v", err)
	}
	load, err := NewLoad("/data/source", "/data/target")
	if err != nil {
		t.Fatalf("NewLoad() error: %v", err)
	}
	report, err := NewFolderReport(FolderReport{
		Layout:        LayoutSideBySide,
		Options:       []string{"display-mismatches", "include-file-links"},
		Title:         "test",
		OutputPath:    "/run/folder_report.html",
		OutputOptions: []string{"html-color"},
	})
	if err != nil {
		t.Fatalf("NewFolderReport() error: %v", err)
	}
	log, err := NewLog(LogVerbose, "/run/bc.log")
	if err != nil {
		t.Fatalf("NewLog() error: %v", err)
	}
	sync, err := NewSync(SyncMirror, DirectionLeftToRight)
	if err != nil {
		t.Fatalf("NewSync() error: %v", err)
	}

	script, err := NewBuilder().
		Append(criteria).
		Append(load).
		Append(NewExpandAll()).
		Append(report).
		Append(log).
		Append(sync.CreateEmpty()).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := "criteria attrib:ashr timestamp:2sec size\n" +
		`load "/data/source" "/data/target"` + "\n" +
		"expand all\n" +
		"folder-report layout:side-by-side &\n" +
		"options:display-mismatches,include-file-links &\n" +
		"title:test &\n" +
		`output-to:"/run/folder_report.html" &` + "\n" +
		"output-options:html-color\n" +
		`log verbose "/run/bc.log"` + "\n" +
		"sync create-empty mirror:left->right\n"
	if got := script.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
