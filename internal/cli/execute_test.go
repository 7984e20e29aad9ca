package cli

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sdejongh/bcpilot/pkg/config"
	"github.com/sdejongh/bcpilot/pkg/models"
	"github.com/sdejongh/bcpilot/pkg/session"
)

// testConfig builds a configuration against a stub executable with the
// data and script directories inside the test's temporary directory
func testConfig(t *testing.T, stubBody string) *config.Config {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake executable stubs require a POSIX shell")
	}

	exe := filepath.Join(t.TempDir(), "bcompare")
	stub := "#!/bin/sh\n" + stubBody + "\n"
	if err := os.WriteFile(exe, []byte(stub), 0755); err != nil {
		t.Fatalf("failed to write fake executable: %v", err)
	}

	cfg := config.Default()
	cfg.Execution.Executable = exe
	cfg.Execution.DataDir = t.TempDir()
	cfg.Execution.ScriptDir = t.TempDir()
	return cfg
}

func TestExecuteProfileLeavesNoArtifactsOnBuildFailure(t *testing.T) {
	cfg := testConfig(t, "exit 0")
	s, err := session.New(cfg, nil)
	if err != nil {
		t.Fatalf("session.New() error: %v", err)
	}

	// A compare profile without a report builds a load-only script, which
	// the builder rejects
	profile := config.Profile{
		Left:  "/srv/left",
		Right: "/srv/right",
		Task:  "compare",
	}

	if _, err := executeProfile(context.Background(), s, "broken", profile); err == nil {
		t.Fatal("executeProfile() should fail for a profile with nothing to do")
	}

	entries, err := os.ReadDir(cfg.Execution.DataDir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("run directory created for a rejected profile: %d entries", len(entries))
	}
}

func TestExecuteProfileRecordsRunDir(t *testing.T) {
	cfg := testConfig(t, "exit 0")
	s, err := session.New(cfg, nil)
	if err != nil {
		t.Fatalf("session.New() error: %v", err)
	}

	profile := config.Profile{
		Left:  "/srv/left",
		Right: "/srv/right",
		Task:  "compare",
		Report: config.ReportConfig{
			Enabled: true,
		},
	}

	report, err := executeProfile(context.Background(), s, "nightly", profile)
	if err != nil {
		t.Fatalf("executeProfile() error: %v", err)
	}

	if report.Profile != "nightly" {
		t.Errorf("Profile = %s, want nightly", report.Profile)
	}
	if report.Outcome.Status != models.StatusSuccess {
		t.Errorf("Status = %s, want success", report.Outcome.Status)
	}
	info, err := os.Stat(report.RunDir)
	if err != nil || !info.IsDir() {
		t.Errorf("run directory %s not created: %v", report.RunDir, err)
	}
}
