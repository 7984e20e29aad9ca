package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sdejongh/bcpilot/pkg/config"
	"github.com/sdejongh/bcpilot/pkg/models"
	"github.com/sdejongh/bcpilot/pkg/output"
	"github.com/sdejongh/bcpilot/pkg/session"
)

// executeProfile runs one profile through the full pipeline: build the
// script, prepare a run directory, execute and classify. The directory is
// only created once the script builds, so a rejected profile leaves no
// empty run directory behind.
func executeProfile(ctx context.Context, s *session.Session, name string, profile config.Profile) (*models.RunReport, error) {
	runDir := s.RunDirPath()

	sc, err := session.BuildProfileScript(profile, runDir)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}

	if err := s.CreateRunDir(runDir); err != nil {
		return nil, err
	}

	report, err := s.ExecuteWithReport(ctx, sc)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}

	report.Profile = name
	report.RunDir = runDir
	return report, nil
}

// reportWriter returns where formatted results go; quiet mode discards them
func reportWriter(cfg *config.Config) io.Writer {
	if cfg.Output.Quiet {
		return io.Discard
	}
	return os.Stdout
}

// finishRun prints the report and terminates the process with the outcome's
// exit code, so shell scripts can branch on the result
func finishRun(cfg *config.Config, report *models.RunReport) error {
	formatter := output.New(cfg.Output.Format)
	if err := formatter.Report(reportWriter(cfg), report); err != nil {
		return err
	}

	os.Exit(report.Outcome.Status.ExitCode())
	return nil
}
