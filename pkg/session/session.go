// Package session orchestrates the full automation pipeline: render a
// validated script, persist it to a transient file, run Beyond Compare
// against it and interpret the outcome. The transient file is removed on
// every exit path.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sdejongh/bcpilot/internal/platform"
	"github.com/sdejongh/bcpilot/pkg/config"
	"github.com/sdejongh/bcpilot/pkg/interpret"
	"github.com/sdejongh/bcpilot/pkg/logging"
	"github.com/sdejongh/bcpilot/pkg/models"
	"github.com/sdejongh/bcpilot/pkg/runner"
	"github.com/sdejongh/bcpilot/pkg/script"
	"github.com/sdejongh/bcpilot/pkg/scriptfile"
)

// Session executes scripts against a configured Beyond Compare executable
type Session struct {
	executable string
	dataDir    string
	scriptDir  string
	runner     *runner.Runner
	logger     logging.Logger
}

// New creates a session from the application configuration. The executable
// path is resolved (explicit config or BCOMPARE_PATH) and verified before
// any script is written to disk.
func New(cfg *config.Config, logger logging.Logger) (*Session, error) {
	if logger == nil {
		logger = logging.NewNullLogger()
	}

	executable, err := platform.FindExecutable(cfg.ResolveExecutable())
	if err != nil {
		return nil, err
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	r := runner.New(runner.Config{
		Executable: executable,
		Flags:      cfg.Execution.Flags,
		WorkDir:    cfg.Execution.WorkDir,
		Timeout:    time.Duration(cfg.Execution.TimeoutSeconds) * time.Second,
	})

	return &Session{
		executable: executable,
		dataDir:    dataDir,
		scriptDir:  cfg.Execution.ScriptDir,
		runner:     r,
		logger:     logger,
	}, nil
}

// Executable returns the resolved Beyond Compare path
func (s *Session) Executable() string {
	return s.executable
}

// RunDirPath returns a fresh path for one run's artifacts (reports, Beyond
// Compare logs) under the data directory, without creating it. The name
// combines a timestamp with a random suffix so concurrent runs never share
// a directory.
func (s *Session) RunDirPath() string {
	name := time.Now().Format("20060102-150405") + "-" + uuid.NewString()[:8]
	return filepath.Join(s.dataDir, name)
}

// CreateRunDir materializes a directory returned by RunDirPath. Callers
// that build a script targeting the directory should create it only once
// the script is known to be valid, so a rejected script leaves no trace.
func (s *Session) CreateRunDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &models.IOError{Op: "create run directory", Path: dir, Err: err}
	}
	return nil
}

// PrepareRunDir creates a fresh directory for one run's artifacts
func (s *Session) PrepareRunDir() (string, error) {
	dir := s.RunDirPath()
	if err := s.CreateRunDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// Execute runs a validated script and returns its classified outcome.
// A timeout is reported as a Timeout outcome, not an error; launch and
// filesystem failures are errors. The transient script file is removed
// before Execute returns, whatever happened.
func (s *Session) Execute(ctx context.Context, sc *script.Script) (models.Outcome, error) {
	report, err := s.ExecuteWithReport(ctx, sc)
	if err != nil {
		return models.Outcome{}, err
	}
	return report.Outcome, nil
}

// ExecuteWithReport runs a validated script and returns the full run report,
// including the raw ExecutionResult for diagnostics.
func (s *Session) ExecuteWithReport(ctx context.Context, sc *script.Script) (*models.RunReport, error) {
	report := &models.RunReport{
		RunID:      uuid.New().String(),
		ScriptText: sc.Render(),
		StartTime:  time.Now(),
	}
	log := s.logger.WithFields(logging.Fields{"run_id": report.RunID})

	sf, err := scriptfile.Write(s.scriptDir, report.ScriptText)
	if err != nil {
		log.Error(ctx, "failed to write script file", err, nil)
		return nil, err
	}
	defer func() {
		if rmErr := sf.Remove(); rmErr != nil {
			log.Warn(ctx, "failed to remove script file", logging.Fields{"path": sf.Path(), "error": rmErr.Error()})
		}
	}()

	log.Info(ctx, "executing script", logging.Fields{
		"script":   sf.Path(),
		"commands": sc.Len(),
	})

	result, err := s.runner.Run(ctx, sf.Path())
	report.EndTime = time.Now()

	switch {
	case errors.Is(err, runner.ErrTimeout):
		log.Warn(ctx, "script timed out", logging.Fields{"script": sf.Path()})
		report.Outcome = interpret.TimeoutOutcome()
		return report, nil
	case err != nil:
		log.Error(ctx, "script execution failed to launch", err, nil)
		return nil, err
	}

	report.Result = result
	report.Outcome = interpret.Interpret(result)

	log.Info(ctx, "script completed", logging.Fields{
		"exit_code": result.ExitCode,
		"status":    string(report.Outcome.Status),
		"duration":  result.Duration.String(),
	})

	return report, nil
}
