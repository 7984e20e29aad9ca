// Package runner launches the Beyond Compare executable against a script
// file and captures the raw process outcome. The runner never interprets
// exit codes; that belongs to the interpret package.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// ErrTimeout reports that the child process exceeded the configured timeout
// and was forcibly terminated. No ExecutionResult accompanies a timeout.
var ErrTimeout = errors.New("process exceeded timeout")

// LaunchError reports that the executable could not be found or started.
// This is distinct from a non-zero exit code, which is a normal outcome.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying launch failure
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Config holds runner invocation settings
type Config struct {
	// Executable is the path to the Beyond Compare binary
	Executable string

	// Flags are extra invocation flags appended after the script argument,
	// e.g. /silent to suppress the UI
	Flags []string

	// WorkDir is the child process working directory; empty inherits ours
	WorkDir string

	// Timeout limits how long the child may run; zero means no limit
	Timeout time.Duration
}

// Runner executes Beyond Compare scripts as child processes
type Runner struct {
	config Config
}

// New creates a runner with the given configuration
func New(config Config) *Runner {
	return &Runner{config: config}
}

// Run launches the executable with the script file as its primary argument
// (`@<path>` per Beyond Compare's convention) and blocks until the process
// exits, the timeout elapses, or ctx is cancelled. Standard output and error
// are captured, never inherited. On timeout the child is killed and
// ErrTimeout is returned with no result.
func (r *Runner) Run(ctx context.Context, scriptPath string) (*models.ExecutionResult, error) {
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	args := append([]string{"@" + scriptPath}, r.config.Flags...)
	cmd := exec.CommandContext(ctx, r.config.Executable, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if r.config.WorkDir != "" {
		cmd.Dir = r.config.WorkDir
	}
	// Don't wait on the output pipes forever if the killed child leaked
	// them to a grandchild
	cmd.WaitDelay = time.Second

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{Path: r.config.Executable, Err: err}
	}

	err := cmd.Wait()
	elapsed := time.Since(start)

	result := &models.ExecutionResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: elapsed,
	}

	if err != nil {
		// Wait failing while the context is expired means the child was
		// killed, not that it exited; report the timeout instead of a
		// synthetic exit code. A child that exited cleanly keeps its
		// result even if the deadline fired in the same instant.
		if ctxErr := ctx.Err(); ctxErr != nil {
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w after %s", ErrTimeout, elapsed.Round(time.Millisecond))
			}
			return nil, ctxErr
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &LaunchError{Path: r.config.Executable, Err: err}
		}
		// Non-zero exit is an expected outcome, not a runner failure
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}
