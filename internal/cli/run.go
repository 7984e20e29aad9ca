package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/sdejongh/bcpilot/pkg/config"
	"github.com/sdejongh/bcpilot/pkg/models"
	"github.com/sdejongh/bcpilot/pkg/output"
	"github.com/sdejongh/bcpilot/pkg/session"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run [PROFILE...]",
		Short: "Run configured profiles",
		Long: `Run one or more profiles from the configuration file. Without
arguments every configured profile runs, in name order.

The exit code reflects the worst outcome across the batch.`,
		RunE: runProfiles,
	}
}

func runProfiles(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobalFlags(cfg)

	names, err := selectProfiles(cfg, args)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	s, err := session.New(cfg, logger)
	if err != nil {
		return err
	}

	var progress *output.BatchProgress
	if cfg.Output.Progress && !cfg.Output.Quiet && len(names) > 1 {
		progress = output.NewBatchProgress(len(names), os.Stderr)
	}

	formatter := output.New(cfg.Output.Format)
	w := reportWriter(cfg)

	reports := make([]*models.RunReport, 0, len(names))
	for _, name := range names {
		report, err := executeProfile(ctx, s, name, cfg.Profiles[name])
		if err != nil {
			if progress != nil {
				progress.Finish()
			}
			return err
		}

		reports = append(reports, report)
		if err := formatter.Report(w, report); err != nil {
			return err
		}
		if progress != nil {
			progress.Step()
		}
	}
	if progress != nil {
		progress.Finish()
	}

	if err := formatter.Summary(w, reports); err != nil {
		return err
	}

	os.Exit(batchExitCode(reports))
	return nil
}

// selectProfiles resolves the requested profile names, every configured
// profile in name order when none are given
func selectProfiles(cfg *config.Config, args []string) ([]string, error) {
	if len(cfg.Profiles) == 0 {
		return nil, fmt.Errorf("no profiles configured (run 'bcpilot config init' and add some)")
	}

	if len(args) == 0 {
		names := make([]string, 0, len(cfg.Profiles))
		for name := range cfg.Profiles {
			names = append(names, name)
		}
		sort.Strings(names)
		return names, nil
	}

	for _, name := range args {
		if _, ok := cfg.Profiles[name]; !ok {
			return nil, fmt.Errorf("unknown profile: %s", name)
		}
	}
	return args, nil
}

// batchExitCode returns the worst outcome's exit code across the batch
func batchExitCode(reports []*models.RunReport) int {
	worst := 0
	for _, report := range reports {
		if code := report.Outcome.Status.ExitCode(); code > worst {
			worst = code
		}
	}
	return worst
}
