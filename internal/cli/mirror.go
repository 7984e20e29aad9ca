package cli

import (
	"context"

	"github.com/sdejongh/bcpilot/pkg/config"
	"github.com/sdejongh/bcpilot/pkg/session"
	"github.com/spf13/cobra"
)

// mirrorFlags holds the mirror and update command flag values
type mirrorFlags struct {
	Source      string
	Dest        string
	Filter      string
	CreateEmpty bool
	Update      bool
}

var mirFlags mirrorFlags

// NewMirrorCommand creates the mirror command
func NewMirrorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Make the destination folder identical to the source",
		Long: `Synchronize the destination folder to match the source exactly.
Files missing on the destination are copied, newer files are updated and
orphaned files on the destination are removed.

With --update, orphaned destination files are kept: only missing and
newer files are copied.`,
		RunE: runMirror,
	}

	cmd.Flags().StringVarP(&mirFlags.Source, "source", "s", "", "source folder path (required)")
	cmd.Flags().StringVarP(&mirFlags.Dest, "dest", "d", "", "destination folder path (required)")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("dest")

	cmd.Flags().StringVar(&mirFlags.Filter, "filter", "", "restrict synchronization to matching masks")
	cmd.Flags().BoolVar(&mirFlags.CreateEmpty, "create-empty", false, "create empty folders on the destination")
	cmd.Flags().BoolVar(&mirFlags.Update, "update", false, "copy newer files only, keep destination orphans")

	return cmd
}

func runMirror(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := validateFolderPair(mirFlags.Source, mirFlags.Dest); err != nil {
		return err
	}

	task := "mirror"
	if mirFlags.Update {
		task = "update"
	}
	profile := config.Profile{
		Left:        mirFlags.Source,
		Right:       mirFlags.Dest,
		Task:        task,
		Direction:   "left->right",
		CreateEmpty: mirFlags.CreateEmpty,
		Filter:      mirFlags.Filter,
		Verbose:     globalFlags.Verbose,
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobalFlags(cfg)

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	s, err := session.New(cfg, logger)
	if err != nil {
		return err
	}

	report, err := executeProfile(ctx, s, task, profile)
	if err != nil {
		return err
	}

	return finishRun(cfg, report)
}
