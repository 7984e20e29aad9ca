package cli

import (
	"context"

	"github.com/sdejongh/bcpilot/pkg/config"
	"github.com/sdejongh/bcpilot/pkg/session"
	"github.com/spf13/cobra"
)

// compareFlags holds the compare command flag values
type compareFlags struct {
	Left          string
	Right         string
	Session       string
	Filter        string
	ReportFile    string
	ReportLayout  string
	ReportTitle   string
	ReportOptions []string
	CRC           bool
	Binary        bool
}

var cmpFlags compareFlags

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two folders and generate a report",
		Long: `Compare the left and right folders with Beyond Compare and write a
folder report into a fresh run directory. No files are modified.

The exit code reflects the outcome: 0 no differences, 1 differences
found, 2 execution failed, 3 timed out.`,
		RunE: runCompare,
	}

	cmd.Flags().StringVarP(&cmpFlags.Left, "left", "l", "", "left folder path")
	cmd.Flags().StringVarP(&cmpFlags.Right, "right", "r", "", "right folder path")
	cmd.Flags().StringVar(&cmpFlags.Session, "session", "", "load a saved Beyond Compare session instead of a folder pair")
	cmd.Flags().StringVar(&cmpFlags.Filter, "filter", "", "restrict comparison to matching masks, e.g. \"*.go;*.md\"")
	cmd.Flags().StringVar(&cmpFlags.ReportFile, "report", "", "report file name within the run directory")
	cmd.Flags().StringVar(&cmpFlags.ReportLayout, "layout", "side-by-side", "report layout: side-by-side, summary, interleaved, xml")
	cmd.Flags().StringVar(&cmpFlags.ReportTitle, "title", "", "report title")
	cmd.Flags().StringSliceVar(&cmpFlags.ReportOptions, "report-options", nil, "report display options, e.g. display-mismatches")
	cmd.Flags().BoolVar(&cmpFlags.CRC, "crc", false, "compare file contents by CRC")
	cmd.Flags().BoolVar(&cmpFlags.Binary, "binary", false, "compare file contents byte by byte")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	profile, err := compareProfile()
	if err != nil {
		return err
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

	report, err := executeProfile(ctx, s, "compare", profile)
	if err != nil {
		return err
	}

	return finishRun(cfg, report)
}

// compareProfile builds the ad-hoc profile described by the compare flags
func compareProfile() (config.Profile, error) {
	profile := config.Profile{
		Session: cmpFlags.Session,
		Task:    "compare",
		Filter:  cmpFlags.Filter,
		Criteria: config.CriteriaConfig{
			CRC:    cmpFlags.CRC,
			Binary: cmpFlags.Binary,
		},
		Report: config.ReportConfig{
			Enabled:  true,
			Layout:   cmpFlags.ReportLayout,
			Title:    cmpFlags.ReportTitle,
			Filename: cmpFlags.ReportFile,
			Options:  cmpFlags.ReportOptions,
		},
		Verbose: globalFlags.Verbose,
	}

	if cmpFlags.Session != "" {
		return profile, nil
	}

	if err := validateFolderPair(cmpFlags.Left, cmpFlags.Right); err != nil {
		return config.Profile{}, err
	}
	profile.Left = cmpFlags.Left
	profile.Right = cmpFlags.Right
	return profile, nil
}
