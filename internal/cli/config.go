package cli

import (
	"fmt"
	"sort"

	"github.com/sdejongh/bcpilot/pkg/config"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or modify bcpilot configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			executable := cfg.ResolveExecutable()
			if executable == "" {
				executable = "(not configured, set execution.executable or " + config.EnvExecutable + ")"
			}

			fmt.Printf("Executable: %s\n", executable)
			fmt.Printf("Flags: %v\n", cfg.Execution.Flags)
			fmt.Printf("Timeout: %ds\n", cfg.Execution.TimeoutSeconds)
			fmt.Printf("Output Format: %s\n", cfg.Output.Format)
			fmt.Printf("Log Format: %s\n", cfg.Logging.Format)
			fmt.Printf("Log Level: %s\n", cfg.Logging.Level)

			if dataDir, err := cfg.ResolveDataDir(); err == nil {
				fmt.Printf("Data Dir: %s\n", dataDir)
			}

			if len(cfg.Profiles) > 0 {
				names := make([]string, 0, len(cfg.Profiles))
				for name := range cfg.Profiles {
					names = append(names, name)
				}
				sort.Strings(names)

				fmt.Println("Profiles:")
				for _, name := range names {
					profile := cfg.Profiles[name]
					if profile.Session != "" {
						fmt.Printf("  %s: %s session %q\n", name, profile.Task, profile.Session)
						continue
					}
					fmt.Printf("  %s: %s %s <-> %s\n", name, profile.Task, profile.Left, profile.Right)
				}
			}

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Printf("Configuration file created at: %s\n", path)
			return nil
		},
	}
}
