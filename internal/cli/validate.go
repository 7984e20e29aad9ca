package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sdejongh/bcpilot/internal/platform"
	"github.com/sdejongh/bcpilot/pkg/config"
	"github.com/sdejongh/bcpilot/pkg/logging"
)

// validateFolderPair checks the left and right paths of an ad-hoc profile.
// Both must name existing directories and must not be the same folder.
func validateFolderPair(left, right string) error {
	for _, pair := range []struct {
		name, path string
	}{
		{"left", left},
		{"right", right},
	} {
		if err := platform.ValidatePath(pair.path); err != nil {
			return fmt.Errorf("invalid %s path: %w", pair.name, err)
		}
		info, err := os.Stat(platform.NormalizePath(pair.path))
		if os.IsNotExist(err) {
			// UNC and remote paths may not be statable from here; Beyond
			// Compare resolves them itself
			if platform.IsUNCPath(pair.path) {
				continue
			}
			return fmt.Errorf("%s path does not exist: %s", pair.name, pair.path)
		} else if err != nil {
			return fmt.Errorf("failed to access %s path: %w", pair.name, err)
		} else if !info.IsDir() {
			return fmt.Errorf("%s path is not a directory: %s", pair.name, pair.path)
		}
	}

	leftAbs, err := filepath.Abs(left)
	if err != nil {
		return fmt.Errorf("failed to resolve left path: %w", err)
	}
	rightAbs, err := filepath.Abs(right)
	if err != nil {
		return fmt.Errorf("failed to resolve right path: %w", err)
	}
	if leftAbs == rightAbs {
		return fmt.Errorf("left and right cannot be the same folder: %s", leftAbs)
	}
	if strings.HasPrefix(rightAbs, leftAbs+string(filepath.Separator)) ||
		strings.HasPrefix(leftAbs, rightAbs+string(filepath.Separator)) {
		return fmt.Errorf("left and right folders cannot be nested")
	}

	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyGlobalFlags overrides config values with global command-line flags
func applyGlobalFlags(cfg *config.Config) {
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}
	if globalFlags.Verbose {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
}

// newLogger builds the application logger from configuration.
// Logging disabled or no file configured means a null logger.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled || cfg.Logging.File == "" {
		return logging.NewNullLogger(), nil
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:   cfg.Logging.File,
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})
}
