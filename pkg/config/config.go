package config

import (
	"os"
	"path/filepath"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// EnvExecutable is the environment variable naming the Beyond Compare
// executable when no explicit path is configured
const EnvExecutable = "BCOMPARE_PATH"

// Config represents the application configuration
type Config struct {
	Execution ExecutionConfig    `yaml:"execution"`
	Logging   LoggingConfig      `yaml:"logging"`
	Output    OutputConfig       `yaml:"output"`
	Profiles  map[string]Profile `yaml:"profiles"`
}

// ExecutionConfig holds settings for launching Beyond Compare
type ExecutionConfig struct {
	// Executable is the path to the Beyond Compare binary.
	// Empty falls back to the BCOMPARE_PATH environment variable.
	Executable string `yaml:"executable"`

	// Flags are invocation flags passed after the script argument
	Flags []string `yaml:"flags"`

	// TimeoutSeconds limits each run; 0 disables the timeout
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// WorkDir is the working directory for the launched process.
	// Empty inherits the current directory.
	WorkDir string `yaml:"work_dir"`

	// DataDir is where per-run directories (reports, logs) are created.
	// Empty uses the user cache directory.
	DataDir string `yaml:"data_dir"`

	// ScriptDir is where transient script files are written.
	// Empty uses the system temporary directory.
	ScriptDir string `yaml:"script_dir"`
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = disabled)
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show progress bar during batch runs
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// Profile describes one named comparison or synchronization task.
// Profiles are turned into scripts by the session package.
type Profile struct {
	// Left and Right are the folder pair to load
	Left  string `yaml:"left"`
	Right string `yaml:"right"`

	// Session loads a saved Beyond Compare session instead of a folder pair
	Session string `yaml:"session"`

	// Task selects the script shape: "compare", "mirror" or "update"
	Task string `yaml:"task"`

	// Direction applies to sync tasks: "left->right", "right->left" or "all"
	Direction string `yaml:"direction"`

	// CreateEmpty creates empty folders on the target side during sync
	CreateEmpty bool `yaml:"create_empty"`

	// Filter restricts the comparison to matching masks, e.g. "*.go;*.md"
	Filter string `yaml:"filter"`

	// Criteria configures the comparison criteria
	Criteria CriteriaConfig `yaml:"criteria"`

	// Report configures the folder report written into the run directory
	Report ReportConfig `yaml:"report"`

	// Verbose enables Beyond Compare's verbose log in the run directory
	Verbose bool `yaml:"verbose"`
}

// CriteriaConfig mirrors the criteria command's terms
type CriteriaConfig struct {
	Attributes       string `yaml:"attributes"`
	Timestamp        bool   `yaml:"timestamp"`
	ToleranceSeconds int    `yaml:"tolerance_seconds"`
	Size             bool   `yaml:"size"`
	CRC              bool   `yaml:"crc"`
	Binary           bool   `yaml:"binary"`
	RulesBased       bool   `yaml:"rules_based"`
}

// ReportConfig describes the folder report a profile produces
type ReportConfig struct {
	// Enabled turns report generation on
	Enabled bool `yaml:"enabled"`

	// Layout is side-by-side, summary, interleaved or xml
	Layout string `yaml:"layout"`

	// Options are display options, e.g. display-mismatches
	Options []string `yaml:"options"`

	// Title is the report title
	Title string `yaml:"title"`

	// Filename is the report file name within the run directory
	Filename string `yaml:"filename"`

	// OutputOptions are output options, e.g. html-color
	OutputOptions []string `yaml:"output_options"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Execution: ExecutionConfig{
			Executable:     "",
			Flags:          []string{"/silent"},
			TimeoutSeconds: 600,
			DataDir:        "",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Format:  "text",
			Level:   "info",
			File:    "",
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Profiles: map[string]Profile{},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Execution.TimeoutSeconds < 0 {
		return &models.ValidationError{
			Field:   "execution.timeout_seconds",
			Message: "cannot be negative",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	for name, profile := range c.Profiles {
		if err := profile.Validate(); err != nil {
			return &models.ValidationError{
				Field:   "profiles." + name,
				Message: err.Error(),
			}
		}
	}

	return nil
}

// Validate checks if the profile is structurally usable. Detailed grammar
// validation happens when the profile is turned into script commands.
func (p *Profile) Validate() error {
	if p.Session == "" && (p.Left == "" || p.Right == "") {
		return &models.ValidationError{
			Field:   "left/right",
			Message: "a folder pair or a session name is required",
		}
	}
	if p.Session != "" && (p.Left != "" || p.Right != "") {
		return &models.ValidationError{
			Field:   "session",
			Message: "session and folder pair are mutually exclusive",
		}
	}

	validTasks := map[string]bool{"compare": true, "mirror": true, "update": true}
	if !validTasks[p.Task] {
		return &models.ValidationError{
			Field:   "task",
			Message: "must be 'compare', 'mirror' or 'update'",
		}
	}

	if p.Task == "compare" && !p.Report.Enabled {
		return &models.ValidationError{
			Field:   "report.enabled",
			Message: "a compare task needs a report to produce anything",
		}
	}

	return nil
}

// ResolveExecutable returns the executable path from the configuration or
// the BCOMPARE_PATH environment variable
func (c *Config) ResolveExecutable() string {
	if c.Execution.Executable != "" {
		return c.Execution.Executable
	}
	return os.Getenv(EnvExecutable)
}

// ResolveDataDir returns the configured data directory, falling back to the
// user cache directory
func (c *Config) ResolveDataDir() (string, error) {
	if c.Execution.DataDir != "" {
		return c.Execution.DataDir, nil
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cache, "bcpilot"), nil
}
