package script

import (
	"fmt"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// ExpandCommand expands subfolders of the loaded comparison so that
// selections and reports cover the full tree
type ExpandCommand struct{}

// NewExpandAll creates an `expand all` command
func NewExpandAll() *ExpandCommand {
	return &ExpandCommand{}
}

// Kind returns KindExpand
func (c *ExpandCommand) Kind() Kind {
	return KindExpand
}

// Render returns `expand all`
func (c *ExpandCommand) Render() string {
	return "expand all"
}

// Selection identifies a file class for the select command
type Selection string

const (
	SelectAllFiles         Selection = "all.files"
	SelectAllDiffFiles     Selection = "all.diff.files"
	SelectNewerFiles       Selection = "newer.files"
	SelectLeftNewerFiles   Selection = "left.newer.files"
	SelectRightNewerFiles  Selection = "right.newer.files"
	SelectLeftOrphanFiles  Selection = "left.orphan.files"
	SelectRightOrphanFiles Selection = "right.orphan.files"
)

// validSelections is the closed set of selection targets the grammar accepts
var validSelections = map[Selection]bool{
	SelectAllFiles:         true,
	SelectAllDiffFiles:     true,
	SelectNewerFiles:       true,
	SelectLeftNewerFiles:   true,
	SelectRightNewerFiles:  true,
	SelectLeftOrphanFiles:  true,
	SelectRightOrphanFiles: true,
}

// SelectCommand selects a class of files for subsequent operations
type SelectCommand struct {
	targets []Selection
}

// NewSelect creates a select command for one or more file classes
func NewSelect(targets ...Selection) (*SelectCommand, error) {
	if len(targets) == 0 {
		return nil, &models.ValidationError{Field: "select", Message: "at least one selection target is required"}
	}
	for _, target := range targets {
		if !validSelections[target] {
			return nil, &models.ValidationError{Field: "select", Message: fmt.Sprintf("unknown selection target %q", target)}
		}
	}
	return &SelectCommand{targets: targets}, nil
}

// Kind returns KindSelect
func (c *SelectCommand) Kind() Kind {
	return KindSelect
}

// Render returns the select line, e.g. `select all.diff.files`
func (c *SelectCommand) Render() string {
	line := "select"
	for _, target := range c.targets {
		line += " " + string(target)
	}
	return line
}

// FilterCommand restricts the comparison to files matching the given masks
type FilterCommand struct {
	masks string
}

// NewFilter creates a filter command. Multiple masks are separated with
// semicolons, e.g. "*.go;*.md".
func NewFilter(masks string) (*FilterCommand, error) {
	if err := validateArg("filter", masks); err != nil {
		return nil, err
	}
	return &FilterCommand{masks: masks}, nil
}

// Kind returns KindFilter
func (c *FilterCommand) Kind() Kind {
	return KindFilter
}

// Render returns the filter line, e.g. `filter "*.go;*.md"`
func (c *FilterCommand) Render() string {
	return "filter " + quote(c.masks)
}

// Option is an interpreter option toggle
type Option string

const (
	// OptionConfirmYesToAll answers every confirmation prompt with yes
	OptionConfirmYesToAll Option = "confirm:yes-to-all"
	// OptionConfirmPrompt restores interactive confirmation prompts
	OptionConfirmPrompt Option = "confirm:prompt"
	// OptionStopOnError aborts the script when a command fails
	OptionStopOnError Option = "stop-on-error"
)

var validOptions = map[Option]bool{
	OptionConfirmYesToAll: true,
	OptionConfirmPrompt:   true,
	OptionStopOnError:     true,
}

// OptionCommand sets an interpreter option
type OptionCommand struct {
	option Option
}

// NewOption creates an option command
func NewOption(option Option) (*OptionCommand, error) {
	if !validOptions[option] {
		return nil, &models.ValidationError{Field: "option", Message: fmt.Sprintf("unknown option %q", option)}
	}
	return &OptionCommand{option: option}, nil
}

// Kind returns KindOption
func (c *OptionCommand) Kind() Kind {
	return KindOption
}

// Render returns the option line, e.g. `option confirm:yes-to-all`
func (c *OptionCommand) Render() string {
	return "option " + string(c.option)
}

// LogLevel controls how much detail Beyond Compare writes to its log
type LogLevel string

const (
	LogVerbose LogLevel = "verbose"
	LogNormal  LogLevel = "normal"
	LogNone    LogLevel = "none"
)

// LogCommand directs Beyond Compare's own log output to a file
type LogCommand struct {
	level  LogLevel
	path   string
	append bool
}

// NewLog creates a log command writing to the given file. A LogNone level
// disables logging and takes no path.
func NewLog(level LogLevel, path string) (*LogCommand, error) {
	switch level {
	case LogVerbose, LogNormal:
		if err := validateArg("log_path", path); err != nil {
			return nil, err
		}
	case LogNone:
		if path != "" {
			return nil, &models.ValidationError{Field: "log_path", Message: "log none takes no path"}
		}
	default:
		return nil, &models.ValidationError{Field: "log_level", Message: fmt.Sprintf("unknown log level %q", level)}
	}
	return &LogCommand{level: level, path: path}, nil
}

// NewLogAppend creates a log command appending to an existing file
func NewLogAppend(level LogLevel, path string) (*LogCommand, error) {
	cmd, err := NewLog(level, path)
	if err != nil {
		return nil, err
	}
	if level == LogNone {
		return nil, &models.ValidationError{Field: "log_level", Message: "log none cannot append"}
	}
	cmd.append = true
	return cmd, nil
}

// Kind returns KindLog
func (c *LogCommand) Kind() Kind {
	return KindLog
}

// Render returns the log line, e.g. `log verbose "/run/bc.log"`
func (c *LogCommand) Render() string {
	if c.level == LogNone {
		return "log none"
	}
	if c.append {
		return "log " + string(c.level) + " append:" + quote(c.path)
	}
	return "log " + string(c.level) + " " + quote(c.path)
}
