// Package script models Beyond Compare automation scripts as a closed set
// of typed commands. Each command validates its parameters at construction
// and renders itself as the exact script text the Beyond Compare scripting
// grammar expects.
package script

import (
	"strings"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// Kind identifies the grammar class of a command.
// The builder's structure rules operate on kinds, not concrete types.
type Kind string

const (
	// KindLoad loads a base folder pair or saved session
	KindLoad Kind = "load"
	// KindCriteria sets the comparison criteria
	KindCriteria Kind = "criteria"
	// KindFilter restricts the comparison to matching file masks
	KindFilter Kind = "filter"
	// KindOption sets an interpreter option
	KindOption Kind = "option"
	// KindLog controls Beyond Compare's own log output
	KindLog Kind = "log"
	// KindExpand expands subfolders in the loaded comparison
	KindExpand Kind = "expand"
	// KindSelect selects files for subsequent operations
	KindSelect Kind = "select"
	// KindReport generates a folder comparison report
	KindReport Kind = "report"
	// KindSync synchronizes the loaded folder pair
	KindSync Kind = "sync"
)

// Command is one operation within a script. Render returns the exact
// line(s) of script text for the operation. Rendering is pure: the output
// depends only on the parameters validated at construction.
type Command interface {
	Kind() Kind
	Render() string
}

// quote wraps an argument in double quotes. Beyond Compare's grammar quotes
// arguments that may contain spaces; quoting unconditionally keeps rendering
// deterministic.
func quote(s string) string {
	return `"` + s + `"`
}

// quoteIfNeeded quotes only when the argument contains whitespace.
// Used for values the grammar accepts bare, such as report titles.
func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, " \t") {
		return quote(s)
	}
	return s
}

// validateArg rejects values the grammar cannot represent. There is no
// escape sequence for embedded quotes, and a newline would split the command.
func validateArg(field, value string) *models.ValidationError {
	if value == "" {
		return &models.ValidationError{Field: field, Message: "value is required"}
	}
	if strings.ContainsAny(value, "\"\r\n") {
		return &models.ValidationError{Field: field, Message: "value must not contain quotes or line breaks"}
	}
	return nil
}
