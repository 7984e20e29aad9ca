package script

import (
	"fmt"
	"strings"
	"time"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// Criteria describes how Beyond Compare decides whether two files match.
// At least one criterion must be enabled.
type Criteria struct {
	// Attributes compares the listed attribute flags, e.g. "ashr"
	// (archive, system, hidden, read-only)
	Attributes string

	// Timestamp compares modification times; TimestampTolerance allows a
	// difference of up to the given duration (rounded to whole seconds)
	Timestamp          bool
	TimestampTolerance time.Duration

	// Size compares file sizes
	Size bool

	// CRC compares CRC32 checksums
	CRC bool

	// Binary compares full file contents
	Binary bool

	// RulesBased uses the file formats' rule-based comparison
	RulesBased bool

	// Version compares version resource information
	Version bool
}

// CriteriaCommand sets the comparison criteria for the loaded session
type CriteriaCommand struct {
	criteria Criteria
}

// NewCriteria creates a criteria command
func NewCriteria(c Criteria) (*CriteriaCommand, error) {
	if c.Attributes == "" && !c.Timestamp && !c.Size && !c.CRC && !c.Binary && !c.RulesBased && !c.Version {
		return nil, &models.ValidationError{Field: "criteria", Message: "at least one criterion must be enabled"}
	}
	for _, r := range c.Attributes {
		if !strings.ContainsRune("ashr", r) {
			return nil, &models.ValidationError{Field: "attributes", Message: fmt.Sprintf("unknown attribute flag %q (valid: a, s, h, r)", r)}
		}
	}
	if c.TimestampTolerance < 0 {
		return nil, &models.ValidationError{Field: "timestamp_tolerance", Message: "tolerance cannot be negative"}
	}
	if c.TimestampTolerance > 0 && !c.Timestamp {
		return nil, &models.ValidationError{Field: "timestamp_tolerance", Message: "tolerance requires the timestamp criterion"}
	}
	return &CriteriaCommand{criteria: c}, nil
}

// Kind returns KindCriteria
func (c *CriteriaCommand) Kind() Kind {
	return KindCriteria
}

// Render returns the criteria line with terms in a fixed order,
// e.g. `criteria attrib:ashr timestamp:2sec size`
func (c *CriteriaCommand) Render() string {
	terms := []string{"criteria"}

	if c.criteria.Attributes != "" {
		terms = append(terms, "attrib:"+c.criteria.Attributes)
	}
	if c.criteria.Timestamp {
		if tol := c.criteria.TimestampTolerance; tol > 0 {
			terms = append(terms, fmt.Sprintf("timestamp:%dsec", int(tol.Round(time.Second).Seconds())))
		} else {
			terms = append(terms, "timestamp")
		}
	}
	if c.criteria.Size {
		terms = append(terms, "size")
	}
	if c.criteria.CRC {
		terms = append(terms, "crc")
	}
	if c.criteria.Binary {
		terms = append(terms, "binary")
	}
	if c.criteria.RulesBased {
		terms = append(terms, "rules-based")
	}
	if c.criteria.Version {
		terms = append(terms, "version")
	}

	return strings.Join(terms, " ")
}
