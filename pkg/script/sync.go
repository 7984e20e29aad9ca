package script

import (
	"fmt"
	"strings"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// SyncMode defines the synchronization behavior
type SyncMode string

const (
	// SyncMirror makes the target an exact copy of the source side
	SyncMirror SyncMode = "mirror"
	// SyncUpdate copies newer and orphaned files without deleting
	SyncUpdate SyncMode = "update"
)

// SyncDirection defines which side is synchronized to which
type SyncDirection string

const (
	DirectionLeftToRight SyncDirection = "left->right"
	DirectionRightToLeft SyncDirection = "right->left"
	// DirectionBoth updates both sides; only valid with SyncUpdate
	DirectionBoth SyncDirection = "all"
)

// SyncCommand synchronizes the loaded folder pair
type SyncCommand struct {
	mode        SyncMode
	direction   SyncDirection
	visible     bool
	createEmpty bool
}

// NewSync creates a sync command
func NewSync(mode SyncMode, direction SyncDirection) (*SyncCommand, error) {
	switch mode {
	case SyncMirror, SyncUpdate:
	default:
		return nil, &models.ValidationError{Field: "sync_mode", Message: fmt.Sprintf("unknown sync mode %q", mode)}
	}
	switch direction {
	case DirectionLeftToRight, DirectionRightToLeft:
	case DirectionBoth:
		if mode != SyncUpdate {
			return nil, &models.ValidationError{Field: "sync_direction", Message: "direction all is only valid with update mode"}
		}
	default:
		return nil, &models.ValidationError{Field: "sync_direction", Message: fmt.Sprintf("unknown sync direction %q", direction)}
	}
	return &SyncCommand{mode: mode, direction: direction}, nil
}

// Visible makes the sync progress dialog visible during execution
func (c *SyncCommand) Visible() *SyncCommand {
	c.visible = true
	return c
}

// CreateEmpty creates empty folders on the target side
func (c *SyncCommand) CreateEmpty() *SyncCommand {
	c.createEmpty = true
	return c
}

// Kind returns KindSync
func (c *SyncCommand) Kind() Kind {
	return KindSync
}

// Render returns the sync line, e.g. `sync create-empty mirror:left->right`
func (c *SyncCommand) Render() string {
	terms := []string{"sync"}
	if c.visible {
		terms = append(terms, "visible")
	}
	if c.createEmpty {
		terms = append(terms, "create-empty")
	}
	terms = append(terms, string(c.mode)+":"+string(c.direction))
	return strings.Join(terms, " ")
}
