// Package scriptfile persists rendered script text to transient files.
// Each file gets a unique name so concurrent invocations never collide,
// and the returned handle owns removal.
package scriptfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/sdejongh/bcpilot/pkg/models"
)

// filePrefix and fileExt frame the generated script filename
const (
	filePrefix = "bc-script-"
	fileExt    = ".txt"
)

// ScriptFile is a transient script file on disk. It is created immediately
// before execution and must be removed once the invocation completes,
// whether or not the external process ran.
type ScriptFile struct {
	path string

	mu      sync.Mutex
	removed bool
}

// Write renders the script text into a newly created file under dir.
// The name embeds a random UUID, so concurrent calls always produce
// distinct paths. An existing file at the generated path is never
// overwritten; the create fails instead.
func Write(dir, text string) (*ScriptFile, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &models.IOError{Op: "create directory", Path: dir, Err: err}
	}

	path := filepath.Join(dir, filePrefix+uuid.NewString()+fileExt)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, &models.IOError{Op: "create", Path: path, Err: err}
	}

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(path)
		return nil, &models.IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, &models.IOError{Op: "close", Path: path, Err: err}
	}

	return &ScriptFile{path: path}, nil
}

// Path returns the on-disk location of the script
func (s *ScriptFile) Path() string {
	return s.path
}

// Remove deletes the script file. It is safe to call more than once;
// only the first call touches the filesystem.
func (s *ScriptFile) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.removed {
		return nil
	}
	s.removed = true

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return &models.IOError{Op: "remove", Path: s.path, Err: err}
	}
	return nil
}

// String implements fmt.Stringer for log output
func (s *ScriptFile) String() string {
	return fmt.Sprintf("ScriptFile(%s)", s.path)
}
