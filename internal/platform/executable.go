package platform

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// FindExecutable resolves and verifies the Beyond Compare executable.
// A bare command name is looked up on PATH; an explicit path must exist
// and be executable. An empty path is an error: executable discovery is
// the caller's responsibility, not ours.
func FindExecutable(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no Beyond Compare executable configured (set execution.executable or BCOMPARE_PATH)")
	}

	// Bare command names resolve through PATH
	if _, hasSep := splitOnSeparator(path); !hasSep {
		resolved, err := exec.LookPath(path)
		if err != nil {
			return "", fmt.Errorf("executable %q not found on PATH: %w", path, err)
		}
		return resolved, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("executable not found at %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("executable path %s is a directory", path)
	}
	if runtime.GOOS != "windows" && info.Mode()&0111 == 0 {
		return "", fmt.Errorf("file at %s is not executable", path)
	}

	return path, nil
}

// splitOnSeparator reports whether the path contains a directory separator
func splitOnSeparator(path string) (string, bool) {
	for _, r := range path {
		if r == '/' || r == '\\' {
			return path, true
		}
	}
	return path, false
}
