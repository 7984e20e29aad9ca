package platform

import (
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePath normalizes a path for the current platform
func NormalizePath(path string) string {
	normalized := filepath.Clean(path)

	// On Windows, ensure UNC paths are preserved
	if runtime.GOOS == "windows" {
		if strings.HasPrefix(path, "\\\\") && !strings.HasPrefix(normalized, "\\\\") {
			normalized = "\\\\" + normalized
		}
	}

	return normalized
}

// IsUNCPath checks if a path is a UNC path (Windows network share)
func IsUNCPath(path string) bool {
	if runtime.GOOS != "windows" {
		return false
	}
	return strings.HasPrefix(path, "\\\\") || strings.HasPrefix(path, "//")
}

// IsAbsolute checks if a path is absolute
func IsAbsolute(path string) bool {
	if IsUNCPath(path) {
		return true
	}
	return filepath.IsAbs(path)
}

// ValidatePath checks if a path is valid for the current platform.
// Beyond Compare scripts frequently reference Windows shares, so reserved
// characters are rejected up front instead of at script run time.
func ValidatePath(path string) error {
	if path == "" {
		return &PathError{Path: path, Message: "path is empty"}
	}

	if runtime.GOOS == "windows" {
		return validateWindowsPath(path)
	}

	return nil
}

// validateWindowsPath rejects characters NTFS cannot represent. The colon
// of a drive-letter prefix (`C:\data`) belongs to the volume name, not the
// path, so the prefix is stripped before the scan.
func validateWindowsPath(path string) error {
	if strings.HasPrefix(path, "\\\\") || strings.HasPrefix(path, "//") {
		return nil
	}

	rest := path
	if len(rest) >= 2 && rest[1] == ':' && isDriveLetter(rest[0]) {
		rest = rest[2:]
	}

	invalidChars := []string{"<", ">", ":", "\"", "|", "?", "*"}
	for _, char := range invalidChars {
		if strings.Contains(rest, char) {
			return &PathError{Path: path, Message: "path contains invalid character: " + char}
		}
	}

	return nil
}

func isDriveLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// PathError represents a path validation error
type PathError struct {
	Path    string
	Message string
}

func (e *PathError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Message
}
