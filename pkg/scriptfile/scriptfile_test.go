package scriptfile

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestWriteCreatesFileWithContent(t *testing.T) {
	dir := t.TempDir()

	sf, err := Write(dir, "load \"/a\" \"/b\"\nexpand all\n")
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	defer sf.Remove()

	data, err := os.ReadFile(sf.Path())
	if err != nil {
		t.Fatalf("failed to read script file: %v", err)
	}
	if string(data) != "load \"/a\" \"/b\"\nexpand all\n" {
		t.Errorf("file content = %q", string(data))
	}

	name := filepath.Base(sf.Path())
	if !strings.HasPrefix(name, "bc-script-") || !strings.HasSuffix(name, ".txt") {
		t.Errorf("unexpected file name: %s", name)
	}
}

func TestWriteFailsOnUnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	if err := os.MkdirAll(blocked, 0555); err != nil {
		t.Fatalf("failed to create read-only dir: %v", err)
	}
	defer os.Chmod(blocked, 0755)

	if os.Getuid() == 0 {
		t.Skip("running as root, permission checks are bypassed")
	}

	if _, err := Write(blocked, "load \"/a\" \"/b\"\n"); err == nil {
		t.Fatal("Write() succeeded in a read-only directory")
	}
}

func TestWriteGeneratesDistinctPaths(t *testing.T) {
	dir := t.TempDir()

	seen := make(map[string]bool)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sf, err := Write(dir, "load \"/a\" \"/b\"\n")
			if err != nil {
				t.Errorf("Write() error: %v", err)
				return
			}
			mu.Lock()
			if seen[sf.Path()] {
				t.Errorf("duplicate script path: %s", sf.Path())
			}
			seen[sf.Path()] = true
			mu.Unlock()
			sf.Remove()
		}()
	}
	wg.Wait()
}

func TestRemoveDeletesFile(t *testing.T) {
	sf, err := Write(t.TempDir(), "load \"/a\" \"/b\"\n")
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	if err := sf.Remove(); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if _, err := os.Stat(sf.Path()); !os.IsNotExist(err) {
		t.Error("script file still exists after Remove()")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	sf, err := Write(t.TempDir(), "load \"/a\" \"/b\"\n")
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	if err := sf.Remove(); err != nil {
		t.Fatalf("first Remove() error: %v", err)
	}
	if err := sf.Remove(); err != nil {
		t.Fatalf("second Remove() error: %v", err)
	}
}

func TestRemoveToleratesExternalDeletion(t *testing.T) {
	sf, err := Write(t.TempDir(), "load \"/a\" \"/b\"\n")
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	if err := os.Remove(sf.Path()); err != nil {
		t.Fatalf("failed to remove file externally: %v", err)
	}
	if err := sf.Remove(); err != nil {
		t.Fatalf("Remove() error after external deletion: %v", err)
	}
}
