package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempDir creates a temporary directory for testing
// It returns the directory path and a cleanup function
func TempDir(t *testing.T) (string, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "pathiter-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	cleanup := func() {
		os.RemoveAll(dir)
	}

	return dir, cleanup
}

// CreateTestFile creates a test file with the given content
func CreateTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	return path
}

// CreateTestDir creates a directory (and any parents) under dir
func CreateTestDir(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	return path
}

// CreateTree populates dir from relative path specs. A spec ending in
// "/" becomes a directory; anything else becomes an empty file with its
// parent directories created as needed.
func CreateTree(t *testing.T, dir string, specs ...string) {
	t.Helper()

	for _, spec := range specs {
		if strings.HasSuffix(spec, "/") {
			CreateTestDir(t, dir, filepath.FromSlash(strings.TrimSuffix(spec, "/")))
			continue
		}
		rel := filepath.FromSlash(spec)
		if parent := filepath.Dir(rel); parent != "." {
			CreateTestDir(t, dir, parent)
		}
		CreateTestFile(t, dir, rel, nil)
	}
}

// Symlink creates a symbolic link at newname pointing to oldname,
// skipping the test on platforms where that needs privileges
func Symlink(t *testing.T, oldname, newname string) {
	t.Helper()

	if err := os.Symlink(oldname, newname); err != nil {
		t.Skipf("cannot create symlink: %v", err)
	}
}
