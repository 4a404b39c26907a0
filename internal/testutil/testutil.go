// Package testutil provides fixtures for building game asset trees in
// tests. All file operations go through t.TempDir() for isolation.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// TestFixture holds the root of a temporary games tree
type TestFixture struct {
	T       *testing.T
	RootDir string // auto-cleaned by the testing package
}

// NewFixture creates a fixture rooted in a fresh temp directory
func NewFixture(t *testing.T) *TestFixture {
	t.Helper()
	return &TestFixture{
		T:       t,
		RootDir: t.TempDir(),
	}
}

// CreateFile creates a file under the root and returns its full path
func (f *TestFixture) CreateFile(relPath string, content []byte) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		f.T.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", relPath, err)
	}
	return fullPath
}

// CreateDir creates a directory under the root and returns its full path
func (f *TestFixture) CreateDir(relPath string) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", relPath, err)
	}
	return fullPath
}

// gameFiles maps a fixture kind name to the filename it produces for a
// basename. Extensions follow the Sprint filename convention.
var gameFiles = map[string]string{
	"rom":         "%s.int",
	"rom_bin":     "%s.bin",
	"config":      "%s.cfg",
	"metadata":    "%s.json",
	"box":         "%s.png",
	"small":       "%s_small.png",
	"overlay":     "%s_overlay.png",
	"overlay2":    "%s_overlay2.png",
	"overlay3":    "%s_overlay3.png",
	"big_overlay": "%s_big_overlay.png",
	"qrcode":      "%s_qrcode.png",
	"snap1":       "%s_snap1.png",
	"snap2":       "%s_snap2.png",
	"snap3":       "%s_snap3.png",
}

// CreateGame creates asset files for one game in relDir ("." for the
// root). Kinds name which files to create: rom, rom_bin, config, metadata,
// box, small, overlay, overlay2, overlay3, big_overlay, qrcode, snap1,
// snap2, snap3. Returns the full paths in argument order.
func (f *TestFixture) CreateGame(relDir, basename string, kinds ...string) []string {
	f.T.Helper()

	paths := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		pattern, ok := gameFiles[kind]
		if !ok {
			f.T.Fatalf("unknown game file kind %q", kind)
		}
		name := fmt.Sprintf(pattern, basename)
		rel := name
		if relDir != "." && relDir != "" {
			rel = filepath.Join(relDir, name)
		}
		paths = append(paths, f.CreateFile(rel, []byte(kind+" data for "+basename)))
	}
	return paths
}

// ReadFile reads a file by full path, failing the test on error
func (f *TestFixture) ReadFile(path string) string {
	f.T.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		f.T.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether the given full path exists
func (f *TestFixture) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListNames returns the sorted entry names of a directory
func (f *TestFixture) ListNames(dir string) []string {
	f.T.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		f.T.Fatalf("failed to read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
