// Package scanner discovers game asset bundles under a root directory.
// One scan walks the whole tree, classifies every file by the Sprint
// filename convention, and groups files into per-basename bundles. Results
// are rebuilt fresh on every scan; callers rescan after mutating the tree.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sprintgm/sprintgm/internal/assets"
	"github.com/sprintgm/sprintgm/internal/config"
	"github.com/sprintgm/sprintgm/internal/pathkey"
	"github.com/sprintgm/sprintgm/internal/platform"
)

// Result represents the outcome of one scan.
//
// Games is keyed by the scan-relative game identifier: the basename alone
// for games at the root, or "<subfolder>/<basename>" POSIX-joined for
// nested games. Folders holds folder-companion bundles keyed by the full
// path of the subfolder they describe. GameKeys and FolderKeys carry the
// keys in case-insensitive lexicographic order for stable presentation.
type Result struct {
	Folder string

	Games    map[string]*assets.Bundle
	GameKeys []string

	Folders    map[string]*assets.Bundle
	FolderKeys []string

	PaletteFiles  []string
	KeyboardFiles []string

	// Errors collects directories that could not be read mid-walk.
	// They are skipped, never fatal.
	Errors []error
}

// Scanner walks a directory tree and builds asset bundles
type Scanner struct {
	classifier *assets.Classifier
	isHidden   func(string) bool
}

// New creates a Scanner from the application configuration.
func New(cfg *config.Config) *Scanner {
	hidden := platform.DotPrefixHidden
	if cfg.UseHiddenAttribute {
		hidden = platform.IsHidden
	}
	return &Scanner{
		classifier: assets.NewClassifier(cfg.RomExtensions),
		isHidden:   hidden,
	}
}

// Classifier returns the classifier the scanner groups files with.
func (s *Scanner) Classifier() *assets.Classifier {
	return s.classifier
}

// SetHiddenFunc overrides the hidden-entry predicate. Used in tests and by
// callers that need custom visibility rules.
func (s *Scanner) SetHiddenFunc(fn func(string) bool) {
	if fn != nil {
		s.isHidden = fn
	}
}

// Scan walks root and returns the discovered bundles. A missing or
// non-directory root yields an empty Result, not an error: scanning a
// vanished folder is an expected transient state.
func (s *Scanner) Scan(root string) *Result {
	result := &Result{
		Folder:  root,
		Games:   make(map[string]*assets.Bundle),
		Folders: make(map[string]*assets.Bundle),
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		result.sortKeys()
		return result
	}

	// Explicit stack walk so hidden-directory pruning stays under our
	// control and each level can collect child directory names before
	// its files are classified.
	stack := []string{root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("reading %s: %w", dir, err))
			continue
		}

		// Directories first: a file whose basename matches a sibling
		// subfolder is a folder companion, not a game.
		dirNames := make(map[string]struct{})
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			child := filepath.Join(dir, entry.Name())
			if s.isHidden(child) {
				continue
			}
			dirNames[entry.Name()] = struct{}{}
			stack = append(stack, child)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if platform.DotPrefixHidden(name) {
				continue
			}
			path := filepath.Join(dir, name)
			if !regularFile(entry, path) {
				continue
			}

			if assets.PaletteHelper(name) {
				result.PaletteFiles = append(result.PaletteFiles, path)
			}
			if assets.KeyboardHelper(name) {
				result.KeyboardFiles = append(result.KeyboardFiles, path)
			}

			base, kind := s.classifier.Classify(name)
			if kind == assets.KindNone {
				continue
			}

			if _, isCompanion := dirNames[base]; isCompanion {
				s.addFolderCompanion(result, dir, base, kind, path)
				continue
			}

			s.addGameFile(result, root, dir, base, kind, path)
		}
	}

	result.sortKeys()
	return result
}

// addGameFile places a classified file into its game bundle, creating the
// bundle on first sight.
func (s *Scanner) addGameFile(result *Result, root, dir, base string, kind assets.Kind, path string) {
	key := base
	if rel, err := filepath.Rel(root, dir); err == nil && rel != "." && rel != "" {
		key = filepath.ToSlash(rel) + "/" + base
	}

	game := result.Games[key]
	if game == nil {
		game = assets.NewBundle(base, dir)
		result.Games[key] = game
	}
	game.Set(kind, path, s.classifier)
}

// addFolderCompanion places a file that describes a like-named sibling
// subfolder. ROMs and configs have no meaning for a folder and are dropped.
func (s *Scanner) addFolderCompanion(result *Result, dir, base string, kind assets.Kind, path string) {
	if !assets.FolderKind(kind) {
		return
	}

	key := filepath.Join(dir, base)
	bundle := result.Folders[key]
	if bundle == nil {
		bundle = assets.NewBundle(base, dir)
		result.Folders[key] = bundle
	}
	bundle.Set(kind, path, s.classifier)
}

// regularFile reports whether the entry is a regular file, following
// symlinks to their target. Sockets, pipes, and broken links stay
// invisible to the scan.
func regularFile(entry os.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// sortKeys fixes the presentation ordering: case-insensitive lexicographic
// over keys and helper paths.
func (r *Result) sortKeys() {
	r.GameKeys = sortedKeys(r.Games)
	r.FolderKeys = sortedKeys(r.Folders)
	sortFolded(r.PaletteFiles)
	sortFolded(r.KeyboardFiles)
}

func sortedKeys(m map[string]*assets.Bundle) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortFolded(keys)
	return keys
}

func sortFolded(items []string) {
	sort.Slice(items, func(i, j int) bool {
		ki, kj := pathkey.NameKey(items[i]), pathkey.NameKey(items[j])
		if ki != kj {
			return ki < kj
		}
		return items[i] < items[j]
	})
}
