// Package renamer plans and executes multi-file rename and move
// operations over asset bundles. Planning is pure with respect to the
// target layout: a plan is a list of (src, dst) moves that Apply executes
// all-or-nothing via a two-phase temporary rename, so a same-batch swap
// never exposes a torn intermediate state.
package renamer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sprintgm/sprintgm/internal/assets"
	"github.com/sprintgm/sprintgm/internal/pathkey"
)

// Move is one planned file relocation
type Move struct {
	Src string
	Dst string
}

// Renamer plans and applies bundle renames
type Renamer struct {
	classifier *assets.Classifier
}

// New creates a Renamer using the given classifier. The classifier must
// match the one the scan was produced with, otherwise plans and scan
// results disagree about which files belong to a basename.
func New(c *assets.Classifier) *Renamer {
	return &Renamer{classifier: c}
}

// invalidBasenameChars are rejected in new basenames; they are either path
// separators or reserved by Windows filenames.
const invalidBasenameChars = `\/:*?"<>|`

// ValidateBasename rejects empty basenames and filename-reserved characters.
func ValidateBasename(basename string) error {
	if strings.TrimSpace(basename) == "" {
		return fmt.Errorf("basename is empty")
	}
	if strings.ContainsAny(basename, invalidBasenameChars) {
		return fmt.Errorf("basename contains invalid filename characters: %s", basename)
	}
	return nil
}

// PlanRename plans moves for every file in folder classified under
// oldBasename, substituting newBasename while preserving each file's
// suffix pattern.
func (r *Renamer) PlanRename(folder, oldBasename, newBasename string) ([]Move, error) {
	return r.plan(folder, oldBasename, folder, nil, func(name string, kind assets.Kind) string {
		return assets.BuildName(newBasename, kind, name)
	})
}

// PlanFolderRename plans moves for the companion files of a like-named
// subfolder. ROM and config kinds are excluded; they never describe a
// folder. Renaming the subfolder itself is the caller's separate step.
func (r *Renamer) PlanFolderRename(folder, oldBasename, newBasename string) ([]Move, error) {
	return r.plan(folder, oldBasename, folder, assets.FolderKind, func(name string, kind assets.Kind) string {
		return assets.BuildName(newBasename, kind, name)
	})
}

// PlanMove plans moves relocating every file of basename from srcFolder to
// dstFolder. A move never changes the basename, only the directory: each
// file keeps its exact on-disk name, including any non-canonical casing.
func (r *Renamer) PlanMove(srcFolder, dstFolder, basename string) ([]Move, error) {
	return r.plan(srcFolder, basename, dstFolder, nil, func(name string, _ assets.Kind) string {
		return name
	})
}

// plan walks folder once and emits a move for every classified file whose
// basename matches oldBasename under case-insensitive comparison. dstName
// computes the destination filename from the entry's current name.
func (r *Renamer) plan(folder, oldBasename, dstFolder string, keep func(assets.Kind) bool, dstName func(string, assets.Kind) string) ([]Move, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", folder, err)
	}

	oldKey := pathkey.NameKey(oldBasename)
	var moves []Move
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		base, kind := r.classifier.Classify(name)
		if kind == assets.KindNone || pathkey.NameKey(base) != oldKey {
			continue
		}
		if keep != nil && !keep(kind) {
			continue
		}

		moves = append(moves, Move{
			Src: filepath.Join(folder, name),
			Dst: filepath.Join(dstFolder, dstName(name, kind)),
		})
	}

	return moves, nil
}
