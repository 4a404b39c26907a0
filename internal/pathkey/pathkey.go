// Package pathkey produces normalized comparison keys for paths and names.
// The Sprint filesystem is case-insensitive, so every comparison in the
// asset manager goes through these keys regardless of the host OS.
package pathkey

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NameKey returns a normalized, case-insensitive comparison key for a bare
// name (a basename or filename, not a path). Unicode is NFC-normalized so
// visually-identical strings compare equal, then case-folded.
func NameKey(name string) string {
	return cases.Fold().String(norm.NFC.String(name))
}

// Key returns a normalized, case-insensitive comparison key for a path.
// Two paths that denote the same file on a case-insensitive filesystem
// yield equal keys regardless of slash direction, trailing separators, or
// letter case. The path does not need to exist; resolution degrades from
// symlink resolution to plain absolutization to the raw string.
func Key(path string) string {
	if path == "" {
		return ""
	}

	p := path
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}

	s := filepath.ToSlash(p)
	if len(s) > 1 {
		s = strings.TrimRight(s, "/")
		if s == "" {
			s = "/"
		}
	}
	return NameKey(s)
}
