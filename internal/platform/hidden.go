// Package platform isolates the OS-specific parts of asset discovery.
// The scanner never calls a platform API directly; it takes a hidden-entry
// predicate and this package supplies the implementations.
package platform

import (
	"path/filepath"
	"strings"
)

// DotPrefixHidden reports whether the entry is hidden by naming convention:
// its final path component starts with a dot. This is the cross-platform
// baseline check.
func DotPrefixHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

// IsHidden reports whether the entry should be invisible to asset
// discovery: dot-prefixed on every platform, or carrying the hidden
// filesystem attribute where the OS has one.
func IsHidden(path string) bool {
	if DotPrefixHidden(path) {
		return true
	}
	return hiddenAttribute(path)
}
