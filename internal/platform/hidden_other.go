//go:build !windows

package platform

// hiddenAttribute is a no-op on platforms without a hidden file attribute;
// only the dot-prefix convention applies.
func hiddenAttribute(string) bool {
	return false
}
