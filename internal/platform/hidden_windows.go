//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// hiddenAttribute checks the FILE_ATTRIBUTE_HIDDEN bit. Any failure to read
// attributes is treated as "not hidden" so an unreadable entry is still
// visible to the scan rather than silently dropped.
func hiddenAttribute(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil || attrs == windows.INVALID_FILE_ATTRIBUTES {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
