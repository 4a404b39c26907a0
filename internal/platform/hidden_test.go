package platform

import (
	"path/filepath"
	"testing"
)

func TestDotPrefixHidden(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{".git", true},
		{"/games/.hidden", true},
		{filepath.Join("a", "b", ".DS_Store"), true},
		{"games", false},
		{"/games/visible.png", false},
		{"/games/.config/visible", false},
	}

	for _, tt := range tests {
		if got := DotPrefixHidden(tt.path); got != tt.want {
			t.Errorf("DotPrefixHidden(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsHiddenDotPrefix(t *testing.T) {
	if !IsHidden("/games/.thumbnails") {
		t.Error("dot-prefixed directory should be hidden on every platform")
	}
	if IsHidden(filepath.Join(t.TempDir(), "plain")) {
		t.Error("plain nonexistent entry should not be hidden")
	}
}
