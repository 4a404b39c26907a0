package assets

import (
	"path/filepath"
	"strings"

	"github.com/sprintgm/sprintgm/internal/pathkey"
)

// DefaultRomExtensions is the ROM extension set recognized out of the box,
// in tie-break precedence order (see ChooseRom).
var DefaultRomExtensions = []string{".int", ".bin", ".rom"}

// pngSuffixes maps a stem suffix token to its image kind. Matched in order:
// longer tokens first so "_big_overlay" wins over "_overlay" and
// "_overlay2"/"_overlay3" win before the bare "_overlay" check.
var pngSuffixes = []struct {
	token string
	kind  Kind
}{
	{"_big_overlay", KindOverlayBig},
	{"_overlay2", KindOverlay2},
	{"_overlay3", KindOverlay3},
	{"_overlay", KindOverlay},
	{"_qrcode", KindQrCode},
	{"_small", KindBoxSmall},
	{"_snap1", KindSnap1},
	{"_snap2", KindSnap2},
	{"_snap3", KindSnap3},
}

// Classifier maps filenames to (basename, Kind) pairs. The ROM extension
// set is configurable; everything else follows the fixed Sprint filename
// convention.
type Classifier struct {
	romExts map[string]struct{}
	romRank map[string]int
}

// NewClassifier creates a Classifier recognizing the given ROM extensions
// (with leading dot, compared case-insensitively). An empty list falls back
// to DefaultRomExtensions.
func NewClassifier(romExts []string) *Classifier {
	if len(romExts) == 0 {
		romExts = DefaultRomExtensions
	}

	c := &Classifier{
		romExts: make(map[string]struct{}, len(romExts)),
		romRank: make(map[string]int, len(romExts)),
	}
	for i, ext := range romExts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, dup := c.romExts[ext]; dup {
			continue
		}
		c.romExts[ext] = struct{}{}
		c.romRank[ext] = i
	}
	return c
}

// RomExtension reports whether ext (with leading dot) is a recognized ROM
// extension.
func (c *Classifier) RomExtension(ext string) bool {
	_, ok := c.romExts[strings.ToLower(ext)]
	return ok
}

// PaletteHelper reports whether the filename is a palette helper file:
// a .cfg or .txt whose name contains "palette" anywhere, case-folded.
// Palette helpers are never game configs.
func PaletteHelper(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".cfg" && ext != ".txt" {
		return false
	}
	return strings.Contains(pathkey.NameKey(name), "palette")
}

// KeyboardHelper reports whether the filename is a keyboard hack file.
func KeyboardHelper(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".kbd"
}

// Classify derives the basename and asset kind from a filename. It is a
// pure function of the name (directory components are ignored). Files that
// play no role in the bundle system return ("", KindNone).
func (c *Classifier) Classify(name string) (string, Kind) {
	name = filepath.Base(name)
	ext := strings.ToLower(filepath.Ext(name))
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	if c.RomExtension(ext) {
		return stem, KindRom
	}

	switch ext {
	case ".cfg":
		// Palette helper files masquerade as configs; keep them out of
		// game discovery entirely.
		if strings.Contains(pathkey.NameKey(name), "palette") {
			return "", KindNone
		}
		return stem, KindConfig
	case ".json":
		return stem, KindMetadata
	case ".png":
		lower := strings.ToLower(stem)
		for _, s := range pngSuffixes {
			if strings.HasSuffix(lower, s.token) {
				return stem[:len(stem)-len(s.token)], s.kind
			}
		}
		// A plain .png is the box art.
		return stem, KindBox
	}

	return "", KindNone
}

// BuildName constructs the filename a file of the given kind must carry for
// basename. It is the exact inverse of Classify's suffix stripping. oldName
// supplies the extension for kinds that keep the source extension (ROMs).
func BuildName(basename string, kind Kind, oldName string) string {
	ext := filepath.Ext(oldName)

	switch kind {
	case KindRom:
		return basename + ext
	case KindConfig:
		return basename + ".cfg"
	case KindMetadata:
		return basename + ".json"
	case KindBox:
		return basename + ".png"
	case KindBoxSmall:
		return basename + "_small.png"
	case KindOverlay:
		return basename + "_overlay.png"
	case KindOverlay2:
		return basename + "_overlay2.png"
	case KindOverlay3:
		return basename + "_overlay3.png"
	case KindOverlayBig:
		return basename + "_big_overlay.png"
	case KindQrCode:
		return basename + "_qrcode.png"
	case KindSnap1:
		return basename + "_snap1.png"
	case KindSnap2:
		return basename + "_snap2.png"
	case KindSnap3:
		return basename + "_snap3.png"
	}

	return basename + ext
}

// ChooseRom picks the winner when two files claim the ROM slot of one
// basename. The result does not depend on argument order or on directory
// iteration order: recognized extensions rank by their position in the
// configured extension list, unrecognized ones rank last, and ties fall
// back to case-folded then raw filename comparison.
func (c *Classifier) ChooseRom(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}

	ra := c.romExtRank(a)
	rb := c.romExtRank(b)
	if ra != rb {
		if ra < rb {
			return a
		}
		return b
	}

	ka := pathkey.Key(a)
	kb := pathkey.Key(b)
	if ka != kb {
		if ka < kb {
			return a
		}
		return b
	}
	if a < b {
		return a
	}
	return b
}

func (c *Classifier) romExtRank(path string) int {
	if rank, ok := c.romRank[strings.ToLower(filepath.Ext(path))]; ok {
		return rank
	}
	return len(c.romRank)
}
