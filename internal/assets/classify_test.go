package assets

import (
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name     string
		file     string
		wantBase string
		wantKind Kind
	}{
		// ROMs
		{"int rom", "zelda.int", "zelda", KindRom},
		{"bin rom", "zelda.bin", "zelda", KindRom},
		{"rom rom", "zelda.rom", "zelda", KindRom},
		{"uppercase rom ext", "ZELDA.INT", "ZELDA", KindRom},

		// Config and metadata
		{"config", "zelda.cfg", "zelda", KindConfig},
		{"metadata", "zelda.json", "zelda", KindMetadata},

		// Images, strict suffix priority
		{"box", "zelda.png", "zelda", KindBox},
		{"box small", "zelda_small.png", "zelda", KindBoxSmall},
		{"overlay", "zelda_overlay.png", "zelda", KindOverlay},
		{"overlay2", "zelda_overlay2.png", "zelda", KindOverlay2},
		{"overlay3", "zelda_overlay3.png", "zelda", KindOverlay3},
		{"big overlay", "zelda_big_overlay.png", "zelda", KindOverlayBig},
		{"qr code", "zelda_qrcode.png", "zelda", KindQrCode},
		{"snap1", "zelda_snap1.png", "zelda", KindSnap1},
		{"snap2", "zelda_snap2.png", "zelda", KindSnap2},
		{"snap3", "zelda_snap3.png", "zelda", KindSnap3},

		// Suffix matching is case-insensitive but the stem keeps its case
		{"uppercase suffix", "Zelda_OVERLAY.png", "Zelda", KindOverlay},
		{"mixed case small", "Zelda_Small.PNG", "Zelda", KindBoxSmall},

		// The _big_overlay token must win over _overlay
		{"big overlay priority", "a_big_overlay.png", "a", KindOverlayBig},

		// Palette helpers are invisible to classification
		{"palette cfg", "my_palette.cfg", "", KindNone},
		{"palette anywhere", "palette_gray.cfg", "", KindNone},
		{"palette uppercase", "MY_PALETTE.CFG", "", KindNone},

		// Unrecognized extensions are not classified at all
		{"text file", "notes.txt", "", KindNone},
		{"kbd file", "zelda.kbd", "", KindNone},
		{"no extension", "README", "", KindNone},

		// Directory components are ignored
		{"with path", "/games/nes/zelda_snap2.png", "zelda", KindSnap2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, kind := c.Classify(tt.file)
			if base != tt.wantBase || kind != tt.wantKind {
				t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)",
					tt.file, base, kind, tt.wantBase, tt.wantKind)
			}
		})
	}
}

func TestClassifyCustomRomExtensions(t *testing.T) {
	c := NewClassifier([]string{".a52", "itv"})

	base, kind := c.Classify("game.a52")
	if base != "game" || kind != KindRom {
		t.Errorf("Classify(game.a52) = (%q, %v), want (game, rom)", base, kind)
	}

	// Extensions are normalized to a leading dot
	base, kind = c.Classify("game.itv")
	if base != "game" || kind != KindRom {
		t.Errorf("Classify(game.itv) = (%q, %v), want (game, rom)", base, kind)
	}

	// Defaults no longer apply
	if _, kind := c.Classify("game.int"); kind == KindRom {
		t.Error("Classify(game.int) classified as rom with custom extension set")
	}
}

// Classify followed by BuildName must reproduce the original filename for
// every recognized pattern.
func TestClassifyBuildNameRoundTrip(t *testing.T) {
	c := NewClassifier(nil)

	files := []string{
		"zelda.int",
		"zelda.bin",
		"zelda.rom",
		"zelda.cfg",
		"zelda.json",
		"zelda.png",
		"zelda_small.png",
		"zelda_overlay.png",
		"zelda_overlay2.png",
		"zelda_overlay3.png",
		"zelda_big_overlay.png",
		"zelda_qrcode.png",
		"zelda_snap1.png",
		"zelda_snap2.png",
		"zelda_snap3.png",
		"Name With Spaces_snap1.png",
	}

	for _, f := range files {
		base, kind := c.Classify(f)
		if kind == KindNone {
			t.Errorf("Classify(%q) returned KindNone", f)
			continue
		}
		if got := BuildName(base, kind, f); got != f {
			t.Errorf("round trip %q -> (%q, %v) -> %q", f, base, kind, got)
		}
	}
}

func TestBuildNameSubstitutesBasename(t *testing.T) {
	tests := []struct {
		kind Kind
		old  string
		want string
	}{
		{KindRom, "old.int", "new.int"},
		{KindRom, "old.bin", "new.bin"},
		{KindConfig, "old.cfg", "new.cfg"},
		{KindMetadata, "old.json", "new.json"},
		{KindBox, "old.png", "new.png"},
		{KindOverlay2, "old_overlay2.png", "new_overlay2.png"},
		{KindOverlayBig, "old_big_overlay.png", "new_big_overlay.png"},
		{KindSnap3, "old_snap3.png", "new_snap3.png"},
	}

	for _, tt := range tests {
		if got := BuildName("new", tt.kind, tt.old); got != tt.want {
			t.Errorf("BuildName(new, %v, %q) = %q, want %q", tt.kind, tt.old, got, tt.want)
		}
	}
}

func TestChooseRomOrderIndependent(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{"int beats bin", "/g/zelda.int", "/g/zelda.bin", "/g/zelda.int"},
		{"int beats rom", "/g/zelda.int", "/g/zelda.rom", "/g/zelda.int"},
		{"bin beats rom", "/g/zelda.bin", "/g/zelda.rom", "/g/zelda.bin"},
		{"empty loses", "", "/g/zelda.rom", "/g/zelda.rom"},
		{"same rank by name", "/g/A.int", "/g/b.int", "/g/A.int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ChooseRom(tt.a, tt.b); got != tt.want {
				t.Errorf("ChooseRom(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
			if got := c.ChooseRom(tt.b, tt.a); got != tt.want {
				t.Errorf("ChooseRom(%q, %q) = %q, want %q (argument order changed result)",
					tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestPaletteHelper(t *testing.T) {
	tests := []struct {
		file string
		want bool
	}{
		{"my_palette.cfg", true},
		{"palette.txt", true},
		{"GRAY_PALETTE.TXT", true},
		{"zelda.cfg", false},
		{"palette.png", false},
		{"palette.kbd", false},
	}

	for _, tt := range tests {
		if got := PaletteHelper(tt.file); got != tt.want {
			t.Errorf("PaletteHelper(%q) = %v, want %v", tt.file, got, tt.want)
		}
	}
}

func TestKeyboardHelper(t *testing.T) {
	if !KeyboardHelper("hack.kbd") || !KeyboardHelper("HACK.KBD") {
		t.Error("KeyboardHelper should match .kbd files case-insensitively")
	}
	if KeyboardHelper("hack.cfg") {
		t.Error("KeyboardHelper matched a .cfg file")
	}
}
