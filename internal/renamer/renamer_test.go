package renamer

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/sprintgm/sprintgm/internal/assets"
	"github.com/sprintgm/sprintgm/internal/testutil"
)

func newRenamer() *Renamer {
	return New(assets.NewClassifier(nil))
}

func sortMoves(moves []Move) {
	sort.Slice(moves, func(i, j int) bool { return moves[i].Src < moves[j].Src })
}

func TestPlanRenameThreeFiles(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateGame(".", "zelda", "rom", "config", "box")
	f.CreateGame(".", "other", "rom") // unrelated game stays untouched

	moves, err := newRenamer().PlanRename(f.RootDir, "zelda", "link")
	if err != nil {
		t.Fatalf("PlanRename: %v", err)
	}
	if len(moves) != 3 {
		t.Fatalf("got %d moves, want 3: %v", len(moves), moves)
	}

	sortMoves(moves)
	want := []Move{
		{filepath.Join(f.RootDir, "zelda.cfg"), filepath.Join(f.RootDir, "link.cfg")},
		{filepath.Join(f.RootDir, "zelda.int"), filepath.Join(f.RootDir, "link.int")},
		{filepath.Join(f.RootDir, "zelda.png"), filepath.Join(f.RootDir, "link.png")},
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move[%d] = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestPlanRenamePreservesSuffixPatterns(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateGame(".", "zelda",
		"rom", "config", "metadata", "box", "small",
		"overlay", "overlay2", "overlay3", "big_overlay",
		"qrcode", "snap1", "snap2", "snap3")

	moves, err := newRenamer().PlanRename(f.RootDir, "zelda", "link")
	if err != nil {
		t.Fatalf("PlanRename: %v", err)
	}
	if len(moves) != 13 {
		t.Fatalf("got %d moves, want 13", len(moves))
	}

	c := assets.NewClassifier(nil)
	for _, m := range moves {
		srcBase, srcKind := c.Classify(m.Src)
		dstBase, dstKind := c.Classify(m.Dst)
		if srcBase != "zelda" || dstBase != "link" {
			t.Errorf("move %v: basenames (%q -> %q)", m, srcBase, dstBase)
		}
		if srcKind != dstKind {
			t.Errorf("move %v changed kind %v -> %v", m, srcKind, dstKind)
		}
	}
}

func TestPlanRenameMatchesBasenameCaseInsensitively(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateGame(".", "Zelda", "rom")

	moves, err := newRenamer().PlanRename(f.RootDir, "zelda", "link")
	if err != nil {
		t.Fatalf("PlanRename: %v", err)
	}
	if len(moves) != 1 {
		t.Fatalf("case-variant basename not matched: %v", moves)
	}
}

func TestPlanRenameIgnoresPaletteHelpers(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("zelda_palette.cfg", []byte(""))
	f.CreateGame(".", "zelda", "rom")

	moves, err := newRenamer().PlanRename(f.RootDir, "zelda", "link")
	if err != nil {
		t.Fatalf("PlanRename: %v", err)
	}
	for _, m := range moves {
		if filepath.Base(m.Src) == "zelda_palette.cfg" {
			t.Error("palette helper included in rename plan")
		}
	}
}

func TestPlanFolderRenameExcludesRomAndConfig(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateGame(".", "zelda", "rom", "config", "metadata", "box")

	moves, err := newRenamer().PlanFolderRename(f.RootDir, "zelda", "link")
	if err != nil {
		t.Fatalf("PlanFolderRename: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("got %d moves, want 2 (json+png): %v", len(moves), moves)
	}
	for _, m := range moves {
		ext := filepath.Ext(m.Src)
		if ext == ".int" || ext == ".cfg" {
			t.Errorf("rom/config included in folder rename: %v", m)
		}
	}
}

func TestPlanMoveKeepsBasenameAndFilenames(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateGame(".", "zelda", "rom", "box", "overlay")
	dst := f.CreateDir("moved")

	moves, err := newRenamer().PlanMove(f.RootDir, dst, "zelda")
	if err != nil {
		t.Fatalf("PlanMove: %v", err)
	}
	if len(moves) != 3 {
		t.Fatalf("got %d moves, want 3", len(moves))
	}
	for _, m := range moves {
		if filepath.Base(m.Src) != filepath.Base(m.Dst) {
			t.Errorf("move renamed file: %v", m)
		}
		if filepath.Dir(m.Dst) != dst {
			t.Errorf("move destination dir = %q, want %q", filepath.Dir(m.Dst), dst)
		}
	}
}

// A move relocates files without touching their names: non-canonical
// suffix casing and case-variant basenames survive byte-for-byte even when
// the basename argument differs in case from the on-disk files.
func TestPlanMovePreservesExactFilenames(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("Zelda_Overlay.png", []byte("overlay"))
	f.CreateFile("Zelda.int", []byte("rom"))
	dst := f.CreateDir("moved")

	moves, err := newRenamer().PlanMove(f.RootDir, dst, "zelda")
	if err != nil {
		t.Fatalf("PlanMove: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("got %d moves, want 2: %v", len(moves), moves)
	}
	for _, m := range moves {
		if filepath.Base(m.Dst) != filepath.Base(m.Src) {
			t.Errorf("move renamed the file: %q -> %q",
				filepath.Base(m.Src), filepath.Base(m.Dst))
		}
	}
}

func TestApplyRename(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateGame(".", "zelda", "rom", "config", "box")

	r := newRenamer()
	moves, err := r.PlanRename(f.RootDir, "zelda", "link")
	if err != nil {
		t.Fatal(err)
	}
	if err := Apply(moves); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := []string{"link.cfg", "link.int", "link.png"}
	got := f.ListNames(f.RootDir)
	if len(got) != len(want) {
		t.Fatalf("dir contents = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dir[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// A same-batch swap (A renamed to B, B renamed to A) must succeed because
// each occupied destination is also a source being moved away.
func TestApplySwapWithinBatch(t *testing.T) {
	f := testutil.NewFixture(t)
	a := f.CreateFile("a_snap1.png", []byte("first"))
	b := f.CreateFile("a_snap2.png", []byte("second"))

	moves := []Move{
		{Src: a, Dst: b},
		{Src: b, Dst: a},
	}
	if err := Apply(moves); err != nil {
		t.Fatalf("Apply swap: %v", err)
	}

	if f.ReadFile(a) != "second" || f.ReadFile(b) != "first" {
		t.Error("swap did not exchange file contents")
	}
}

func TestApplyBatchCollision(t *testing.T) {
	f := testutil.NewFixture(t)
	a := f.CreateFile("a.png", []byte("a"))
	b := f.CreateFile("b.png", []byte("b"))
	dst := filepath.Join(f.RootDir, "c.png")

	// Destinations differ only by case: still a collision under PathKey.
	moves := []Move{
		{Src: a, Dst: dst},
		{Src: b, Dst: filepath.Join(f.RootDir, "C.PNG")},
	}

	err := Apply(moves)
	var rerr *Error
	if !errors.As(err, &rerr) || rerr.Reason != ReasonBatchCollision {
		t.Fatalf("Apply = %v, want batch collision", err)
	}

	// Rejected before any I/O: sources untouched.
	if !f.Exists(a) || !f.Exists(b) {
		t.Error("batch collision mutated the filesystem")
	}
}

func TestApplyDestinationExists(t *testing.T) {
	f := testutil.NewFixture(t)
	src := f.CreateFile("zelda.png", []byte("art"))
	occupied := f.CreateFile("link.png", []byte("existing"))

	err := Apply([]Move{{Src: src, Dst: occupied}})
	var rerr *Error
	if !errors.As(err, &rerr) || rerr.Reason != ReasonDestinationExists {
		t.Fatalf("Apply = %v, want destination exists", err)
	}

	// Filesystem unchanged, including the occupant's content.
	if f.ReadFile(src) != "art" || f.ReadFile(occupied) != "existing" {
		t.Error("destination-exists rejection mutated files")
	}
	names := f.ListNames(f.RootDir)
	if len(names) != 2 {
		t.Errorf("unexpected dir contents: %v", names)
	}
}

func TestApplyIoFailureReportsPath(t *testing.T) {
	f := testutil.NewFixture(t)
	missing := filepath.Join(f.RootDir, "ghost.png")

	err := Apply([]Move{{Src: missing, Dst: filepath.Join(f.RootDir, "real.png")}})
	var rerr *Error
	if !errors.As(err, &rerr) {
		t.Fatalf("Apply = %v, want *Error", err)
	}
	if rerr.Reason != ReasonIoFailure || rerr.Phase != PhaseToTemporary {
		t.Errorf("got reason %v phase %q, want io failure in to-temporary", rerr.Reason, rerr.Phase)
	}
	if rerr.Path != missing {
		t.Errorf("error path = %q, want %q", rerr.Path, missing)
	}
	if rerr.Unwrap() == nil {
		t.Error("underlying OS error not preserved")
	}
}

func TestApplyEmptyBatch(t *testing.T) {
	if err := Apply(nil); err != nil {
		t.Errorf("Apply(nil) = %v, want nil", err)
	}
}

func TestSwapTwiceRestoresIdentities(t *testing.T) {
	f := testutil.NewFixture(t)
	a := f.CreateFile("a_snap1.png", []byte("one"))
	b := f.CreateFile("a_snap2.png", []byte("two"))

	if err := Swap(a, b); err != nil {
		t.Fatalf("first Swap: %v", err)
	}
	if f.ReadFile(a) != "two" || f.ReadFile(b) != "one" {
		t.Fatal("first swap did not exchange contents")
	}

	if err := Swap(a, b); err != nil {
		t.Fatalf("second Swap: %v", err)
	}
	if f.ReadFile(a) != "one" || f.ReadFile(b) != "two" {
		t.Error("double swap did not restore original contents")
	}

	// No temporaries left behind.
	for _, name := range f.ListNames(f.RootDir) {
		if name != "a_snap1.png" && name != "a_snap2.png" {
			t.Errorf("leftover file after swaps: %s", name)
		}
	}
}

func TestSwapMissingFileIsNoop(t *testing.T) {
	f := testutil.NewFixture(t)
	a := f.CreateFile("a_snap1.png", []byte("one"))
	ghost := filepath.Join(f.RootDir, "a_snap2.png")

	if err := Swap(a, ghost); err != nil {
		t.Errorf("Swap with missing side = %v, want nil", err)
	}
	if f.ReadFile(a) != "one" {
		t.Error("no-op swap touched the existing file")
	}
	if err := Swap(ghost, a); err != nil {
		t.Errorf("Swap with missing first side = %v, want nil", err)
	}
}

func TestValidateBasename(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		wantErr bool
	}{
		{"simple", "zelda", false},
		{"with spaces", "Legend of Zelda", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"colon", "a:b", true},
		{"question", "a?b", true},
		{"quote", `a"b`, true},
		{"pipe", "a|b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBasename(tt.base)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBasename(%q) = %v, wantErr %v", tt.base, err, tt.wantErr)
			}
		})
	}
}

func TestCopyFile(t *testing.T) {
	f := testutil.NewFixture(t)
	src := f.CreateFile("zelda.cfg", []byte("config"))
	dst := filepath.Join(f.RootDir, "sub", "link.cfg")

	if err := CopyFile(src, dst, false); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	if f.ReadFile(dst) != "config" {
		t.Error("copied content mismatch")
	}

	// Second copy without overwrite must fail, with it must succeed.
	if err := CopyFile(src, dst, false); err == nil {
		t.Error("CopyFile onto existing file without overwrite succeeded")
	}
	if err := CopyFile(src, dst, true); err != nil {
		t.Errorf("CopyFile with overwrite: %v", err)
	}

	// Copying onto a directory always fails.
	if err := CopyFile(src, f.RootDir, true); err == nil {
		t.Error("CopyFile onto a directory succeeded")
	}
}

func TestApplyThenRescanLeavesNoOldBasename(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateGame(".", "zelda", "rom", "config", "box", "overlay2")

	r := newRenamer()
	moves, err := r.PlanRename(f.RootDir, "zelda", "link")
	if err != nil {
		t.Fatal(err)
	}
	if err := Apply(moves); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(f.RootDir)
	if err != nil {
		t.Fatal(err)
	}
	c := assets.NewClassifier(nil)
	for _, e := range entries {
		base, kind := c.Classify(e.Name())
		if kind == assets.KindNone {
			t.Errorf("unclassifiable file after rename: %s", e.Name())
			continue
		}
		if base != "link" {
			t.Errorf("file %s still classified under %q", e.Name(), base)
		}
	}
}
