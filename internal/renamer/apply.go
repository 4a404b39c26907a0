package renamer

import (
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/sprintgm/sprintgm/internal/pathkey"
)

// Apply executes a batch of moves as one all-or-nothing operation.
//
// Collisions are rejected before any I/O: planned destinations must be
// distinct under PathKey equality, and an existing destination is only
// tolerated when it is itself a source of the batch (which is what makes
// same-batch swaps legal). Execution then runs in two phases: every source
// is first renamed to a unique temporary sibling, and only after all
// sources are parked are the temporaries renamed to their final names.
//
// No automatic rollback is attempted after a mid-execution failure;
// guessing a safe rollback risks further damage. The returned *Error
// carries the failing path and phase so the caller can report exactly
// which files may be left under temporary names.
func Apply(moves []Move) error {
	if len(moves) == 0 {
		return nil
	}

	srcKeys := make(map[string]struct{}, len(moves))
	for _, m := range moves {
		srcKeys[pathkey.Key(m.Src)] = struct{}{}
	}

	// Planned destinations must not collide with each other.
	dstKeys := make(map[string]string, len(moves))
	for _, m := range moves {
		key := pathkey.Key(m.Dst)
		if prev, dup := dstKeys[key]; dup {
			return &Error{
				Reason: ReasonBatchCollision,
				Path:   prev + " and " + m.Dst,
			}
		}
		dstKeys[key] = m.Dst
	}

	// An occupied destination is fatal unless the occupant is a batch
	// source about to be moved away.
	for _, m := range moves {
		if _, err := os.Stat(m.Dst); err != nil {
			continue
		}
		if _, isSource := srcKeys[pathkey.Key(m.Dst)]; !isSource {
			return &Error{
				Reason: ReasonDestinationExists,
				Path:   m.Dst,
			}
		}
	}

	// Phase 1: park every source under a unique temporary sibling name.
	tmps := make([]string, 0, len(moves))
	for _, m := range moves {
		tmp := tempName(m.Src)
		if err := os.Rename(m.Src, tmp); err != nil {
			return &Error{
				Reason:   ReasonIoFailure,
				Path:     m.Src,
				Phase:    PhaseToTemporary,
				Original: err,
			}
		}
		tmps = append(tmps, tmp)
	}

	if len(tmps) != len(moves) {
		return &Error{
			Reason: ReasonInternal,
			Path:   moves[0].Src,
		}
	}

	// Phase 2: commit temporaries to their final names.
	for i, m := range moves {
		if err := os.Rename(tmps[i], m.Dst); err != nil {
			return &Error{
				Reason:   ReasonIoFailure,
				Path:     m.Dst,
				Phase:    PhaseToFinal,
				Original: err,
			}
		}
	}

	return nil
}

// Swap exchanges the identities of two files using the same temporary-name
// technique. Missing files make it a no-op: "nothing to swap" is success.
func Swap(a, b string) error {
	if _, err := os.Stat(a); err != nil {
		return nil
	}
	if _, err := os.Stat(b); err != nil {
		return nil
	}

	tmp := tempName(a)
	if err := os.Rename(a, tmp); err != nil {
		return &Error{Reason: ReasonIoFailure, Path: a, Phase: PhaseToTemporary, Original: err}
	}
	if err := os.Rename(b, a); err != nil {
		return &Error{Reason: ReasonIoFailure, Path: a, Phase: PhaseToFinal, Original: err}
	}
	if err := os.Rename(tmp, b); err != nil {
		return &Error{Reason: ReasonIoFailure, Path: b, Phase: PhaseToFinal, Original: err}
	}
	return nil
}

// tempName derives a collision-resistant temporary sibling name. The
// random suffix keeps concurrent or crashed runs from colliding, and the
// .tmp. marker makes orphans recognizable for manual cleanup.
func tempName(path string) string {
	return path + ".tmp." + strings.ReplaceAll(uuid.NewString(), "-", "")
}
