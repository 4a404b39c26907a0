package renamer

import (
	"fmt"
)

// Reason categorizes why a rename operation failed
type Reason int

const (
	// ReasonBatchCollision means two planned destinations collide with
	// each other. Detected before any I/O.
	ReasonBatchCollision Reason = iota

	// ReasonDestinationExists means a planned destination is already
	// occupied by a file that is not itself a source of the batch.
	// Detected before any I/O.
	ReasonDestinationExists

	// ReasonIoFailure means the OS rejected a rename mid-execution.
	// Files may be left under temporary names; see Error.Phase.
	ReasonIoFailure

	// ReasonInternal means a planner invariant was violated. The batch
	// is aborted rather than executed on inconsistent state.
	ReasonInternal
)

// String returns a human-readable reason
func (r Reason) String() string {
	switch r {
	case ReasonBatchCollision:
		return "batch collision"
	case ReasonDestinationExists:
		return "destination exists"
	case ReasonIoFailure:
		return "io failure"
	case ReasonInternal:
		return "internal error"
	default:
		return "unspecified error"
	}
}

// Execution phases reported with IoFailure errors.
const (
	PhaseToTemporary = "to-temporary"
	PhaseToFinal     = "to-final"
)

// Error is a rename engine failure with enough detail for a caller to
// tell the user exactly which file is affected and whether files may be
// left under temporary names.
type Error struct {
	Reason   Reason
	Path     string // the offending source or destination
	Phase    string // set for IoFailure only
	Original error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Phase != "" {
		return fmt.Sprintf("%s: %s (phase %s: %v)", e.Reason, e.Path, e.Phase, e.Original)
	}
	if e.Original != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Reason, e.Path, e.Original)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

// Unwrap exposes the underlying OS error
func (e *Error) Unwrap() error {
	return e.Original
}

// UserMessage returns a message suitable for direct display. Rename
// failures must always be shown: a silently failed rename leaves game
// assets orphaned under temporary names.
func (e *Error) UserMessage() string {
	switch e.Reason {
	case ReasonBatchCollision:
		return fmt.Sprintf("Two files would be renamed to the same name: %s", e.Path)
	case ReasonDestinationExists:
		return fmt.Sprintf("Destination already exists: %s", e.Path)
	case ReasonIoFailure:
		if e.Phase == PhaseToFinal {
			return fmt.Sprintf("Rename failed at %s; some files may be left with temporary "+
				"names (.tmp.* suffix) and need manual renaming: %v", e.Path, e.Original)
		}
		return fmt.Sprintf("Rename failed at %s: %v", e.Path, e.Original)
	case ReasonInternal:
		return fmt.Sprintf("Internal rename error at %s; no files were changed in the final step", e.Path)
	default:
		return e.Error()
	}
}
