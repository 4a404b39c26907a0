package renamer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyFile copies src to dst, creating parent directories as needed. An
// existing destination fails unless overwrite is set; a directory at the
// destination always fails.
func CopyFile(src, dst string, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating destination directory: %w", err)
	}

	if info, err := os.Stat(dst); err == nil {
		if info.IsDir() {
			return fmt.Errorf("destination is a directory: %s", dst)
		}
		if !overwrite {
			return &Error{Reason: ReasonDestinationExists, Path: dst}
		}
	}

	in, err := os.Open(src)
	if err != nil {
		return &Error{Reason: ReasonIoFailure, Path: src, Original: err}
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return &Error{Reason: ReasonIoFailure, Path: dst, Original: err}
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return &Error{Reason: ReasonIoFailure, Path: dst, Original: err}
	}
	if err := out.Close(); err != nil {
		return &Error{Reason: ReasonIoFailure, Path: dst, Original: err}
	}

	// Best-effort preservation of the source's timestamps.
	if info, err := os.Stat(src); err == nil {
		_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	}

	return nil
}
