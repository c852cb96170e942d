package devdocs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// StubPath returns the stub page location for e below outputRoot.
func StubPath(outputRoot string, e Entry) string {
	return filepath.Join(outputRoot, filepath.FromSlash(e.Path())) + ".md"
}

// StubContent is the body of a freshly created stub page.
func StubContent(e Entry) string {
	return "# `" + e.Name() + "`\n"
}

// EnsureStub creates the stub page for e unless one exists. It reports
// whether a file was written.
func EnsureStub(outputRoot string, e Entry) (bool, error) {
	dst := StubPath(outputRoot, e)
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrStubWriteFailed, dst, err)
	}

	// #nosec G304 - destination is derived from the configured output root
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %s: %w", ErrStubWriteFailed, dst, err)
	}

	if _, err := f.WriteString(StubContent(e)); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("%w: %s: %w", ErrStubWriteFailed, dst, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrStubWriteFailed, dst, err)
	}
	return true, nil
}
