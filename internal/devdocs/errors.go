package devdocs

import "errors"

var (
	// ErrSourceRootNotFound indicates the source root does not exist or is not a directory.
	ErrSourceRootNotFound = errors.New("source root not found")

	// ErrSourceWalkFailed indicates traversal of the source tree failed.
	ErrSourceWalkFailed = errors.New("source tree walk failed")

	// ErrInvalidExcludePattern indicates a configured exclude glob is malformed.
	ErrInvalidExcludePattern = errors.New("invalid exclude pattern")

	// ErrStubWriteFailed indicates a stub page could not be created.
	ErrStubWriteFailed = errors.New("stub write failed")

	// ErrIndexReadFailed indicates the existing index could not be read.
	ErrIndexReadFailed = errors.New("index read failed")

	// ErrIndexWriteFailed indicates the index could not be written.
	ErrIndexWriteFailed = errors.New("index write failed")

	// ErrIndexTableMissing indicates the index has no file table.
	ErrIndexTableMissing = errors.New("index has no file table")
)
