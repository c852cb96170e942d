// Package errors provides the classified error primitives shared by the devdocs tools.
//
// A ClassifiedError carries a category, a severity and a retry strategy next to
// its message and cause, so the CLI can pick an exit code and a log level
// without string matching.
//
// Example usage:
//
//	err := errors.FileSystemError("failed to write stub").
//		WithCause(ioErr).
//		WithContext("path", dst).
//		Build()
package errors
