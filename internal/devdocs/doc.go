// Package devdocs maintains the developer documentation tree for the source code.
//
// A run discovers every source file below the source root, orders them for a
// stable listing, creates a one-line stub page per file under the output root
// and rewrites index.md when the set of listed files changed. Existing stubs
// are never touched, and an index whose file names already match is left
// byte-identical.
package devdocs
