// Package variables replaces build-time placeholders in markdown pages.
package variables

import (
	"strings"

	"github.com/I-Language-Development/I-language-rust/internal/metrics"
)

// VersionPlaceholder is replaced with the release version.
const VersionPlaceholder = "{{ VERSION }}"

// VersionResolver supplies the release version.
type VersionResolver interface {
	ResolveVersion() (string, error)
}

// ResolverFunc adapts a function to VersionResolver.
type ResolverFunc func() (string, error)

// ResolveVersion implements VersionResolver.
func (f ResolverFunc) ResolveVersion() (string, error) { return f() }

// Substituter is the page hook called by the documentation build.
type Substituter struct {
	resolver VersionResolver
	recorder metrics.Recorder
}

// NewSubstituter creates a Substituter backed by resolver.
func NewSubstituter(resolver VersionResolver) *Substituter {
	return &Substituter{resolver: resolver, recorder: metrics.NoopRecorder{}}
}

// WithRecorder sets the metrics recorder.
func (s *Substituter) WithRecorder(r metrics.Recorder) *Substituter {
	if r != nil {
		s.recorder = r
	}
	return s
}

// OnPageMarkdown returns markdown with every VersionPlaceholder replaced by
// the resolved version. The page context is accepted for the build hook
// signature and ignored. The resolver is asked on every call and its error
// is returned unchanged.
func (s *Substituter) OnPageMarkdown(markdown string, _ map[string]any) (string, error) {
	version, err := s.resolver.ResolveVersion()
	if err != nil {
		return "", err
	}

	n := strings.Count(markdown, VersionPlaceholder)
	if n == 0 {
		return markdown, nil
	}
	s.recorder.AddSubstitutions(n)
	return strings.ReplaceAll(markdown, VersionPlaceholder, version), nil
}
