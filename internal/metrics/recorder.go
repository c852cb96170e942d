package metrics

import "time"

// OutcomeLabel enumerates run outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFailed  OutcomeLabel = "failed"
)

// IndexResult enumerates what happened to index.md during a run.
type IndexResult string

const (
	IndexRegenerated IndexResult = "regenerated"
	IndexUnchanged   IndexResult = "unchanged"
)

// Recorder defines observability hooks for tool runs.
type Recorder interface {
	ObserveRunDuration(tool string, d time.Duration)
	IncRunOutcome(tool string, outcome OutcomeLabel)
	SetFilesDiscovered(n int)
	AddStubsCreated(n int)
	IncIndexResult(result IndexResult)
	AddSubstitutions(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRunDuration(string, time.Duration) {}
func (NoopRecorder) IncRunOutcome(string, OutcomeLabel)       {}
func (NoopRecorder) SetFilesDiscovered(int)                   {}
func (NoopRecorder) AddStubsCreated(int)                      {}
func (NoopRecorder) IncIndexResult(IndexResult)               {}
func (NoopRecorder) AddSubstitutions(int)                     {}
