package devdocs

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/I-Language-Development/I-language-rust/internal/foundation/errors"
	"github.com/I-Language-Development/I-language-rust/internal/logfields"
	"github.com/I-Language-Development/I-language-rust/internal/metrics"
)

const (
	// DefaultSourceDir is scanned when no source root is configured.
	DefaultSourceDir = "src"

	toolName = "generate"
)

// DefaultOutputDir is where stubs and the index are written by default.
var DefaultOutputDir = filepath.Join("Docs", "Docs", "Dev")

// Options configures a Generator. Zero values fall back to the defaults.
type Options struct {
	SourceDir     string
	OutputDir     string
	RepositoryURL string
	FileTypes     FileTypes
	Filter        *Filter
	Recorder      metrics.Recorder
}

// Result summarizes a generator run.
type Result struct {
	Discovered       int
	StubsCreated     int
	IndexRegenerated bool
}

// Generated counts the files written: new stubs plus a regenerated index.
func (r Result) Generated() int {
	n := r.StubsCreated
	if r.IndexRegenerated {
		n++
	}
	return n
}

// Generator keeps the documentation tree in sync with the source tree.
type Generator struct {
	opts Options
}

// NewGenerator creates a generator, filling unset options with defaults.
func NewGenerator(opts Options) *Generator {
	if opts.SourceDir == "" {
		opts.SourceDir = DefaultSourceDir
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if opts.RepositoryURL == "" {
		opts.RepositoryURL = DefaultRepositoryURL
	}
	if opts.FileTypes == nil {
		opts.FileTypes = DefaultFileTypes()
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	return &Generator{opts: opts}
}

// Run discovers the source files, creates missing stubs and rewrites the
// index when its file set changed. Any filesystem failure aborts the run.
func (g *Generator) Run() (Result, error) {
	start := time.Now()
	res, err := g.run()

	g.opts.Recorder.ObserveRunDuration(toolName, time.Since(start))
	if err != nil {
		g.opts.Recorder.IncRunOutcome(toolName, metrics.OutcomeFailed)
		return res, err
	}
	g.opts.Recorder.IncRunOutcome(toolName, metrics.OutcomeSuccess)

	slog.Info("Source documentation updated",
		logfields.Source(g.opts.SourceDir),
		logfields.Output(g.opts.OutputDir),
		slog.Int("discovered", res.Discovered),
		slog.Int("stubs_created", res.StubsCreated),
		slog.Bool("index_regenerated", res.IndexRegenerated),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return res, nil
}

func (g *Generator) run() (Result, error) {
	var res Result

	if err := os.MkdirAll(g.opts.OutputDir, 0o750); err != nil {
		return res, errors.FileSystemError("failed to create output directory").
			WithCause(err).
			WithContext("path", g.opts.OutputDir).
			Build()
	}

	entries, err := Discover(g.opts.SourceDir, g.opts.Filter)
	if err != nil {
		return res, errors.FileSystemError("failed to discover source files").
			WithCause(err).
			WithContext("source", g.opts.SourceDir).
			Build()
	}
	Sort(entries)
	res.Discovered = len(entries)
	g.opts.Recorder.SetFilesDiscovered(len(entries))

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		created, err := EnsureStub(g.opts.OutputDir, e)
		if err != nil {
			return res, errors.FileSystemError("failed to create stub page").
				WithCause(err).
				WithContext("file", e.Path()).
				Build()
		}
		row := NewRow(e, g.opts.FileTypes)
		if created {
			res.StubsCreated++
			slog.Debug("Stub created", logfields.File(e.Path()), logfields.FileType(row.Type))
		}
		rows = append(rows, row)
	}
	g.opts.Recorder.AddStubsCreated(res.StubsCreated)

	indexPath := filepath.Join(g.opts.OutputDir, IndexFileName)
	written, err := WriteIndex(indexPath, RenderIndex(g.opts.RepositoryURL, rows))
	if err != nil {
		return res, errors.FileSystemError("failed to update index").
			WithCause(err).
			WithContext("path", indexPath).
			Build()
	}
	res.IndexRegenerated = written
	if written {
		g.opts.Recorder.IncIndexResult(metrics.IndexRegenerated)
		slog.Debug("Index regenerated", logfields.Path(indexPath), logfields.Count(len(rows)))
	} else {
		g.opts.Recorder.IncIndexResult(metrics.IndexUnchanged)
	}

	return res, nil
}
