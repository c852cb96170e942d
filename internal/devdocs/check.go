package devdocs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ferrors "github.com/I-Language-Development/I-language-rust/internal/foundation/errors"
	"github.com/I-Language-Development/I-language-rust/internal/logfields"
	"github.com/I-Language-Development/I-language-rust/internal/markdown"
	"github.com/I-Language-Development/I-language-rust/internal/util/sets"
)

// ProblemKind classifies an inconsistency between the index and the trees.
type ProblemKind string

const (
	// ProblemMissingStub means an index row links to a page that does not exist.
	ProblemMissingStub ProblemKind = "missing_stub"
	// ProblemMissingSource means an index row names a source file that is gone.
	ProblemMissingSource ProblemKind = "missing_source"
	// ProblemUnlisted means a source file has no index row.
	ProblemUnlisted ProblemKind = "unlisted"
)

// Problem is one inconsistency found by Check.
type Problem struct {
	Name string
	Kind ProblemKind
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Kind, p.Name)
}

// CheckReport is the outcome of Check.
type CheckReport struct {
	Rows     int
	Problems []Problem
}

// OK reports whether no problems were found.
func (r CheckReport) OK() bool { return len(r.Problems) == 0 }

// Check compares the index table against the stub pages and the source
// tree. It never writes.
func (g *Generator) Check() (CheckReport, error) {
	var report CheckReport

	indexPath := filepath.Join(g.opts.OutputDir, IndexFileName)
	// #nosec G304 - path is derived from the configured output root
	data, err := os.ReadFile(indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report, ferrors.NotFoundError("index not found, run generate first").
				WithCause(err).
				WithContext("path", indexPath).
				Build()
		}
		return report, ferrors.FileSystemError("failed to read index").
			WithCause(fmt.Errorf("%w: %s: %w", ErrIndexReadFailed, indexPath, err)).
			Build()
	}

	rows, err := indexRows(data)
	if err != nil {
		return report, ferrors.DocsError("index is malformed").
			WithCause(err).
			WithContext("path", indexPath).
			Build()
	}
	report.Rows = len(rows)

	listed := sets.New[string]()
	for _, r := range rows {
		listed.Add(r.name)

		stub := r.link
		if stub == "" {
			stub = r.name + ".md"
		}
		if !exists(filepath.Join(g.opts.OutputDir, filepath.FromSlash(stub))) {
			report.Problems = append(report.Problems, Problem{Name: r.name, Kind: ProblemMissingStub})
		}
		if !exists(filepath.Join(g.opts.SourceDir, filepath.FromSlash(r.name))) {
			report.Problems = append(report.Problems, Problem{Name: r.name, Kind: ProblemMissingSource})
		}
	}

	entries, err := Discover(g.opts.SourceDir, g.opts.Filter)
	if err != nil {
		return report, ferrors.FileSystemError("failed to discover source files").
			WithCause(err).
			WithContext("source", g.opts.SourceDir).
			Build()
	}
	Sort(entries)
	for _, e := range entries {
		if !listed.Has(e.Path()) {
			report.Problems = append(report.Problems, Problem{Name: e.Path(), Kind: ProblemUnlisted})
		}
	}

	for _, p := range report.Problems {
		slog.Debug("Index inconsistency", logfields.File(p.Name), slog.String("kind", string(p.Kind)))
	}
	return report, nil
}

type indexRow struct {
	name string
	link string
}

// indexRows reads the first table with a Name column.
func indexRows(data []byte) ([]indexRow, error) {
	for _, tbl := range markdown.ExtractTables(data) {
		col := tbl.ColumnIndex("Name")
		if col < 0 {
			continue
		}
		rows := make([]indexRow, 0, len(tbl.Rows))
		for _, cells := range tbl.Rows {
			if col >= len(cells) || cells[col].Text == "" {
				continue
			}
			rows = append(rows, indexRow{
				name: cells[col].Text,
				link: strings.TrimPrefix(cells[col].Destination, "./"),
			})
		}
		return rows, nil
	}
	return nil, ErrIndexTableMissing
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
