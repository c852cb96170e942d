package devdocs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"

	"github.com/I-Language-Development/I-language-rust/internal/logfields"
)

// Built-in exclusion markers. They are matched as substrings of the path
// prefixed with the source root's name, so "src/__pycache__/x" and
// "src/lexer/Cargo.toml" are skipped, as is anything directly inside a
// directory path containing "target".
const (
	reservedMarker      = "__"
	buildMetadataMarker = "Cargo"
	buildOutputMarker   = "target"
)

// Filter decides which source paths are left out of the documentation.
type Filter struct {
	exclude   []string
	gitIgnore gitignore.GitIgnore
}

// FilterOptions configures a Filter.
type FilterOptions struct {
	// Exclude holds doublestar patterns matched against the slash separated
	// path relative to the source root.
	Exclude []string
	// RespectGitignore loads <root>/.gitignore and skips what it ignores.
	RespectGitignore bool
}

// NewFilter validates the exclude patterns and loads ignore rules for root.
func NewFilter(root string, opts FilterOptions) (*Filter, error) {
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidExcludePattern, pattern)
		}
	}

	f := &Filter{exclude: opts.Exclude}
	if opts.RespectGitignore {
		f.gitIgnore = loadIgnoreFile(filepath.Join(root, ".gitignore"), root)
	}
	return f, nil
}

// loadIgnoreFile returns nil when the file is absent.
func loadIgnoreFile(filePath, baseDir string) gitignore.GitIgnore {
	// #nosec G304 - path is derived from the configured source root
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer func() {
		_ = f.Close()
	}()

	return gitignore.New(f, baseDir, nil)
}

// builtinExcluded applies the fixed markers. prefixed is the relative path
// with the root directory name in front.
func builtinExcluded(prefixed string) bool {
	if strings.Contains(prefixed, reservedMarker) || strings.Contains(prefixed, buildMetadataMarker) {
		return true
	}
	return strings.Contains(path.Dir(prefixed), buildOutputMarker)
}

// Excluded reports whether rel, relative to the root, is filtered by the
// configured patterns or ignore rules.
func (f *Filter) Excluded(rel string, isDir bool) bool {
	if f == nil {
		return false
	}
	for _, pattern := range f.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	if f.gitIgnore != nil {
		if match := f.gitIgnore.Relative(rel, isDir); match != nil && match.Ignore() {
			return true
		}
	}
	return false
}

// Discover lists every file below root that passes the built-in markers and
// filter. Directories are traversed but never returned, and symlinked
// directories are followed unless they lead back into a directory already
// being walked. The result is in walk order; use Sort for the documentation
// order.
func Discover(root string, filter *Filter) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceRootNotFound, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceRootNotFound, root)
	}
	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceRootNotFound, root, err)
	}

	w := &walker{
		rootName: filepath.Base(filepath.Clean(root)),
		filter:   filter,
	}
	if err := w.walk(realRoot, "", nil); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceWalkFailed, root, err)
	}

	slog.Debug("Source files discovered", logfields.Source(root), logfields.Count(len(w.entries)))
	return w.entries, nil
}

type walker struct {
	rootName string
	filter   *Filter
	entries  []Entry
}

// walk collects the files below dir, a resolved directory, naming them under
// prefix. active holds the resolved directories of the enclosing walks.
func (w *walker) walk(dir, prefix string, active []string) error {
	active = append(slices.Clip(active), dir)

	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if p == dir {
			return nil
		}

		relPath, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel := filepath.ToSlash(relPath)
		if prefix != "" {
			rel = prefix + "/" + rel
		}

		isDir := d.IsDir()
		target := ""
		if d.Type()&fs.ModeSymlink != 0 {
			target = symlinkedDir(p)
			isDir = target != ""
		}

		if builtinExcluded(w.rootName+"/"+rel) || w.filter.Excluded(rel, isDir) {
			slog.Debug("Skipping excluded path", logfields.Path(rel))
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if target != "" {
			if loops(target, filepath.Dir(p), active) {
				slog.Debug("Skipping symlink cycle", logfields.Path(rel), slog.String("target", target))
				return nil
			}
			return w.walk(target, rel, active)
		}
		if isDir {
			return nil
		}

		w.entries = append(w.entries, NewEntry(rel))
		return nil
	})
}

// symlinkedDir returns the resolved directory a symlink points to, or "" when
// it points to a file or is dangling. Such links are listed as files.
func symlinkedDir(link string) string {
	target, err := filepath.EvalSymlinks(link)
	if err != nil {
		return ""
	}
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return ""
	}
	return target
}

// loops reports whether following a link to target from parent would enter a
// directory that is already being walked.
func loops(target, parent string, active []string) bool {
	if within(parent, target) {
		return true
	}
	for _, dir := range active {
		if within(dir, target) {
			return true
		}
	}
	return false
}

// within reports whether p is dir or lies below it.
func within(p, dir string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}
