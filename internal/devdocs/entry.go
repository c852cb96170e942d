package devdocs

import (
	"path"
	"path/filepath"
	"strings"
)

// Entry is a source file path relative to the source root. The path is always
// slash separated so ordering and index rows do not depend on the platform.
type Entry struct {
	rel string
}

// NewEntry normalizes rel into an Entry.
func NewEntry(rel string) Entry {
	return Entry{rel: path.Clean(filepath.ToSlash(rel))}
}

// Path returns the slash separated relative path.
func (e Entry) Path() string { return e.rel }

func (e Entry) String() string { return e.rel }

// Name returns the final path element including its extension.
func (e Entry) Name() string { return path.Base(e.rel) }

// Dir returns the parent directory, "." for files at the root.
func (e Entry) Dir() string { return path.Dir(e.rel) }

// InSubdir reports whether the file lives below the root directory.
func (e Entry) InSubdir() bool { return e.Dir() != "." }

// Suffix returns the extension including the dot. Dot files such as
// ".gitignore" and names ending in a dot have no suffix.
func (e Entry) Suffix() string {
	name := e.Name()
	if i := strings.LastIndexByte(name, '.'); i > 0 && i < len(name)-1 {
		return name[i:]
	}
	return ""
}

// Stem returns the name without its suffix.
func (e Entry) Stem() string {
	name := e.Name()
	return strings.TrimSuffix(name, e.Suffix())
}

// ancestors lists the parent directories of p from the nearest up to ".".
func ancestors(p string) []string {
	var out []string
	for dir := path.Dir(p); ; dir = path.Dir(dir) {
		out = append(out, dir)
		if dir == "." || dir == "/" {
			return out
		}
	}
}
