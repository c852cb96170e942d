package devdocs

import "maps"

// UnknownFileType labels files missing from the type table.
const UnknownFileType = "unknown"

// FileTypes maps a file extension, or the stem of an extension-less file, to
// a human readable label.
type FileTypes map[string]string

var defaultFileTypes = FileTypes{
	".bash": "Bash script",
	".bat":  "Batch script",
	// cspell: disable-next-line
	"fileextensions": "File extension list",
	".iss":           "Inno setup file",
	".rs":            "Rust source code",
}

// DefaultFileTypes returns a copy of the built-in table.
func DefaultFileTypes() FileTypes {
	return maps.Clone(defaultFileTypes)
}

// With returns a copy of ft extended by extra. Entries in extra win.
func (ft FileTypes) With(extra map[string]string) FileTypes {
	out := maps.Clone(ft)
	if out == nil {
		out = make(FileTypes, len(extra))
	}
	maps.Copy(out, extra)
	return out
}

// Classify returns the label for e. The extension is looked up first; files
// without one are looked up by stem.
func (ft FileTypes) Classify(e Entry) string {
	key := e.Suffix()
	if key == "" {
		key = e.Stem()
	}
	if label, ok := ft[key]; ok {
		return label
	}
	return UnknownFileType
}
