package devdocs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	types := DefaultFileTypes()

	tests := []struct {
		rel      string
		expected string
	}{
		{"x.rs", "Rust source code"},
		{"lexer/src/lex.rs", "Rust source code"},
		{"scripts/setup.bash", "Bash script"},
		{"scripts/setup.bat", "Batch script"},
		{"installer/setup.iss", "Inno setup file"},
		{"fileextensions", "File extension list"},
		{"config/fileextensions", "File extension list"},
		{"tool.py", UnknownFileType},
		{"Makefile", UnknownFileType},
		{"rs", UnknownFileType},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.expected, types.Classify(NewEntry(tt.rel)))
		})
	}
}

func TestFileTypesWith(t *testing.T) {
	base := DefaultFileTypes()
	extended := base.With(map[string]string{
		".toml": "TOML file",
		".rs":   "Rust module",
	})

	assert.Equal(t, "TOML file", extended.Classify(NewEntry("x.toml")))
	assert.Equal(t, "Rust module", extended.Classify(NewEntry("x.rs")))
	assert.Equal(t, "Rust source code", base.Classify(NewEntry("x.rs")), "base table must stay untouched")
	assert.Equal(t, UnknownFileType, base.Classify(NewEntry("x.toml")))
}

func TestDefaultFileTypesIsACopy(t *testing.T) {
	types := DefaultFileTypes()
	types[".rs"] = "changed"

	assert.Equal(t, "Rust source code", DefaultFileTypes().Classify(NewEntry("x.rs")))
}
