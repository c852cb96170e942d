package devdocs

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"regexp"
	"strings"

	"github.com/I-Language-Development/I-language-rust/internal/util/sets"
)

const (
	// IndexFileName is the index page written into the output root.
	IndexFileName = "index.md"

	// DescriptionPlaceholder fills the description column of generated rows.
	DescriptionPlaceholder = "DESCRIPTION"

	// DefaultRepositoryURL is linked from the index note.
	DefaultRepositoryURL = "https://github.com/I-Language-Development/I-language-rust"
)

// rowPattern recognizes an index table row and captures its file name.
var rowPattern = regexp.MustCompile("^\\| \\[`(?P<name>.+)`\\]")

// Row is one line of the index table.
type Row struct {
	Name        string
	Type        string
	Description string
}

// NewRow builds the row for e with the placeholder description.
func NewRow(e Entry, types FileTypes) Row {
	return Row{
		Name:        e.Path(),
		Type:        types.Classify(e),
		Description: DescriptionPlaceholder,
	}
}

// String renders the row as a markdown table line.
func (r Row) String() string {
	return fmt.Sprintf("| [`%s`](./%s.md) | %s | %s |", r.Name, r.Name, r.Type, r.Description)
}

// preamble returns the fixed lines above the table.
func preamble(repositoryURL string) []string {
	return []string{
		"# Source code documentation",
		"",
		"!!! note",
		"",
		"    The source can be found [here](" + repositoryURL + ").",
		"",
		"The files contain the source code documentation, meaning documentation about public and private functions or classes, variables and more.",
		"",
		"## List",
		"",
		"| Name | Type | Description |",
		"|:-----|:-----|:------------|",
	}
}

// RenderIndex renders the full index page for rows.
func RenderIndex(repositoryURL string, rows []Row) string {
	if repositoryURL == "" {
		repositoryURL = DefaultRepositoryURL
	}
	lines := preamble(repositoryURL)
	for _, r := range rows {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n") + "\n"
}

// ParseNames returns the file names of all table rows in text, in order.
func ParseNames(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var names []string
	nameIdx := rowPattern.SubexpIndex("name")
	for _, line := range strings.Split(text, "\n") {
		if m := rowPattern.FindStringSubmatch(line); m != nil {
			names = append(names, m[nameIdx])
		}
	}
	return names
}

func nameSet(text string) sets.Set[string] {
	return sets.New(ParseNames(text)...)
}

// SameFiles reports whether two index documents list the same set of file
// names. Row order, types and descriptions are ignored.
func SameFiles(a, b string) bool {
	return maps.Equal(nameSet(a), nameSet(b))
}

// WriteIndex replaces the index at indexPath with content when the listed
// file names differ. A missing index counts as empty. It reports whether the
// file was written; an unchanged index keeps its bytes.
func WriteIndex(indexPath, content string) (bool, error) {
	// #nosec G304 - path is derived from the configured output root
	existing, err := os.ReadFile(indexPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: %s: %w", ErrIndexReadFailed, indexPath, err)
	}

	if err == nil && SameFiles(string(existing), content) {
		return false, nil
	}

	if err := os.WriteFile(indexPath, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrIndexWriteFailed, indexPath, err)
	}
	return true, nil
}
