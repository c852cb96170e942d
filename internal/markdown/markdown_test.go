package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTables_IndexTable(t *testing.T) {
	src := []byte("" +
		"# Source code documentation\n" +
		"\n" +
		"## List\n" +
		"\n" +
		"| Name | Type | Description |\n" +
		"|:-----|:-----|:------------|\n" +
		"| [`main.rs`](./main.rs.md) | Rust source code | DESCRIPTION |\n" +
		"| [`a/b.bash`](./a/b.bash.md) | Bash script | Runs the build |\n")

	tables := ExtractTables(src)
	require.Len(t, tables, 1)

	tbl := tables[0]
	assert.Equal(t, []string{"Name", "Type", "Description"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)

	assert.Equal(t, Cell{Text: "main.rs", Destination: "./main.rs.md"}, tbl.Rows[0][0])
	assert.Equal(t, "Rust source code", tbl.Rows[0][1].Text)
	assert.Equal(t, "DESCRIPTION", tbl.Rows[0][2].Text)
	assert.Empty(t, tbl.Rows[0][2].Destination)

	assert.Equal(t, "a/b.bash", tbl.Rows[1][0].Text)
	assert.Equal(t, "./a/b.bash.md", tbl.Rows[1][0].Destination)
	assert.Equal(t, "Runs the build", tbl.Rows[1][2].Text)
}

func TestExtractTables_IgnoresFencedTables(t *testing.T) {
	src := []byte("" +
		"```\n" +
		"| A | B |\n" +
		"|---|---|\n" +
		"| 1 | 2 |\n" +
		"```\n")

	assert.Empty(t, ExtractTables(src))
}

func TestExtractTables_MultipleTables(t *testing.T) {
	src := []byte("" +
		"| A |\n" +
		"|---|\n" +
		"| 1 |\n" +
		"\n" +
		"text\n" +
		"\n" +
		"| B | C |\n" +
		"|---|---|\n" +
		"| 2 | 3 |\n")

	tables := ExtractTables(src)
	require.Len(t, tables, 2)
	assert.Equal(t, []string{"A"}, tables[0].Header)
	assert.Equal(t, []string{"B", "C"}, tables[1].Header)
	assert.Equal(t, "3", tables[1].Rows[0][1].Text)
}

func TestTableColumnIndex(t *testing.T) {
	tbl := Table{Header: []string{"Name", "Type", "Description"}}
	assert.Equal(t, 0, tbl.ColumnIndex("name"))
	assert.Equal(t, 2, tbl.ColumnIndex("Description"))
	assert.Equal(t, -1, tbl.ColumnIndex("Owner"))
}
