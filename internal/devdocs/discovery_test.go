package devdocs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helpers "github.com/I-Language-Development/I-language-rust/internal/testutil/testutils"
)

func discoverPaths(t *testing.T, root string, filter *Filter) []string {
	t.Helper()
	found, err := Discover(root, filter)
	require.NoError(t, err)
	Sort(found)
	return paths(found)
}

func TestDiscoverBuiltinExclusions(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	helpers.WriteTree(t, root,
		"main.rs",
		"lexer/lex.rs",
		"lexer/Cargo.toml",
		"lexer/tokens/token.rs",
		"pkg/__generated__/x.rs",
		"__init__.py",
		"target/debug.rs",
		"lexer/target/release/bin.rs",
		"target_notes.md",
	)

	got := discoverPaths(t, root, nil)

	assert.Equal(t, []string{
		"main.rs",
		"target_notes.md",
		"lexer/lex.rs",
		"lexer/tokens/token.rs",
	}, got)
	assert.NotContains(t, got, "pkg/__generated__/x.rs")
}

func TestDiscoverReturnsFilesOnly(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty", "nested"), 0o750))
	helpers.WriteTree(t, root, "a/b.rs")

	assert.Equal(t, []string{"a/b.rs"}, discoverPaths(t, root, nil))
}

func TestDiscoverExcludePatterns(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	helpers.WriteTree(t, root, "main.rs", "Cargo.lock.bak", "gen/out.rs", "gen/deep/more.rs", "lexer/lex.rs", "lexer/lex.snap")

	filter, err := NewFilter(root, FilterOptions{Exclude: []string{"gen/**", "**/*.snap"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"main.rs", "lexer/lex.rs"}, discoverPaths(t, root, filter))
}

func TestDiscoverRespectsGitignore(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	helpers.WriteTree(t, root, "main.rs", "scratch.tmp", "generated/out.rs", "lexer/lex.rs")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.tmp\ngenerated/\n"), 0o600))

	withIgnore, err := NewFilter(root, FilterOptions{RespectGitignore: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"main.rs", ".gitignore", "lexer/lex.rs"}, discoverPaths(t, root, withIgnore))

	withoutIgnore, err := NewFilter(root, FilterOptions{})
	require.NoError(t, err)
	assert.Contains(t, discoverPaths(t, root, withoutIgnore), "scratch.tmp")
}

func TestNewFilterRejectsInvalidPattern(t *testing.T) {
	_, err := NewFilter(t.TempDir(), FilterOptions{Exclude: []string{"[unclosed"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidExcludePattern)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceRootNotFound)
}

func TestDiscoverRootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "src")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := Discover(file, nil)
	assert.ErrorIs(t, err, ErrSourceRootNotFound)
}

func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}

func TestDiscoverFollowsSymlinkedRoot(t *testing.T) {
	base := t.TempDir()
	real := filepath.Join(base, "checkout", "src")
	helpers.WriteTree(t, real, "main.rs", "lexer/lex.rs")
	link := filepath.Join(base, "src")
	symlink(t, real, link)

	assert.Equal(t, []string{"main.rs", "lexer/lex.rs"}, discoverPaths(t, link, nil))
}

func TestDiscoverFollowsSymlinkedDirectories(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "src")
	helpers.WriteTree(t, root, "main.rs")
	helpers.WriteTree(t, filepath.Join(base, "shared-lib"), "util.rs", "io/read.rs")
	symlink(t, filepath.Join(base, "shared-lib"), filepath.Join(root, "shared"))

	assert.Equal(t, []string{"main.rs", "shared/util.rs", "shared/io/read.rs"}, discoverPaths(t, root, nil))
}

func TestDiscoverListsSymlinkedFilesAndDanglingLinks(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "src")
	helpers.WriteTree(t, root, "main.rs")
	helpers.WriteTree(t, base, "build.bat")
	symlink(t, filepath.Join(base, "build.bat"), filepath.Join(root, "build.bat"))
	symlink(t, filepath.Join(base, "missing.rs"), filepath.Join(root, "gone.rs"))

	assert.Equal(t, []string{"main.rs", "build.bat", "gone.rs"}, discoverPaths(t, root, nil))
}

func TestDiscoverStopsAtSymlinkCycles(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "src")
	helpers.WriteTree(t, root, "main.rs", "lexer/lex.rs")
	helpers.WriteTree(t, filepath.Join(base, "vendor"), "dep.rs")

	symlink(t, root, filepath.Join(root, "self"))
	symlink(t, filepath.Join(root, "lexer"), filepath.Join(root, "lexer", "again"))
	symlink(t, filepath.Join(base, "vendor"), filepath.Join(root, "vendor"))
	symlink(t, root, filepath.Join(base, "vendor", "back"))

	assert.Equal(t, []string{"main.rs", "lexer/lex.rs", "vendor/dep.rs"}, discoverPaths(t, root, nil))
}

func TestDiscoverExcludesSymlinkedDirectoriesByPattern(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "src")
	helpers.WriteTree(t, root, "main.rs", "after.rs")
	helpers.WriteTree(t, filepath.Join(base, "generated"), "out.rs")
	symlink(t, filepath.Join(base, "generated"), filepath.Join(root, "gen"))

	filter, err := NewFilter(root, FilterOptions{Exclude: []string{"gen"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"main.rs", "after.rs"}, discoverPaths(t, root, filter))
}
