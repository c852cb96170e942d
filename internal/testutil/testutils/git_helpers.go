package helpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var testSignature = object.Signature{Name: "tester", Email: "t@example.com"}

// SetupTestGitRepo initializes a temporary git repository for testing.
// Returns the repository, its worktree, and the absolute path to the temporary directory.
func SetupTestGitRepo(t *testing.T) (*git.Repository, *git.Worktree, string) {
	t.Helper()

	tempDir := t.TempDir()

	repo, err := git.PlainInit(tempDir, false)
	if err != nil {
		t.Fatalf("failed to initialize git repo: %v", err)
	}

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}

	return repo, w, tempDir
}

// CommitFile writes a file into the worktree, stages it and commits it.
func CommitFile(t *testing.T, w *git.Worktree, repoPath, name, content string) plumbing.Hash {
	t.Helper()

	full := filepath.Join(repoPath, name)
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := w.Add(name); err != nil {
		t.Fatalf("add: %v", err)
	}

	sig := testSignature
	sig.When = time.Now()
	hash, err := w.Commit("add "+name, &git.CommitOptions{Author: &sig})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	return hash
}

// TagCommit creates a lightweight tag, or an annotated one when annotated is set.
func TagCommit(t *testing.T, repo *git.Repository, hash plumbing.Hash, name string, annotated bool) {
	t.Helper()

	var opts *git.CreateTagOptions
	if annotated {
		sig := testSignature
		sig.When = time.Now()
		opts = &git.CreateTagOptions{Tagger: &sig, Message: "release " + name}
	}
	if _, err := repo.CreateTag(name, hash, opts); err != nil {
		t.Fatalf("tag %s: %v", name, err)
	}
}
