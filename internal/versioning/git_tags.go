package versioning

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"golang.org/x/mod/semver"

	ferrors "github.com/I-Language-Development/I-language-rust/internal/foundation/errors"
	"github.com/I-Language-Development/I-language-rust/internal/logfields"
)

// GitTagResolver derives the release version from repository tags.
type GitTagResolver struct {
	// RepoPath is any path inside the working tree; parent directories are
	// searched for the .git directory.
	RepoPath string
	// Pattern filters tag names with path.Match syntax. Empty matches all.
	Pattern string
	// IncludePrerelease allows tags such as v2.0.0-rc.1 to win.
	IncludePrerelease bool
}

// ResolveVersion implements Resolver.
func (r *GitTagResolver) ResolveVersion() (string, error) {
	repoPath := r.RepoPath
	if repoPath == "" {
		repoPath = "."
	}

	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", ferrors.GitError("failed to open repository").
			WithCause(err).
			WithContext("repo", repoPath).
			Build()
	}

	tags, err := repo.Tags()
	if err != nil {
		return "", ferrors.GitError("failed to list tags").
			WithCause(err).
			WithContext("repo", repoPath).
			Build()
	}

	best := ""
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		candidate, ok, err := r.candidate(name)
		if err != nil {
			return err
		}
		if ok && (best == "" || semver.Compare(candidate, best) > 0) {
			best = candidate
		}
		return nil
	})
	if err != nil {
		return "", ferrors.GitError("failed to scan tags").
			WithCause(err).
			WithContext("repo", repoPath).
			Build()
	}

	if best == "" {
		return "", ferrors.NotFoundError("no release tag found").
			WithCause(ErrNoReleaseTag).
			WithContext("repo", repoPath).
			WithContext("pattern", r.Pattern).
			Build()
	}

	version := strings.TrimPrefix(best, "v")
	slog.Debug("Resolved release version from tags", logfields.Version(version), logfields.Path(repoPath))
	return version, nil
}

// candidate returns the canonical "v" prefixed semantic version for a tag
// name, or false when the tag does not qualify.
func (r *GitTagResolver) candidate(name string) (string, bool, error) {
	if r.Pattern != "" {
		matched, err := path.Match(r.Pattern, name)
		if err != nil {
			return "", false, fmt.Errorf("tag pattern %q: %w", r.Pattern, err)
		}
		if !matched {
			return "", false, nil
		}
	}

	v := name
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	// Shorthand such as v2 and build metadata are not release versions.
	if !semver.IsValid(v) || semver.Canonical(v) != v {
		return "", false, nil
	}
	if !r.IncludePrerelease && semver.Prerelease(v) != "" {
		return "", false, nil
	}
	return v, true, nil
}
