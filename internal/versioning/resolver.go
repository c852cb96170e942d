package versioning

import (
	"errors"
	"log/slog"

	"github.com/I-Language-Development/I-language-rust/internal/config"
	ferrors "github.com/I-Language-Development/I-language-rust/internal/foundation/errors"
	"github.com/I-Language-Development/I-language-rust/internal/logfields"
)

// ErrNoReleaseTag indicates that no tag qualified as a release version.
var ErrNoReleaseTag = errors.New("no release tag found")

// Resolver produces the current release version string.
type Resolver interface {
	ResolveVersion() (string, error)
}

// StaticResolver always returns Version.
type StaticResolver struct {
	Version string
}

// ResolveVersion implements Resolver.
func (r StaticResolver) ResolveVersion() (string, error) {
	if r.Version == "" {
		return "", ferrors.ConfigError("static version is empty").Build()
	}
	return r.Version, nil
}

// FromConfig builds the resolver selected by cfg.
func FromConfig(cfg config.VersionConfig) (Resolver, error) {
	slog.Debug("Selecting version resolver", logfields.Strategy(string(cfg.Strategy)))

	switch cfg.Strategy {
	case config.StrategyStatic:
		return StaticResolver{Version: cfg.Value}, nil
	case config.StrategyGitTag:
		return &GitTagResolver{
			RepoPath:          cfg.Repo,
			Pattern:           cfg.TagPattern,
			IncludePrerelease: cfg.IncludePrerelease,
		}, nil
	default:
		return nil, ferrors.ConfigError("unknown version strategy").
			WithContext("strategy", string(cfg.Strategy)).
			Build()
	}
}
