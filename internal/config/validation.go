package config

import (
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	ferrors "github.com/I-Language-Development/I-language-rust/internal/foundation/errors"
)

// Validate checks the settings used by generate and check. Call it after
// command line overrides were applied.
func (c *Config) Validate() error {
	if filepath.Clean(c.Source) == filepath.Clean(c.Output) {
		return ferrors.ConfigError("source and output must differ").
			WithContext("source", c.Source).
			Build()
	}

	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return ferrors.ConfigError("invalid exclude pattern").
				WithContext("pattern", pattern).
				Build()
		}
	}

	for key, label := range c.FileTypes {
		if key == "" || label == "" {
			return ferrors.ConfigError("file_types entries need a key and a label").
				WithContext("key", key).
				Build()
		}
	}
	return nil
}

// Validate checks the version section. Only commands that resolve a version
// need it.
func (v VersionConfig) Validate() error {
	switch v.Strategy {
	case StrategyStatic:
		if v.Value == "" {
			return ferrors.ConfigError("static version strategy requires version.value").Build()
		}
	case StrategyGitTag:
		if _, err := path.Match(v.TagPattern, ""); err != nil {
			return ferrors.ConfigError("invalid version.tag_pattern").
				WithCause(err).
				WithContext("pattern", v.TagPattern).
				Build()
		}
	default:
		_, err := strategies.Parse(string(v.Strategy))
		return ferrors.ConfigError("unknown version strategy").
			WithCause(err).
			WithContext("strategy", string(v.Strategy)).
			Build()
	}
	return nil
}
