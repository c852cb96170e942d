package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ferrors "github.com/I-Language-Development/I-language-rust/internal/foundation/errors"
	"github.com/I-Language-Development/I-language-rust/internal/foundation/normalization"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "devdocs.yaml"

// Config represents the devdocs configuration file.
type Config struct {
	Source           string            `yaml:"source"`
	Output           string            `yaml:"output"`
	RepositoryURL    string            `yaml:"repository_url,omitempty"`
	Exclude          []string          `yaml:"exclude,omitempty"`    // doublestar patterns relative to source
	RespectGitignore bool              `yaml:"respect_gitignore"`    // skip what <source>/.gitignore ignores
	FileTypes        map[string]string `yaml:"file_types,omitempty"` // extra extension or stem labels
	Version          VersionConfig     `yaml:"version"`
	Metrics          MetricsConfig     `yaml:"metrics,omitempty"`
}

// VersionStrategy selects how the release version is resolved.
type VersionStrategy string

const (
	StrategyStatic VersionStrategy = "static"
	StrategyGitTag VersionStrategy = "git-tag"
)

var strategies = normalization.New(map[string]VersionStrategy{
	string(StrategyStatic): StrategyStatic,
	string(StrategyGitTag): StrategyGitTag,
})

// VersionConfig configures release version resolution for substitution.
type VersionConfig struct {
	Strategy          VersionStrategy `yaml:"strategy"`
	Value             string          `yaml:"value,omitempty"`       // static strategy
	Repo              string          `yaml:"repo,omitempty"`        // git-tag strategy, defaults to "."
	TagPattern        string          `yaml:"tag_pattern,omitempty"` // glob over tag names
	IncludePrerelease bool            `yaml:"include_prerelease,omitempty"`
}

// MetricsConfig configures the optional Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Load reads configPath, expanding environment variables after loading any
// .env file. A missing file yields the defaults unless required is set.
func Load(configPath string, required bool) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	// #nosec G304 - configuration path is chosen by the user
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return Default(), nil
		}
		return nil, ferrors.ConfigError("failed to read config file").
			WithCause(err).
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, ferrors.ConfigError("failed to parse config file").
			WithCause(err).
			WithContext("path", configPath).
			Build()
	}
	return cfg, nil
}

// Parse decodes YAML, rejecting unknown keys, and applies defaults. Callers
// validate once their overrides are in place; see Config.Validate and
// VersionConfig.Validate.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Default()
	example.Exclude = []string{"**/*.snap"}
	example.FileTypes = map[string]string{".toml": "TOML file"}

	data, err := yaml.Marshal(example)
	if err != nil {
		return ferrors.InternalError("failed to marshal example config").WithCause(err).Build()
	}
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return ferrors.FileSystemError("failed to create config directory").WithCause(err).Build()
		}
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.FileSystemError("failed to write config file").
			WithCause(err).
			WithContext("path", configPath).
			Build()
	}
	return nil
}
