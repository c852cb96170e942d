package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/I-Language-Development/I-language-rust/internal/foundation/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "src", cfg.Source)
	assert.Equal(t, filepath.Join("Docs", "Docs", "Dev"), cfg.Output)
	assert.Equal(t, defaultRepositoryURL, cfg.RepositoryURL)
	assert.Equal(t, StrategyGitTag, cfg.Version.Strategy)
	assert.Equal(t, ".", cfg.Version.Repo)
	assert.Equal(t, "*", cfg.Version.TagPattern)
	assert.NoError(t, cfg.Validate())
	assert.NoError(t, cfg.Version.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
source: crates
output: docs/dev
exclude:
  - "**/*.snap"
respect_gitignore: true
file_types:
  .toml: TOML file
version:
  value: 2.3.0
metrics:
  textfile: build/devdocs.prom
`))
	require.NoError(t, err)

	assert.Equal(t, "crates", cfg.Source)
	assert.Equal(t, "docs/dev", cfg.Output)
	assert.Equal(t, []string{"**/*.snap"}, cfg.Exclude)
	assert.True(t, cfg.RespectGitignore)
	assert.Equal(t, "TOML file", cfg.FileTypes[".toml"])
	assert.Equal(t, StrategyStatic, cfg.Version.Strategy, "a value implies the static strategy")
	assert.Equal(t, "2.3.0", cfg.Version.Value)
	assert.Equal(t, "build/devdocs.prom", cfg.Metrics.Textfile)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("sources: src\n"))
	assert.Error(t, err)
}

func TestParseNormalizesStrategy(t *testing.T) {
	cfg, err := Parse([]byte("version:\n  strategy: ' Git_Tag'\n  tag_pattern: 'v*'\n"))
	require.NoError(t, err)
	assert.Equal(t, StrategyGitTag, cfg.Version.Strategy)
	assert.Equal(t, ".", cfg.Version.Repo)

	cfg, err = Parse([]byte("version:\n  strategy: STATIC\n  value: 1.0.0\n"))
	require.NoError(t, err)
	assert.Equal(t, StrategyStatic, cfg.Version.Strategy)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"same source and output", "source: docs\noutput: ./docs\n"},
		{"invalid exclude pattern", "exclude: ['[oops']\n"},
		{"empty file type label", "file_types:\n  .toml: ''\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			err = cfg.Validate()
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig), "got %v", err)
		})
	}
}

func TestValidateAfterOverrides(t *testing.T) {
	cfg, err := Parse([]byte("source: src\noutput: docs\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	cfg.Output = "./src"
	assert.True(t, ferrors.HasCategory(cfg.Validate(), ferrors.CategoryConfig))
}

func TestVersionConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"static without value", "version:\n  strategy: static\n"},
		{"bad tag pattern", "version:\n  strategy: git-tag\n  tag_pattern: '[v'\n"},
		{"unknown strategy", "version:\n  strategy: calendar\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			assert.NoError(t, cfg.Validate(), "path settings do not depend on the version section")

			err = cfg.Version.Validate()
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEVDOCS_SOURCE", "crates")

	require.NoError(t, os.WriteFile("devdocs.yaml", []byte("source: ${DEVDOCS_SOURCE}\n"), 0o600))

	cfg, err := Load("devdocs.yaml", true)
	require.NoError(t, err)
	assert.Equal(t, "crates", cfg.Source)
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("devdocs.yaml", false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load("devdocs.yaml", true)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("devdocs.yaml", []byte("source: [unterminated\n"), 0o600))

	_, err := Load("devdocs.yaml", true)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestLoadReadsEnvFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEVDOCS_TEST_OUTPUT", "")
	require.NoError(t, os.Unsetenv("DEVDOCS_TEST_OUTPUT"))

	require.NoError(t, os.WriteFile(".env", []byte("DEVDOCS_TEST_OUTPUT=generated/dev\n"), 0o600))
	require.NoError(t, os.WriteFile("devdocs.yaml", []byte("output: $DEVDOCS_TEST_OUTPUT\n"), 0o600))

	cfg, err := Load("devdocs.yaml", true)
	require.NoError(t, err)
	assert.Equal(t, "generated/dev", cfg.Output)
}

func TestLoadEnvFileDoesNotOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEVDOCS_TEST_SOURCE", "from-process")

	require.NoError(t, os.WriteFile(".env", []byte("DEVDOCS_TEST_SOURCE=from-file\n"), 0o600))
	require.NoError(t, os.WriteFile("devdocs.yaml", []byte("source: $DEVDOCS_TEST_SOURCE\n"), 0o600))

	cfg, err := Load("devdocs.yaml", true)
	require.NoError(t, err)
	assert.Equal(t, "from-process", cfg.Source)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf", "devdocs.yaml")

	require.NoError(t, Init(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"**/*.snap"}, cfg.Exclude)

	err = Init(path, false)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))

	assert.NoError(t, Init(path, true))
}
