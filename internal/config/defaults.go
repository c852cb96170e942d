package config

import "path/filepath"

const (
	defaultSource        = "src"
	defaultRepositoryURL = "https://github.com/I-Language-Development/I-language-rust"
	defaultVersionRepo   = "."
	defaultTagPattern    = "*"
)

var defaultOutput = filepath.Join("Docs", "Docs", "Dev")

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Source == "" {
		c.Source = defaultSource
	}
	if c.Output == "" {
		c.Output = defaultOutput
	}
	if c.RepositoryURL == "" {
		c.RepositoryURL = defaultRepositoryURL
	}
	if s, ok := strategies.Lookup(string(c.Version.Strategy)); ok {
		c.Version.Strategy = s
	}
	if c.Version.Strategy == "" {
		if c.Version.Value != "" {
			c.Version.Strategy = StrategyStatic
		} else {
			c.Version.Strategy = StrategyGitTag
		}
	}
	if c.Version.Strategy == StrategyGitTag {
		if c.Version.Repo == "" {
			c.Version.Repo = defaultVersionRepo
		}
		if c.Version.TagPattern == "" {
			c.Version.TagPattern = defaultTagPattern
		}
	}
}
