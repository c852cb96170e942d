package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/I-Language-Development/I-language-rust/internal/config"
	"github.com/I-Language-Development/I-language-rust/internal/devdocs"
	ferrors "github.com/I-Language-Development/I-language-rust/internal/foundation/errors"
	"github.com/I-Language-Development/I-language-rust/internal/logfields"
	"github.com/I-Language-Development/I-language-rust/internal/metrics"
	"github.com/I-Language-Development/I-language-rust/internal/version"
)

// Options returns the kong options shared by main and tests.
func Options() []kong.Option {
	return []kong.Option{
		kong.Name("devdocs"),
		kong.Description("Developer documentation tooling for the I language sources"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     version.String(),
			"config_path": config.DefaultPath,
		},
	}
}

// Global carries the process streams shared by all subcommands.
type Global struct {
	Stdout io.Writer
	Stdin  io.Reader
}

func (g *Global) stdout() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Global) stdin() io.Reader {
	if g == nil || g.Stdin == nil {
		return os.Stdin
	}
	return g.Stdin
}

// CLI definition & global flags.
type CLI struct {
	Config          string           `short:"c" help:"Configuration file path (default: ${config_path} when present)"`
	Verbose         bool             `short:"v" help:"Enable verbose logging"`
	MetricsTextfile string           `name:"metrics-textfile" help:"Write Prometheus metrics to this file after the run"`
	Version         kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate   GenerateCmd   `cmd:"" help:"Create missing stub pages and refresh the source documentation index"`
	Check      CheckCmd      `cmd:"" help:"Report index rows without stubs or sources and unlisted source files"`
	Substitute SubstituteCmd `cmd:"" help:"Replace {{ VERSION }} in markdown pages"`
	Init       InitCmd       `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig reads the explicit --config file, or the default file when it
// exists, or falls back to built-in defaults.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.Config != "" {
		return config.Load(c.Config, true)
	}
	return config.Load(config.DefaultPath, false)
}

// metricsSink returns the recorder for a run and a flush function that
// writes the textfile when one is configured.
func (c *CLI) metricsSink(cfg *config.Config) (metrics.Recorder, func()) {
	path := c.MetricsTextfile
	if path == "" {
		path = cfg.Metrics.Textfile
	}
	if path == "" {
		return metrics.NoopRecorder{}, func() {}
	}

	reg := prom.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)
	return rec, func() {
		if err := metrics.WriteTextfile(path, reg); err != nil {
			slog.Warn("Metrics export failed", logfields.Path(path), logfields.Error(err))
			return
		}
		slog.Debug("Metrics written", logfields.Path(path))
	}
}

// newGenerator builds a generator from cfg.
func newGenerator(cfg *config.Config, rec metrics.Recorder) (*devdocs.Generator, error) {
	filter, err := devdocs.NewFilter(cfg.Source, devdocs.FilterOptions{
		Exclude:          cfg.Exclude,
		RespectGitignore: cfg.RespectGitignore,
	})
	if err != nil {
		return nil, ferrors.ConfigError("invalid exclude pattern").WithCause(err).Build()
	}

	return devdocs.NewGenerator(devdocs.Options{
		SourceDir:     cfg.Source,
		OutputDir:     cfg.Output,
		RepositoryURL: cfg.RepositoryURL,
		FileTypes:     devdocs.DefaultFileTypes().With(cfg.FileTypes),
		Filter:        filter,
		Recorder:      rec,
	}), nil
}

// applyPaths overrides the configured directories with non-empty flags and
// validates the result.
func applyPaths(cfg *config.Config, source, output string) error {
	if source != "" {
		cfg.Source = source
	}
	if output != "" {
		cfg.Output = output
	}
	return cfg.Validate()
}
