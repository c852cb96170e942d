package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/I-Language-Development/I-language-rust/internal/config"
	ferrors "github.com/I-Language-Development/I-language-rust/internal/foundation/errors"
	"github.com/I-Language-Development/I-language-rust/internal/logfields"
	"github.com/I-Language-Development/I-language-rust/internal/variables"
	"github.com/I-Language-Development/I-language-rust/internal/versioning"
)

// SubstituteCmd implements the 'substitute' command.
type SubstituteCmd struct {
	Files   []string `arg:"" optional:"" type:"existingfile" help:"Markdown pages to process; stdin is read when none are given"`
	InPlace bool     `short:"i" name:"in-place" help:"Rewrite the pages instead of printing them"`
	Release string   `name:"release" help:"Use this version instead of the configured resolver"`
}

func (s *SubstituteCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if s.InPlace && len(s.Files) == 0 {
		return ferrors.ValidationError("--in-place needs at least one file").Build()
	}

	vc := cfg.Version
	if s.Release != "" {
		vc = config.VersionConfig{Strategy: config.StrategyStatic, Value: s.Release}
	}
	if err := vc.Validate(); err != nil {
		return err
	}
	resolver, err := versioning.FromConfig(vc)
	if err != nil {
		return err
	}
	slog.Debug("Version resolver selected", logfields.Strategy(string(vc.Strategy)))

	rec, flush := root.metricsSink(cfg)
	defer flush()
	sub := variables.NewSubstituter(resolver).WithRecorder(rec)

	if len(s.Files) == 0 {
		data, err := io.ReadAll(global.stdin())
		if err != nil {
			return ferrors.FileSystemError("failed to read stdin").WithCause(err).Build()
		}
		out, err := sub.OnPageMarkdown(string(data), nil)
		if err != nil {
			return err
		}
		_, err = io.WriteString(global.stdout(), out)
		return err
	}

	for _, path := range s.Files {
		if err := s.processFile(sub, path, global.stdout()); err != nil {
			return err
		}
	}
	return nil
}

func (s *SubstituteCmd) processFile(sub *variables.Substituter, path string, stdout io.Writer) error {
	// #nosec G304 - pages are chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return ferrors.FileSystemError("failed to read page").WithCause(err).WithContext("path", path).Build()
	}

	out, err := sub.OnPageMarkdown(string(data), map[string]any{"page": path})
	if err != nil {
		return err
	}

	if !s.InPlace {
		_, err = io.WriteString(stdout, out)
		return err
	}
	if out == string(data) {
		slog.Debug("Page unchanged", logfields.File(path))
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return ferrors.FileSystemError("failed to stat page").WithCause(err).WithContext("path", path).Build()
	}
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return ferrors.FileSystemError("failed to write page").WithCause(err).WithContext("path", path).Build()
	}
	slog.Info("Page updated", logfields.File(path))
	return nil
}
