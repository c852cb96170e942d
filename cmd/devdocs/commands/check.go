package commands

import (
	"fmt"

	ferrors "github.com/I-Language-Development/I-language-rust/internal/foundation/errors"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Source string `short:"s" help:"Source root to compare against (overrides config)"`
	Output string `short:"o" help:"Documentation output directory (overrides config)"`
}

func (c *CheckCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if err := applyPaths(cfg, c.Source, c.Output); err != nil {
		return err
	}

	gen, err := newGenerator(cfg, nil)
	if err != nil {
		return err
	}
	report, err := gen.Check()
	if err != nil {
		return err
	}

	out := global.stdout()
	for _, p := range report.Problems {
		if _, err := fmt.Fprintln(out, p.String()); err != nil {
			return err
		}
	}
	if !report.OK() {
		return ferrors.DocsError(fmt.Sprintf("index is out of date: %d problem(s)", len(report.Problems))).
			WithContext("rows", report.Rows).
			Build()
	}
	_, err = fmt.Fprintf(out, "Index lists %d files, all consistent\n", report.Rows)
	return err
}
