package commands

import (
	"fmt"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Source string `short:"s" help:"Source root to document (overrides config)"`
	Output string `short:"o" help:"Documentation output directory (overrides config)"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if err := applyPaths(cfg, g.Source, g.Output); err != nil {
		return err
	}

	rec, flush := root.metricsSink(cfg)
	defer flush()

	gen, err := newGenerator(cfg, rec)
	if err != nil {
		return err
	}
	res, err := gen.Run()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(global.stdout(), "Generated %d files for source code documentation\n", res.Generated())
	return err
}
