package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/I-Language-Development/I-language-rust/cmd/devdocs/commands"
	"github.com/I-Language-Development/I-language-rust/internal/foundation/errors"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli, commands.Options()...)

	global := &commands.Global{Stdout: os.Stdout, Stdin: os.Stdin}
	if err := parser.Run(global, cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, nil).HandleError(err)
	}
}
