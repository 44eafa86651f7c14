package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/dynamix-lang/dynamix/lang"
	"github.com/dynamix-lang/dynamix/log"
)

// Disasm compiles a script and prints its bytecode without executing it.
type Disasm struct {
	Script string `arg:"" default:"-" help:"Script file or '-' for stdin" optional:""`
}

// Run executes the disasm command.
func (d *Disasm) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	source, name, done, err := openSource(d.Script)
	if err != nil {
		return err
	}
	defer done()

	block, err := lang.CompileReader(source, log.Default().Logger)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "disassemble script",
		slog.String("script", name),
		slog.Int("bytes", len(block.Code)),
	)

	lang.Disassemble(block, name, os.Stdout)

	return nil
}
