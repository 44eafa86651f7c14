package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dynamix-lang/dynamix/lang"
	"github.com/dynamix-lang/dynamix/log"
)

// Run executes a script file, or reads the script from stdin.
type Run struct {
	Script string `arg:"" default:"-"    help:"Script file or '-' for stdin" optional:""`
	Cache  bool   `       default:"true" help:"Cache compiled scripts"       negatable:""`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	source, name, done, err := openSource(r.Script)
	if err != nil {
		return err
	}
	defer done()

	logger := log.Default().Logger

	in := lang.NewInterp(
		lang.WithInterpLogger(logger),
		lang.WithCompileCache(r.Cache),
	)

	log.DebugContext(ctx, "run script",
		slog.String("script", name),
		slog.Bool("cache", r.Cache),
	)

	// Stdin is streamed; files are read whole so the compile cache can key
	// on their contents.
	if source == os.Stdin {
		return in.RunReader(source)
	}

	buf, err := io.ReadAll(source)
	if err != nil {
		return ErrReadScript.
			With(slog.String("script", name)).
			Wrap(err)
	}

	return in.Run(string(buf))
}
