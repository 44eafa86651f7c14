package cmd

import (
	"context"

	"github.com/dynamix-lang/dynamix/cli/cmd/repl"
	"github.com/dynamix-lang/dynamix/log"
)

// Repl starts an interactive read-eval-print loop.
type Repl struct{}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	cacheDir, ok := ktx.Model.Vars()[CacheIdentifier]
	if !ok {
		panic("internal error: cache namespace undefined")
	}

	return repl.Run(ctx, cacheDir, log.Default())
}
