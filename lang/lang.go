package lang

import (
	"io"
	"log/slog"
)

// Interp is the top-level entry point to the runtime: it owns a VM (and
// therefore a binding stack) and compiles-then-executes source on demand.
// Bindings persist across Run calls, which is what the REPL relies on.
type Interp struct {
	vm     *VM
	stdout io.Writer
	logger *slog.Logger
	block  *ByteBlock // most recently executed block
	cache  bool
}

// Option configures an Interp at construction.
type Option func(*Interp)

// WithInterpStdout directs print output to w.
func WithInterpStdout(w io.Writer) Option {
	return func(in *Interp) { in.stdout = w }
}

// WithInterpLogger attaches a structured logger to the interpreter and its VM.
func WithInterpLogger(logger *slog.Logger) Option {
	return func(in *Interp) { in.logger = logger }
}

// WithCompileCache enables the shared source-hash compile cache for this
// interpreter's Run calls.
func WithCompileCache(enable bool) Option {
	return func(in *Interp) { in.cache = enable }
}

// NewInterp creates an interpreter with a fresh binding stack.
func NewInterp(opts ...Option) *Interp {
	in := &Interp{}

	// The VM is built after all options apply so option order is irrelevant.
	for _, opt := range opts {
		opt(in)
	}

	vmOpts := []VMOption{WithLogger(in.logger)}
	if in.stdout != nil {
		vmOpts = append(vmOpts, WithStdout(in.stdout))
	}

	in.vm = NewVM(vmOpts...)

	return in
}

// Run compiles and executes source. Compile failures return *CompileError and
// leave the binding stack untouched; runtime failures return *RuntimeError and
// leave the stack in whatever state execution reached.
func (in *Interp) Run(source string) error {
	var (
		block *ByteBlock
		err   error
	)

	if in.cache {
		block, err = CompileCached(source, in.logger)
	} else {
		block, err = Compile(source)
	}

	if err != nil {
		return err
	}

	in.block = block

	return in.vm.Interpret(block)
}

// RunReader reads all of r and executes it as one program.
func (in *Interp) RunReader(r io.Reader) error {
	block, err := CompileReader(r, in.logger)
	if err != nil {
		return err
	}

	in.block = block

	return in.vm.Interpret(block)
}

// Bindings exposes the interpreter's binding stack for inspection (REPL
// completion and the list command).
func (in *Interp) Bindings() *BindingStack { return in.vm.Bindings() }

// LastBlock returns the most recently executed byte block, or nil when
// nothing has run yet. Used by the REPL's disassembly command.
func (in *Interp) LastBlock() *ByteBlock { return in.block }
