// Package cli implements the dynamix command-line interface.
//
// The CLI parses flags and subcommands with [github.com/alecthomas/kong] and
// dispatches to the commands in [github.com/dynamix-lang/dynamix/cli/cmd]:
//
//	dynamix [script]          run a script file (or stdin when omitted or "-")
//	dynamix repl              start an interactive session
//	dynamix disasm <script>   compile a script and print its bytecode
//	dynamix init              write the default configuration file
//
// Flag defaults may be stored in a YAML configuration file (see the init
// command). Command-line flags override configuration file values.
//
// # Logging options
//
// The logger is configured by the --log-* flags. Level and format flags take
// effect as soon as they are parsed so that parse errors themselves are
// reported with the requested configuration.
//
// # Profiling options
//
// Profiling flags (--pprof-*) exist only in binaries built with the "pprof"
// build tag. Without the tag, the flags are absent and profiling is
// unavailable.
package cli
