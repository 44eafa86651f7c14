// Package cmd implements the dynamix CLI subcommands.
//
// Each command is a struct with kong field tags and a Run method. Commands
// receive shared values (configuration file path, cache directory) through
// [kong.Vars], keyed by the exported identifier constants.
package cmd
