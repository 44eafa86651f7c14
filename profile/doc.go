// Package profile provides optional runtime profiling for the dynamix
// interpreter.
//
// Profiling integrates [github.com/pkg/profile] behind the "pprof" build tag.
// In default builds every operation is a no-op with zero overhead; build with
//
//	go build -tags pprof
//
// to enable it. The supported modes (cpu, heap, mem, allocs, block, mutex,
// goroutine, thread, clock, trace) are listed by [Modes] and selected on the
// command line with the -pprof-mode flag. Profile files are written to the
// directory given by -pprof-dir, defaulting to the pprof subdirectory of the
// interpreter's cache directory.
//
// Analyze the output with the standard tooling:
//
//	go tool pprof ./dynamix cpu.pprof
//	go tool pprof -http=: heap.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
