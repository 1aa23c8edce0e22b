// Package profile provides optional runtime profiling for the dotkv
// application.
//
// The package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (the default), all operations are no-ops
// with zero runtime overhead, and the CLI exposes no profiling modes.
//
// Supported modes when built with the tag: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, trace. Use [Modes] to retrieve the
// list programmatically. Profile files are written to the configured output
// directory with names matching the mode (e.g. cpu.pprof).
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
