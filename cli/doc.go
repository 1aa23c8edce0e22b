// Package cli contains the command line interface for dotkv.
//
// # Usage
//
// The default (and only) command translates a source file into a structured
// text document on stdout:
//
//	dotkv --input config.kv
//	dotkv --input - --format json < config.kv
//
// On success the serialized document is written to stdout and the process
// exits 0. On any failure (unreadable input, unexpected token, undefined
// constant) a single descriptive message is emitted and the process exits 1.
// No partial output is ever written on failure.
//
// # Logging options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
