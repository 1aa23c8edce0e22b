// Package log provides a concurrency-safe structured logging facade over
// [log/slog] with an additional trace level below debug.
//
// A [Logger] is a value type configured with functional options for level,
// output format (text or JSON), timestamp layout, caller information, and
// colorized pretty printing. The zero value is a valid no-op logger, which
// lets library code log unconditionally without nil checks.
//
// The package also maintains a default logger writing to stdout, exposed
// through package-level functions ([Trace], [Debug], [Info], [Warn],
// [Error]) and reconfigured with [Config].
package log
