// Package logging assembles structured slog loggers used across kotoba.
//
// It owns the console and JSON handlers, level parsing, and the fan-out that
// mirrors terminal output into a JSON log file. Context helpers tag log lines
// with caption load ids and API request ids so one load can be followed from
// the HTTP handler down to the aligner. A no-op logger is provided for tests
// and wiring code that cannot fail.
package logging
