// Package logging builds the slog loggers used across filezen.
//
// It provides console (pretty) and JSON handlers over a shared level var,
// multi-destination output (stdout plus an optional log file), attribute
// helpers so call sites stay consistent, and context plumbing that stamps
// run identifiers and operation names onto every record.
package logging
