// Package logging configures structured slog loggers for reelscan.
//
// Two output formats are supported: a human-oriented console format used for
// interactive runs, and a JSON format for machine consumption. Loggers fan
// output to stdout/stderr plus an optional per-run log file under the
// configured log directory.
//
// Attr aliases re-export the slog field constructors so callers do not import
// log/slog directly alongside this package.
package logging
