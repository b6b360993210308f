// Package ffprobe invokes the external ffprobe tool and parses its JSON output.
//
// Inspect launches ffprobe against a single file and captures the structured
// document from stdout separately from diagnostic text on stderr. Diagnostics
// do not fail an inspection: ffprobe routinely warns about streams it can
// still describe. An inspection only fails with ErrNoDocument when the process
// cannot be started, is killed by the caller's context, or produces no
// recognizable JSON payload.
//
// Parse decodes a captured document into Result, whose helpers expose the
// stream selection and numeric coercion rules the rest of reelscan relies on.
package ffprobe
