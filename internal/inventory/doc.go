// Package inventory defines the per-file metadata record and the rules that
// derive it from ffprobe output.
//
// Extract turns a raw probe document into a Record or a typed skip reason
// (ErrParse, ErrMissingFormat, ErrMissingVideoStream). Skips are per-file
// conditions; callers log them and continue with the next file.
//
// The H.265 size estimation ratios live here as data. They are a static
// heuristic, deliberately kept as a table rather than anything smarter.
package inventory
