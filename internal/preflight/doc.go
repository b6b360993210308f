// Package preflight verifies a scan can run before any file is processed.
//
// Checks cover the ffprobe executable, readability of every configured root,
// and writability plus free space of the output locations. Any failed check is
// fatal: the orchestrator refuses to start a run that would abort halfway.
package preflight
