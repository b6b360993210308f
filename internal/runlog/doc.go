// Package runlog manages the per-run log files a scan produces.
//
// Three surfaces exist: a summary log (one line per processed file plus run
// totals), a debug log holding raw probe documents when enabled, and an error
// log. The error log is only created when soft failures occurred; its absence
// after a run means the run was clean.
package runlog
