// Package scanner drives a full inventory run.
//
// A run walks the configured roots in deterministic discovery order, probes
// each matching file through the prober, extracts an inventory record, and
// persists the accumulated set to the CSV file and the SQLite store once at
// the end. Processing is strictly sequential: one probe process at a time,
// record order equals discovery order.
//
// Per-file failures never abort a run. They are collected and flushed to the
// error log exactly once when the run finishes; a run with no failures leaves
// no error log behind.
package scanner
