// Package main hosts the reelscan CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration once, runs scans, and
// renders inventory reports. Keep this package lean: new behavior belongs in
// the internal packages first and is surfaced here through dedicated commands
// or flags.
package main
