// Package language maps audio language tags to display names.
//
// Probe output carries ISO 639 codes ("eng", "fr") or nothing at all. The
// report surfaces use this package to show readable names without changing
// what gets persisted: inventory records always keep the raw tags.
package language
