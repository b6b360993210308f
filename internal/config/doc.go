// Package config loads, normalizes, and validates reelscan configuration.
//
// Configuration is a TOML file resolved from an explicit --config flag,
// ~/.config/reelscan/config.toml, or ./reelscan.toml, in that order. Load
// applies defaults first, then the file contents, then normalization (path
// expansion, extension canonicalization) and validation. Scan roots are the
// only required setting; everything else has a working default.
package config
