package testsupport

import (
	"path/filepath"
	"testing"

	"reelscan/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Roots = []string{filepath.Join(base, "videos")}
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Output.CSVPath = filepath.Join(base, "out", "inventory.csv")
	cfg.Output.DBPath = filepath.Join(base, "out", "inventory.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	return &cfg
}

// WithRoots overrides the scan roots on the test config.
func WithRoots(roots ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.Roots = roots
	}
}

// WithDebugDumps enables raw probe document dumps on the test config.
func WithDebugDumps() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.DebugProbeDumps = true
	}
}
