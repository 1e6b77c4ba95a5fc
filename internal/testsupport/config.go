package testsupport

import (
	"path/filepath"
	"testing"

	"filezen/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.BaseDir = filepath.Join(base, "target")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.HistoryDB = filepath.Join(base, "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithCollision sets the organize collision policy on the test config.
func WithCollision(policy string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.OnCollision = policy
	}
}

// WithCleanup enables the cleanup pass with the given threshold.
func WithCleanup(days int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cleanup.Enabled = true
		cfg.Cleanup.MaxAgeDays = days
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
