package testsupport

import (
	"path/filepath"
	"testing"

	"tickgen/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.HistoryDB = filepath.Join(base, "state", "history.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithStyle sets the tick literal style.
func WithStyle(style string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Ticks.Style = style
	}
}

// WithSplitRests toggles rest splitting.
func WithSplitRests(split bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Ticks.SplitRests = split
	}
}

// WithSlots overrides the engine slot count.
func WithSlots(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Engine.Slots = n
	}
}

// WithHistoryDisabled turns the run ledger off.
func WithHistoryDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
