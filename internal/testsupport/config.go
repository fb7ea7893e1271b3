package testsupport

import (
	"path/filepath"
	"testing"

	"kotoba/internal/config"
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
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.APIBind = "127.0.0.1:0"

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

// WithRecentLimit overrides the recent-video list size.
func WithRecentLimit(limit int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Library.RecentLimit = limit
	}
}

// WithAlignMode sets captions.align_mode on the test config.
func WithAlignMode(mode string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Captions.AlignMode = mode
	}
}

// WithAllowedOrigins sets the API CORS origins.
func WithAllowedOrigins(origins ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.API.AllowedOrigins = origins
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
