package testutil

import (
	"context"
	"testing"

	"github.com/pixl-sh/pixl-nodes/config"
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/logging"
	"github.com/pixl-sh/pixl-nodes/storage"
)

// ContextBuilder provides a fluent helper for constructing run contexts in
// tests. Example:
//
//	rc := NewContextBuilder(t).WithTempDirs().Build()
//
// Defaults: background context, default config, in-memory state, no-op
// logger.
type ContextBuilder struct {
	t      *testing.T
	ctx    context.Context
	cfg    *config.Config
	state  core.StateStore
	logger logging.Logger
}

// NewContextBuilder creates a builder with local-safe defaults.
func NewContextBuilder(t *testing.T) *ContextBuilder {
	t.Helper()
	return &ContextBuilder{
		t:      t,
		ctx:    context.Background(),
		cfg:    config.Default(),
		state:  storage.NewMemoryStore(),
		logger: logging.NoOpLogger{},
	}
}

// WithContext overrides the ambient context (chainable).
func (b *ContextBuilder) WithContext(ctx context.Context) *ContextBuilder { b.ctx = ctx; return b }

// WithConfig overrides the pack configuration (chainable).
func (b *ContextBuilder) WithConfig(cfg *config.Config) *ContextBuilder { b.cfg = cfg; return b }

// WithTempDirs points the text, output and state directories at fresh
// temporary directories (chainable).
func (b *ContextBuilder) WithTempDirs() *ContextBuilder {
	b.cfg.TextDir = b.t.TempDir()
	b.cfg.OutputDir = b.t.TempDir()
	b.cfg.StateDir = b.t.TempDir()
	return b
}

// WithState overrides the state store (chainable).
func (b *ContextBuilder) WithState(s core.StateStore) *ContextBuilder { b.state = s; return b }

// WithLogger overrides the logger (chainable).
func (b *ContextBuilder) WithLogger(l logging.Logger) *ContextBuilder { b.logger = l; return b }

// Build materializes the run context.
func (b *ContextBuilder) Build() *core.RunContext {
	return core.NewRunContext(b.ctx, b.cfg, b.state, b.logger)
}
