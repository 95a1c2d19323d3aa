package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pixl-sh/pixl-nodes/config"
	"github.com/pixl-sh/pixl-nodes/logging"
)

// RunContext carries execution state & helpers for a single node invocation.
// It aggregates:
//   - The ambient cancellation Context
//   - A RunID correlating log lines from one invocation
//   - The resolved pack configuration (directories, platform URL)
//   - The StateStore backing cross-invocation node state
//
// The host adapter constructs one RunContext per node call; nodes must not
// retain it past Apply.
type RunContext struct {
	Context context.Context
	RunID   string
	Config  *config.Config
	State   StateStore

	*loggerAdapter
}

// NewRunContext constructs a RunContext with a fresh run identifier.
func NewRunContext(
	ctx context.Context,
	cfg *config.Config,
	state StateStore,
	logger logging.Logger,
) *RunContext {
	if cfg == nil {
		cfg = config.Default()
	}
	return &RunContext{
		Context:       ctx,
		RunID:         uuid.NewString(),
		Config:        cfg,
		State:         state,
		loggerAdapter: newLoggerAdapter(logger),
	}
}

// Done returns a channel closed when the underlying context is cancelled.
func (rc *RunContext) Done() <-chan struct{} { return rc.Context.Done() }

// Err returns the cancellation error (if any) from the underlying context.
func (rc *RunContext) Err() error { return rc.Context.Err() }

// SaveState stores bytes in the StateStore under the given scope and key.
func (rc *RunContext) SaveState(scope, key string, data []byte) error {
	if rc.State == nil {
		return fmt.Errorf("state store not configured")
	}
	return rc.State.Save(scope, key, data)
}

// GetState retrieves previously saved state bytes.
func (rc *RunContext) GetState(scope, key string) ([]byte, error) {
	if rc.State == nil {
		return nil, fmt.Errorf("state store not configured")
	}
	return rc.State.Get(scope, key)
}

// ListState returns the keys stored for the scope.
func (rc *RunContext) ListState(scope string) ([]string, error) {
	if rc.State == nil {
		return []string{}, nil
	}
	return rc.State.List(scope)
}
