package core

import (
	"fmt"
	"time"
)

// FunctionNode is a generic adapter that exposes a plain Go function as a
// pack node.
//
// Responsibilities:
//   - Holds the declared InputSpec and output ports
//   - Validates host supplied arguments against the spec before execution
//   - Injects declared defaults for absent optional arguments
//   - Invokes the wrapped function with a *RunContext giving access to
//     configuration, state and logging
//   - Normalizes error handling so callers receive *NodeError with
//     consistent codes:
//     VALIDATION_ERROR  -> spec / argument mismatch
//     EXECUTION_ERROR   -> underlying function returned an error (non-NodeError)
//     (custom codes preserved if the function returns *NodeError directly)
//
// Concurrency:
//
//	A FunctionNode has no internal mutable state after construction and is
//	safe for concurrent use by multiple goroutines.
type FunctionNode struct {
	// Registry name (PascalCase with the pack prefix)
	name string
	// Display metadata for the host UI
	info Info
	// Declared arguments
	inputs InputSpec
	// Ordered output ports
	returns []Port
	// User supplied implementation
	fn func(rc *RunContext, args map[string]any) ([]any, error)
}

// NewFunctionNode constructs a FunctionNode from explicit declarations and
// function.
//
// Arguments:
//
//	name    - unique registry name ("PixlBlur", "PixlRoundRobin", ...)
//	info    - display name, category path and output-node flag
//	inputs  - required/optional parameter declarations
//	returns - ordered output ports
//	fn      - implementation receiving a RunContext plus already validated args
func NewFunctionNode(
	name string,
	info Info,
	inputs InputSpec,
	returns []Port,
	fn func(rc *RunContext, args map[string]any) ([]any, error),
) *FunctionNode {
	return &FunctionNode{
		name:    name,
		info:    info,
		inputs:  inputs,
		returns: returns,
		fn:      fn,
	}
}

// Name returns the unique registry name used by the host to instantiate the node.
func (n *FunctionNode) Name() string { return n.name }

// Info returns the display metadata for the host UI.
func (n *FunctionNode) Info() Info { return n.info }

// InputSpec returns the declared arguments.
func (n *FunctionNode) InputSpec() InputSpec { return n.inputs }

// Returns returns the ordered output ports.
func (n *FunctionNode) Returns() []Port { return n.returns }

// Apply validates the provided args against the declared spec, injects
// defaults, then invokes the underlying function. Validation or execution
// failures are wrapped (or passed through) as *NodeError for uniform
// downstream handling.
//
// Error Semantics:
//
//	*NodeError (returned directly)  -> forwarded unchanged
//	validation failure              -> *NodeError{Code: "VALIDATION_ERROR"}
//	other error                     -> *NodeError{Code: "EXECUTION_ERROR"}
//
// Logging Fields:
//
//	node: registry name
//	run_id: invocation identifier
//	duration_ms: execution time in milliseconds
func (n *FunctionNode) Apply(rc *RunContext, args map[string]any) ([]any, error) {
	logger := rc.Logger()
	start := time.Now()

	logger.Debug("node.apply.start", "node", n.name, "run_id", rc.RunID)

	if err := n.inputs.Validate(args); err != nil {
		logger.Warn("node.apply.validation_failed", "node", n.name, "error", err.Error())

		return nil, &NodeError{
			Node:    n.name,
			Message: fmt.Sprintf("argument validation failed: %v", err),
			Code:    "VALIDATION_ERROR",
			Details: err,
		}
	}

	args = n.inputs.ApplyDefaults(args)

	out, err := n.fn(rc, args)
	if err != nil {
		if nodeErr, ok := err.(*NodeError); ok { // Already a NodeError -> just log and forward
			logger.Error("node.apply.error", "node", n.name, "error", nodeErr.Message)

			return nil, nodeErr
		}

		logger.Error("node.apply.error", "node", n.name, "error", err.Error())

		return nil, &NodeError{
			Node:    n.name,
			Message: err.Error(),
			Code:    "EXECUTION_ERROR",
		}
	}

	if len(out) != len(n.returns) {
		logger.Error("node.apply.arity_mismatch", "node", n.name, "want", len(n.returns), "got", len(out))

		return nil, &NodeError{
			Node:    n.name,
			Message: fmt.Sprintf("expected %d outputs, got %d", len(n.returns), len(out)),
			Code:    "EXECUTION_ERROR",
		}
	}

	logger.Info("node.apply.success", "node", n.name, "duration_ms", time.Since(start).Milliseconds())

	return out, nil
}
