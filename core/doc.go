// Package core defines the node contract shared by every node in the pack:
// the Node interface, input parameter declarations, the image value type,
// the per-invocation RunContext and the Registry the host adapter consumes.
//
// The host graph engine (external to this repository) schedules node
// execution, caches results and wires outputs to inputs. Nodes are plain
// request/response handlers: they declare their inputs, transform validated
// arguments into an ordered list of outputs, and never coordinate with each
// other directly. The only state a node may keep between invocations lives
// behind the StateStore interface.
package core
