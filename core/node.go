package core

// ValueKind identifies the wire type of a node input or output as declared
// to the host. The set is fixed by the host's type-declaration convention.
type ValueKind string

const (
	// KindImage is an image value (Image or ImageBatch).
	KindImage ValueKind = "IMAGE"
	// KindString is a UTF-8 string value.
	KindString ValueKind = "STRING"
	// KindInt is a signed integer value.
	KindInt ValueKind = "INT"
	// KindFloat is a floating point value.
	KindFloat ValueKind = "FLOAT"
	// KindBool is a boolean value.
	KindBool ValueKind = "BOOLEAN"
)

// Port describes one declared node output: its display name and value kind.
// Outputs are positional; the host wires them by index.
type Port struct {
	Name string
	Kind ValueKind
}

// Info carries the presentation metadata the host uses when listing nodes.
type Info struct {
	// DisplayName is the human readable name shown in the host UI.
	DisplayName string
	// Category is the slash separated menu path (e.g. "Pixl/Image/Effects").
	Category string
	// OutputNode marks terminal nodes (save, upload) the host always
	// executes even when nothing consumes their outputs.
	OutputNode bool
}

// Node is the contract every node in the pack implements.
//
// Nodes are invoked one call at a time by the host runtime; implementations
// must not assume any particular execution order or caching behavior. A Node
// should be stateless across calls except where it explicitly goes through
// the RunContext state store.
//
// Implementations should:
//   - Provide stable registry names (PascalCase with the pack prefix)
//   - Declare every accepted argument in InputSpec
//   - Return exactly the outputs declared by Returns, in order
//   - Never panic across the host boundary
type Node interface {
	// Name returns the unique registry key for this node (e.g. "PixlBlur").
	Name() string

	// Info returns display metadata for the host UI.
	Info() Info

	// InputSpec declares the accepted arguments. The host renders widgets
	// from this declaration and the pack validates against it before the
	// transformation function runs.
	InputSpec() InputSpec

	// Returns declares the ordered output ports.
	Returns() []Port

	// Apply executes the node with validated arguments. The returned slice
	// holds one value per declared output port.
	Apply(rc *RunContext, args map[string]any) ([]any, error)
}
