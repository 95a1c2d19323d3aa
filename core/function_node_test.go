package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixl-sh/pixl-nodes/config"
	"github.com/pixl-sh/pixl-nodes/logging"
)

// Interface compliance (compile-time assertion)
var _ Node = (*FunctionNode)(nil)

func testRunContext() *RunContext {
	return NewRunContext(context.Background(), config.Default(), nil, logging.NoOpLogger{})
}

func newEchoNode() *FunctionNode {
	return NewFunctionNode(
		"PixlEcho",
		Info{DisplayName: "Echo", Category: "Pixl/Test"},
		InputSpec{
			Required: []Param{StringParam("text", "")},
			Optional: []Param{StringParam("suffix", "!")},
		},
		[]Port{{Name: "text", Kind: KindString}},
		func(rc *RunContext, args map[string]any) ([]any, error) {
			return []any{StringArg(args, "text", "") + StringArg(args, "suffix", "")}, nil
		},
	)
}

func TestFunctionNode_Apply(t *testing.T) {
	n := newEchoNode()

	out, err := n.Apply(testRunContext(), map[string]any{"text": "hi"})
	assert.NoError(t, err)
	assert.Equal(t, []any{"hi!"}, out)
}

func TestFunctionNode_ValidationError(t *testing.T) {
	n := newEchoNode()

	_, err := n.Apply(testRunContext(), map[string]any{})
	assert.Error(t, err)

	var nodeErr *NodeError
	assert.True(t, errors.As(err, &nodeErr))
	assert.Equal(t, "VALIDATION_ERROR", nodeErr.Code)
	assert.Equal(t, "PixlEcho", nodeErr.Node)
}

func TestFunctionNode_ExecutionErrorWrapping(t *testing.T) {
	n := NewFunctionNode(
		"PixlBoom",
		Info{DisplayName: "Boom", Category: "Pixl/Test"},
		InputSpec{},
		[]Port{{Name: "out", Kind: KindString}},
		func(rc *RunContext, args map[string]any) ([]any, error) {
			return nil, errors.New("kaboom")
		},
	)

	_, err := n.Apply(testRunContext(), map[string]any{})

	var nodeErr *NodeError
	assert.True(t, errors.As(err, &nodeErr))
	assert.Equal(t, "EXECUTION_ERROR", nodeErr.Code)
	assert.Equal(t, "kaboom", nodeErr.Message)
}

func TestFunctionNode_CustomNodeErrorPreserved(t *testing.T) {
	custom := NewNodeError("PixlBoom", "rate limited", "RATE_LIMITED")
	n := NewFunctionNode(
		"PixlBoom",
		Info{DisplayName: "Boom", Category: "Pixl/Test"},
		InputSpec{},
		[]Port{{Name: "out", Kind: KindString}},
		func(rc *RunContext, args map[string]any) ([]any, error) {
			return nil, custom
		},
	)

	_, err := n.Apply(testRunContext(), map[string]any{})
	assert.Same(t, custom, err)
}

func TestFunctionNode_ArityMismatch(t *testing.T) {
	n := NewFunctionNode(
		"PixlShort",
		Info{DisplayName: "Short", Category: "Pixl/Test"},
		InputSpec{},
		[]Port{{Name: "a", Kind: KindString}, {Name: "b", Kind: KindString}},
		func(rc *RunContext, args map[string]any) ([]any, error) {
			return []any{"only one"}, nil
		},
	)

	_, err := n.Apply(testRunContext(), map[string]any{})

	var nodeErr *NodeError
	assert.True(t, errors.As(err, &nodeErr))
	assert.Equal(t, "EXECUTION_ERROR", nodeErr.Code)
}

func TestFunctionNode_DefaultsInjected(t *testing.T) {
	var seen map[string]any
	n := NewFunctionNode(
		"PixlDefaults",
		Info{DisplayName: "Defaults", Category: "Pixl/Test"},
		InputSpec{
			Optional: []Param{IntParam("radius", 5, 0, 100)},
		},
		[]Port{{Name: "out", Kind: KindInt}},
		func(rc *RunContext, args map[string]any) ([]any, error) {
			seen = args
			return []any{IntArg(args, "radius", -1)}, nil
		},
	)

	out, err := n.Apply(testRunContext(), map[string]any{})
	assert.NoError(t, err)
	assert.Equal(t, []any{5}, out)
	assert.Equal(t, 5, seen["radius"])
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(newEchoNode())

	n, err := r.Get("PixlEcho")
	assert.NoError(t, err)
	assert.Equal(t, "PixlEcho", n.Name())

	_, err = r.Get("PixlMissing")
	assert.Error(t, err)

	assert.Equal(t, []string{"PixlEcho"}, r.Names())
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, map[string]string{"PixlEcho": "Echo"}, r.DisplayNames())
}

func TestRegistry_ListCategory(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(NewFunctionNode("PixlA", Info{Category: "Pixl/Image/Effects"}, InputSpec{}, nil, nil))
	r.Register(NewFunctionNode("PixlB", Info{Category: "Pixl/Image"}, InputSpec{}, nil, nil))
	r.Register(NewFunctionNode("PixlC", Info{Category: "Pixl/Text"}, InputSpec{}, nil, nil))

	got := r.ListCategory("Pixl/Image")
	assert.Len(t, got, 2)

	got = r.ListCategory("Pixl")
	assert.Len(t, got, 3)
}

func TestImageCloneIsolation(t *testing.T) {
	img := NewImage(2, 2)
	img.SetRGB(1, 1, 0.5, 0.25, 1)

	c := img.Clone()
	c.SetRGB(1, 1, 0, 0, 0)

	r, g, b := img.RGB(1, 1)
	assert.Equal(t, float32(0.5), r)
	assert.Equal(t, float32(0.25), g)
	assert.Equal(t, float32(1), b)
}

func TestImageClamp(t *testing.T) {
	img := NewImage(1, 1)
	img.Pix[0] = -0.5
	img.Pix[1] = 1.5
	img.Pix[2] = 0.3

	img.Clamp()
	assert.Equal(t, []float32{0, 1, 0.3}, img.Pix)
}
