package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixl-sh/pixl-nodes/config"
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/logging"
)

func newTestContext(t *testing.T) *core.RunContext {
	t.Helper()
	cfg := config.Default()
	cfg.StateDir = t.TempDir()
	return core.NewRunContext(context.Background(), cfg, nil, logging.NoOpLogger{})
}

func TestDynamicStringDeterministic(t *testing.T) {
	rc := newTestContext(t)
	node := NewDynamicString()

	args := map[string]any{"text_list": "alpha\nbeta\ngamma", "seed": 42}
	first, err := node.Apply(rc, args)
	require.NoError(t, err)

	second, err := node.Apply(rc, map[string]any{"text_list": "alpha\nbeta\ngamma", "seed": 42})
	require.NoError(t, err)

	assert.Equal(t, first[0], second[0])
	assert.Contains(t, []string{"alpha", "beta", "gamma"}, first[0])
}

func TestDynamicStringSeedChangesSelection(t *testing.T) {
	rc := newTestContext(t)
	node := NewDynamicString()

	seen := map[string]bool{}
	for seed := 0; seed < 20; seed++ {
		out, err := node.Apply(rc, map[string]any{"text_list": "a\nb\nc\nd", "seed": seed})
		require.NoError(t, err)
		seen[out[0].(string)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestDynamicStringEmptyList(t *testing.T) {
	rc := newTestContext(t)
	node := NewDynamicString()

	out, err := node.Apply(rc, map[string]any{"text_list": "  \n\n  ", "seed": 0})
	require.NoError(t, err)
	assert.Equal(t, "", out[0])
}

func TestConcatenateString(t *testing.T) {
	rc := newTestContext(t)
	node := NewConcatenateString()

	out, err := node.Apply(rc, map[string]any{
		"delimiter": ", ",
		"text_a":    "portrait",
		"text_c":    "in armor",
		"text_b":    "of a warrior",
	})
	require.NoError(t, err)
	assert.Equal(t, "portrait, of a warrior, in armor", out[0])
}

func TestConcatenateStringSkipsEmpty(t *testing.T) {
	rc := newTestContext(t)
	node := NewConcatenateString()

	out, err := node.Apply(rc, map[string]any{
		"delimiter": " ",
		"text_a":    "",
		"text_b":    "hello",
		"text_j":    "world",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello world", out[0])
}

func TestConcatenateStringAllEmpty(t *testing.T) {
	rc := newTestContext(t)
	node := NewConcatenateString()

	out, err := node.Apply(rc, map[string]any{"delimiter": " "})
	require.NoError(t, err)
	assert.Equal(t, "", out[0])
}

func TestTagSelectorSectionFormat(t *testing.T) {
	rc := newTestContext(t)
	node := NewTagSelector()

	presets := "[Batman]\ndark, knight\n\n[Superman]\nhero, cape"
	out, err := node.Apply(rc, map[string]any{
		"trigger_word": "BATMAN",
		"presets":      presets,
	})
	require.NoError(t, err)
	assert.Equal(t, "dark, knight", out[0])
}

func TestTagSelectorMultilineSection(t *testing.T) {
	rc := newTestContext(t)
	node := NewTagSelector()

	presets := "[Batman]\ndark, knight\ngotham, rich"
	out, err := node.Apply(rc, map[string]any{
		"trigger_word": "batman",
		"presets":      presets,
	})
	require.NoError(t, err)
	assert.Equal(t, "dark, knight, gotham, rich", out[0])
}

func TestTagSelectorLegacyFormat(t *testing.T) {
	rc := newTestContext(t)
	node := NewTagSelector()

	presets := "Batman: dark, knight\nSuperman: hero, cape"
	out, err := node.Apply(rc, map[string]any{
		"trigger_word": " superman ",
		"presets":      presets,
	})
	require.NoError(t, err)
	assert.Equal(t, "hero, cape", out[0])
}

func TestTagSelectorMissAndEmptyTrigger(t *testing.T) {
	rc := newTestContext(t)
	node := NewTagSelector()

	out, err := node.Apply(rc, map[string]any{
		"trigger_word":  "joker",
		"presets":       "[Batman]\ndark",
		"default_value": "unknown",
	})
	require.NoError(t, err)
	assert.Equal(t, "unknown", out[0])

	out, err = node.Apply(rc, map[string]any{
		"trigger_word":  "   ",
		"presets":       "[Batman]\ndark",
		"default_value": "fallback",
	})
	require.NoError(t, err)
	assert.Equal(t, "fallback", out[0])
}

func TestRoundRobinSequence(t *testing.T) {
	rc := newTestContext(t)
	node := NewRoundRobin()

	args := func() map[string]any {
		return map[string]any{
			"text_list":       "Alice\nBob",
			"images_per_item": 2,
			"reset_trigger":   false,
		}
	}

	out, err := node.Apply(rc, args())
	require.NoError(t, err)
	assert.Equal(t, "Alice", out[0])
	assert.Equal(t, "Alice: 1/2 | Total: 1/4", out[1])
	assert.Equal(t, 4, out[2])

	out, err = node.Apply(rc, args())
	require.NoError(t, err)
	assert.Equal(t, "Alice: 2/2 | Total: 2/4", out[1])

	out, err = node.Apply(rc, args())
	require.NoError(t, err)
	assert.Equal(t, "Bob", out[0])
	assert.Equal(t, "Bob: 1/2 | Total: 3/4", out[1])

	out, err = node.Apply(rc, args())
	require.NoError(t, err)
	assert.Equal(t, "Bob: 2/2 | Total: 4/4", out[1])

	// Cycle wraps back to the first item.
	out, err = node.Apply(rc, args())
	require.NoError(t, err)
	assert.Equal(t, "Alice", out[0])
	assert.Equal(t, "Alice: 1/2 | Total: 1/4", out[1])
}

func TestRoundRobinResetTrigger(t *testing.T) {
	rc := newTestContext(t)
	node := NewRoundRobin()

	base := map[string]any{"text_list": "A\nB", "images_per_item": 2, "reset_trigger": false}
	for i := 0; i < 3; i++ {
		_, err := node.Apply(rc, base)
		require.NoError(t, err)
	}

	out, err := node.Apply(rc, map[string]any{"text_list": "A\nB", "images_per_item": 2, "reset_trigger": true})
	require.NoError(t, err)
	assert.Equal(t, "A", out[0])
	assert.Equal(t, "A: 1/2 | Total: 1/4", out[1])
}

func TestRoundRobinEmptyList(t *testing.T) {
	rc := newTestContext(t)
	node := NewRoundRobin()

	out, err := node.Apply(rc, map[string]any{"text_list": "", "images_per_item": 2, "reset_trigger": false})
	require.NoError(t, err)
	assert.Equal(t, "", out[0])
	assert.Equal(t, "No items", out[1])
	assert.Equal(t, 0, out[2])
}

func TestRoundRobinListChangeStartsFresh(t *testing.T) {
	rc := newTestContext(t)
	node := NewRoundRobin()

	_, err := node.Apply(rc, map[string]any{"text_list": "A\nB", "images_per_item": 2, "reset_trigger": false})
	require.NoError(t, err)

	out, err := node.Apply(rc, map[string]any{"text_list": "X\nY\nZ", "images_per_item": 2, "reset_trigger": false})
	require.NoError(t, err)
	assert.Equal(t, "X", out[0])
	assert.Equal(t, "X: 1/2 | Total: 1/6", out[1])
	assert.Equal(t, 6, out[2])
}

func TestFormatString(t *testing.T) {
	rc := newTestContext(t)
	node := NewFormatString()

	out, err := node.Apply(rc, map[string]any{
		"template": "{{.a}}, {{upper .b}}",
		"a":        "portrait",
		"b":        "warrior",
	})
	require.NoError(t, err)
	assert.Equal(t, "portrait, WARRIOR", out[0])
}

func TestFormatStringBadTemplateFallsBack(t *testing.T) {
	rc := newTestContext(t)
	node := NewFormatString()

	out, err := node.Apply(rc, map[string]any{
		"template": "{{.a",
		"a":        "x",
	})
	require.NoError(t, err)
	assert.Equal(t, "{{.a", out[0])
}
