package pixlnodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/testutil"
)

func TestDefaultRegistryHasEveryNode(t *testing.T) {
	reg := DefaultRegistry()
	assert.Equal(t, 37, reg.Len())

	for _, name := range []string{
		"PixlDynamicString", "PixlRoundRobin", "PixlLoadText",
		"PixlOpenAI", "PixlClaude", "PixlGemini", "PixlOllamaSummarizer",
		"PixlBlur", "PixlRotate", "PixlBlend", "PixlCompressAndSave",
		"PixlUpload", "PixlS3Upload",
	} {
		_, err := reg.Get(name)
		assert.NoError(t, err, name)
	}
}

func TestRegistryDeclarationsAreComplete(t *testing.T) {
	for _, n := range DefaultRegistry().List() {
		info := n.Info()
		assert.NotEmpty(t, info.DisplayName, n.Name())
		assert.NotEmpty(t, info.Category, n.Name())
		assert.NotEmpty(t, n.Returns(), n.Name())

		spec := n.InputSpec()
		for _, p := range append(spec.Required, spec.Optional...) {
			assert.NotEmpty(t, p.Name, n.Name())
		}
	}
}

func TestPackRunsNodeEndToEnd(t *testing.T) {
	pack := New()
	node, err := pack.Registry().Get("PixlInvert")
	require.NoError(t, err)

	img := testutil.NewImageBuilder().Size(2, 2).Fill(1, 1, 1).Build()
	out, err := node.Apply(pack.NewRunContext(t.Context()), map[string]any{"image": img})
	require.NoError(t, err)
	require.Len(t, out, 1)

	result := out[0].(*core.Image)
	r, g, b := result.RGB(0, 0)
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestCategoryListing(t *testing.T) {
	reg := DefaultRegistry()
	effects := reg.ListCategory("Pixl/Image/Effects")
	assert.Len(t, effects, 11)

	all := reg.ListCategory("Pixl")
	assert.Equal(t, reg.Len(), len(all))
}
