package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCheckPasses(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runCheck(&buf))

	out := buf.String()
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "total: 37 node(s)")
	assert.Contains(t, out, "Pixl/Image/Effects")
}

func TestRunListAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runList(&buf, ""))

	out := buf.String()
	assert.Contains(t, out, "PixlBlur")
	assert.Contains(t, out, "Pixl Blur")
	assert.Contains(t, out, "PixlS3Upload")
}

func TestRunListCategory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runList(&buf, "Pixl/Image/Transform"))

	out := buf.String()
	assert.Contains(t, out, "PixlRotate")
	assert.NotContains(t, out, "PixlBlur")

	lines := strings.Count(strings.TrimSpace(out), "\n") + 1
	assert.Equal(t, 6, lines)
}

func TestRunListUnknownCategory(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, runList(&buf, "Nope"))
}

func TestCLICommandsWired(t *testing.T) {
	root := rootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"list", "--category", "Pixl/IO"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "PixlCompressImage")
}
