package imageio

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
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
	cfg.OutputDir = t.TempDir()
	return core.NewRunContext(context.Background(), cfg, nil, logging.NoOpLogger{})
}

func solidImage(w, h int, r, g, b float32) *core.Image {
	img := core.NewImage(w, h)
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
	}
	return img
}

func TestCompressImagePNGRoundTrip(t *testing.T) {
	img := solidImage(8, 8, 0.2, 0.5, 0.8)
	out, err := NewCompressImage().Apply(newTestContext(t), map[string]any{
		"image": img, "format": "PNG", "preset": "High Quality",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	result, ok := out[0].(*core.Image)
	require.True(t, ok)
	assert.Equal(t, 8, result.Width)
	assert.Equal(t, 8, result.Height)
	// PNG is lossless modulo 8-bit quantization.
	r, g, b := result.RGB(4, 4)
	assert.InDelta(t, 0.2, r, 1.0/255)
	assert.InDelta(t, 0.5, g, 1.0/255)
	assert.InDelta(t, 0.8, b, 1.0/255)
}

func TestCompressImageJPEGKeepsDimensions(t *testing.T) {
	img := solidImage(16, 8, 0.4, 0.4, 0.4)
	out, err := NewCompressImage().Apply(newTestContext(t), map[string]any{
		"image": img, "format": "JPEG", "preset": "Custom", "quality": 50,
	})
	require.NoError(t, err)

	result := out[0].(*core.Image)
	assert.Equal(t, 16, result.Width)
	assert.Equal(t, 8, result.Height)
}

func TestCompressImageMissingImage(t *testing.T) {
	_, err := NewCompressImage().Apply(newTestContext(t), map[string]any{
		"format": "PNG", "preset": "Balanced",
	})
	require.Error(t, err)

	var nodeErr *core.NodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, "VALIDATION_ERROR", nodeErr.Code)
}

func TestCompressAndSaveWritesFiles(t *testing.T) {
	rc := newTestContext(t)
	batch := core.ImageBatch{
		solidImage(4, 4, 0.1, 0.2, 0.3),
		solidImage(4, 4, 0.9, 0.8, 0.7),
	}

	out, err := NewCompressAndSave().Apply(rc, map[string]any{
		"images": batch, "filename": "render", "format": "PNG", "quality": 90,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	var records []SaveRecord
	require.NoError(t, json.Unmarshal([]byte(out[0].(string)), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "render_00001.png", records[0].Filename)
	assert.Equal(t, "render_00002.png", records[1].Filename)

	for _, rec := range records {
		info, err := os.Stat(rec.Path)
		require.NoError(t, err)
		assert.Equal(t, rec.SizeBytes, info.Size())
		assert.Greater(t, rec.SizeBytes, int64(0))
	}
}

func TestCompressAndSaveSkipsExistingFiles(t *testing.T) {
	rc := newTestContext(t)
	existing := filepath.Join(rc.Config.OutputDir, "render_00001.jpg")
	require.NoError(t, os.WriteFile(existing, []byte("occupied"), 0o644))

	out, err := NewCompressAndSave().Apply(rc, map[string]any{
		"images": solidImage(4, 4, 0.5, 0.5, 0.5), "filename": "render",
		"format": "JPEG", "quality": 90,
	})
	require.NoError(t, err)

	var records []SaveRecord
	require.NoError(t, json.Unmarshal([]byte(out[0].(string)), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "render_00002.jpg", records[0].Filename)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "occupied", string(data))
}

func TestCompressAndSaveSanitizesFilename(t *testing.T) {
	rc := newTestContext(t)
	out, err := NewCompressAndSave().Apply(rc, map[string]any{
		"images": solidImage(2, 2, 0.5, 0.5, 0.5), "filename": "my render!?",
		"format": "PNG", "quality": 90,
	})
	require.NoError(t, err)

	var records []SaveRecord
	require.NoError(t, json.Unmarshal([]byte(out[0].(string)), &records))
	assert.Equal(t, "my_render_00001.png", records[0].Filename)
}

func TestCompressAndSaveFailureIsHardError(t *testing.T) {
	rc := newTestContext(t)
	// Point the output directory at a regular file so MkdirAll fails.
	blocker := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	rc.Config.OutputDir = blocker

	_, err := NewCompressAndSave().Apply(rc, map[string]any{
		"images": solidImage(2, 2, 0.5, 0.5, 0.5), "filename": "render",
		"format": "PNG", "quality": 90,
	})
	require.Error(t, err)

	var nodeErr *core.NodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, "EXECUTION_ERROR", nodeErr.Code)
}
