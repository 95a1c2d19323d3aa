package imageio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
	"github.com/pixl-sh/pixl-nodes/internal/util"
)

// SaveRecord describes one file written by the save node, shaped for the
// host UI.
type SaveRecord struct {
	Filename  string `json:"filename"`
	Path      string `json:"path"`
	SizeBytes int64  `json:"sizeBytes"`
}

// NewCompressAndSave returns the output node that compresses a batch and
// writes it to the configured output directory. Filenames carry a counter
// that skips over existing files, so repeated runs never overwrite. Unlike
// the effect nodes a failed save is a hard error: silently dropping output
// files would defeat the node's purpose.
func NewCompressAndSave() core.Node {
	const name = "PixlCompressAndSave"

	inputs := core.InputSpec{
		Required: []core.Param{
			core.ImageParam("images"),
			core.StringParam("filename", "pixl"),
			core.ChoiceParam("format", imaging.FormatJPEG, imaging.FormatPNG),
			core.IntParam("quality", 90, 1, 100),
		},
	}

	return core.NewFunctionNode(
		name,
		core.Info{DisplayName: "Pixl Compress & Save", Category: "Pixl/IO", OutputNode: true},
		inputs,
		[]core.Port{{Name: "files", Kind: core.KindString}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			batch := core.ImageArg(args, "images")
			if batch.First() == nil {
				return nil, core.NewNodeError(name, "images input is empty", "VALIDATION_ERROR")
			}

			base := util.SanitizeFilename(core.TrimmedArg(args, "filename", "pixl"), 100)
			if base == "" {
				base = "pixl"
			}
			format := core.StringArg(args, "format", imaging.FormatJPEG)
			quality := core.IntArg(args, "quality", 90)

			records, err := saveBatch(rc, batch, rc.Config.OutputDir, base, format, quality)
			if err != nil {
				return nil, core.NewNodeError(name, err.Error(), "EXECUTION_ERROR")
			}

			payload, err := json.Marshal(records)
			if err != nil {
				return nil, core.NewNodeError(name, err.Error(), "EXECUTION_ERROR")
			}
			return []any{string(payload)}, nil
		},
	)
}

func saveBatch(rc *core.RunContext, batch core.ImageBatch, dir, base, format string, quality int) ([]SaveRecord, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	opts := imaging.EncodeOptions{
		Format:      format,
		PNGLevel:    imaging.QualityToPNGLevel(quality),
		JPEGQuality: quality,
	}
	ext := imaging.Extension(format)

	rc.LogInfo("save.start", "count", len(batch), "format", format, "quality", quality, "dir", dir)

	records := make([]SaveRecord, 0, len(batch))
	counter := 1
	for _, img := range batch {
		var path, filename string
		for {
			filename = fmt.Sprintf("%s_%05d.%s", base, counter, ext)
			path = filepath.Join(dir, filename)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				break
			}
			counter++
		}

		data, err := imaging.Encode(img, opts)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", filename, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("save %s: %w", filename, err)
		}

		rc.LogInfo("save.file", "filename", filename, "bytes", len(data))
		records = append(records, SaveRecord{
			Filename:  filename,
			Path:      path,
			SizeBytes: int64(len(data)),
		})
		counter++
	}

	return records, nil
}
