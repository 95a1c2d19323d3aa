// Package upload provides the output nodes that push rendered images to
// the Pixl platform and to S3-compatible object storage. Unlike the effect
// nodes these fail hard: a lost upload should stop the graph, not pass
// silently.
package upload

import (
	"fmt"
	"time"

	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
	"github.com/pixl-sh/pixl-nodes/internal/util"
	"github.com/pixl-sh/pixl-nodes/upload"
)

// PlatformOptions configures the platform upload node.
type PlatformOptions struct {
	// Client overrides the default platform client.
	Client *upload.Client
	// Now supplies timestamps for generated filenames.
	Now func() time.Time
}

// NewUpload returns the node that compresses an image and uploads it to the
// Pixl platform. The input image is passed through unchanged so a preview
// node can be chained after it.
func NewUpload(optFns ...func(o *PlatformOptions)) core.Node {
	const name = "PixlUpload"

	opts := PlatformOptions{Now: time.Now}
	for _, fn := range optFns {
		fn(&opts)
	}

	inputs := core.InputSpec{
		Required: []core.Param{
			core.ImageParam("image"),
			core.StringParam("api_key", ""),
			core.StringParam("title", "Pixl Upload"),
		},
		Optional: []core.Param{
			func() core.Param {
				p := core.StringParam("tags", "")
				p.Placeholder = "tag1, tag2, tag3"
				return p
			}(),
			core.ChoiceParam("format", imaging.FormatJPEG, imaging.FormatPNG),
			core.IntParam("quality", 90, 1, 100),
		},
	}

	return core.NewFunctionNode(
		name,
		core.Info{DisplayName: "Pixl Upload", Category: "Pixl/Upload", OutputNode: true},
		inputs,
		[]core.Port{{Name: "image", Kind: core.KindImage}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			img := core.ImageArg(args, "image").First()
			if img == nil {
				return nil, core.NewNodeError(name, "image input is empty", "VALIDATION_ERROR")
			}

			apiKey := core.TrimmedArg(args, "api_key", "")
			title := core.TrimmedArg(args, "title", "")
			format := core.StringArg(args, "format", imaging.FormatJPEG)
			quality := core.IntArg(args, "quality", 90)

			data, err := encodeForUpload(img, format, quality)
			if err != nil {
				return nil, core.NewNodeError(name, err.Error(), "EXECUTION_ERROR")
			}

			client := opts.Client
			if client == nil {
				client = upload.NewClient(func(o *upload.Options) {
					o.BaseURL = rc.Config.APIURL
					o.Logger = rc.Logger()
				})
			}

			result, err := client.Upload(rc.Context, upload.Request{
				APIKey:      apiKey,
				Filename:    uploadFilename(title, format, opts.Now()),
				Data:        data,
				ContentType: contentType(format),
				Title:       title,
				Tags:        upload.ParseTags(core.StringArg(args, "tags", "")),
			})
			if err != nil {
				return nil, core.NewNodeError(name, err.Error(), "EXECUTION_ERROR")
			}

			rc.LogInfo("upload.platform.done", "upload_id", result.UploadID, "bytes", len(data))
			return []any{img}, nil
		},
	)
}

// uploadFilename builds sanitized_title_YYYYMMDD_HHMMSS.ext.
func uploadFilename(title, format string, now time.Time) string {
	safe := util.SanitizeFilename(title, 100)
	if safe == "" {
		safe = "pixl"
	}
	return fmt.Sprintf("%s_%s.%s", safe, now.Format("20060102_150405"), imaging.Extension(format))
}

func contentType(format string) string {
	if format == imaging.FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

func encodeForUpload(img *core.Image, format string, quality int) ([]byte, error) {
	return imaging.Encode(img, imaging.EncodeOptions{
		Format:      format,
		PNGLevel:    imaging.QualityToPNGLevel(quality),
		JPEGQuality: quality,
	})
}
