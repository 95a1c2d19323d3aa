package upload

import (
	"net/http"
	"strings"

	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/imaging"
	"github.com/pixl-sh/pixl-nodes/storage/s3"
)

// S3Options configures the S3 upload node.
type S3Options struct {
	// HTTPClient overrides the client used for the PUT request.
	HTTPClient *http.Client
}

// NewS3Upload returns the node that compresses an image and PUTs it to an
// S3-compatible bucket. Works with AWS S3 and path-style services like R2,
// Spaces and MinIO via the endpoint_url input. Outputs the pass-through
// image and the public object URL.
func NewS3Upload(optFns ...func(o *S3Options)) core.Node {
	const name = "PixlS3Upload"

	var opts S3Options
	for _, fn := range optFns {
		fn(&opts)
	}

	inputs := core.InputSpec{
		Required: []core.Param{
			core.ImageParam("image"),
			func() core.Param {
				p := core.StringParam("bucket_name", "")
				p.Placeholder = "your-bucket-name"
				return p
			}(),
			func() core.Param {
				p := core.StringParam("object_key", "")
				p.Placeholder = "images/output.jpg"
				return p
			}(),
		},
		Optional: []core.Param{
			func() core.Param {
				p := core.StringParam("access_key_id", "")
				p.Placeholder = "Use " + s3.EnvAccessKey + " env var instead"
				return p
			}(),
			func() core.Param {
				p := core.StringParam("secret_access_key", "")
				p.Placeholder = "Use " + s3.EnvSecretKey + " env var instead"
				return p
			}(),
			core.StringParam("region", "us-east-1"),
			func() core.Param {
				p := core.StringParam("endpoint_url", "")
				p.Placeholder = "Leave empty for AWS S3"
				return p
			}(),
			core.ChoiceParam("format", imaging.FormatJPEG, imaging.FormatPNG),
			core.IntParam("quality", 90, 1, 100),
			core.ChoiceParam("acl", "private", "public-read", "public-read-write", "authenticated-read"),
		},
	}

	return core.NewFunctionNode(
		name,
		core.Info{DisplayName: "Pixl S3 Upload", Category: "Pixl/Upload", OutputNode: true},
		inputs,
		[]core.Port{
			{Name: "image", Kind: core.KindImage},
			{Name: "url", Kind: core.KindString},
		},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			img := core.ImageArg(args, "image").First()
			if img == nil {
				return nil, core.NewNodeError(name, "image input is empty", "VALIDATION_ERROR")
			}

			bucket := core.TrimmedArg(args, "bucket_name", "")
			if bucket == "" {
				return nil, core.NewNodeError(name, "bucket name is required", "VALIDATION_ERROR")
			}
			key := core.TrimmedArg(args, "object_key", "")
			if key == "" {
				return nil, core.NewNodeError(name, "object key is required", "VALIDATION_ERROR")
			}

			format := core.StringArg(args, "format", imaging.FormatJPEG)
			key = withExtension(key, format)

			creds, err := s3.ResolveCredentials(rc.Logger(),
				core.TrimmedArg(args, "access_key_id", ""),
				core.TrimmedArg(args, "secret_access_key", ""))
			if err != nil {
				return nil, core.NewNodeError(name, err.Error(), "VALIDATION_ERROR")
			}

			data, err := encodeForUpload(img, format, core.IntArg(args, "quality", 90))
			if err != nil {
				return nil, core.NewNodeError(name, err.Error(), "EXECUTION_ERROR")
			}

			cfg := s3.Config{
				Bucket:   bucket,
				Region:   core.TrimmedArg(args, "region", "us-east-1"),
				Endpoint: core.TrimmedArg(args, "endpoint_url", ""),
				ACL:      core.StringArg(args, "acl", "private"),
			}
			uploader, err := s3.NewUploader(cfg, creds, func(o *s3.UploaderOptions) {
				if opts.HTTPClient != nil {
					o.HTTPClient = opts.HTTPClient
				}
				o.Logger = rc.Logger()
			})
			if err != nil {
				return nil, core.NewNodeError(name, err.Error(), "VALIDATION_ERROR")
			}

			objectURL, err := uploader.Put(rc.Context, key, data, contentType(format))
			if err != nil {
				return nil, core.NewNodeError(name, err.Error(), "EXECUTION_ERROR")
			}

			rc.LogInfo("upload.s3.done", "bucket", bucket, "key", key, "bytes", len(data))
			return []any{img, objectURL}, nil
		},
	)
}

// withExtension appends the format extension when the key's last path
// segment has none.
func withExtension(key, format string) string {
	last := key
	if i := strings.LastIndex(key, "/"); i >= 0 {
		last = key[i+1:]
	}
	if strings.Contains(last, ".") {
		return key
	}
	return key + "." + imaging.Extension(format)
}
