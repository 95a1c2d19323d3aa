// Package pixlnodes provides a high-level façade over the node pack. Most
// hosts interact with this package by:
//  1. Creating a Pack via New() (optionally overriding config, stores or logger)
//  2. Handing Pack.Registry() to the host's menu and dispatch tables
//  3. Building a RunContext per invocation and calling Node.Apply
//
// All defaults are safe for local development; production hosts typically
// supply a resolved configuration and a structured logger.
package pixlnodes

import (
	"context"

	"github.com/pixl-sh/pixl-nodes/config"
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/logging"
	"github.com/pixl-sh/pixl-nodes/nodes/dataset"
	"github.com/pixl-sh/pixl-nodes/nodes/imageblend"
	"github.com/pixl-sh/pixl-nodes/nodes/imagefx"
	"github.com/pixl-sh/pixl-nodes/nodes/imageio"
	"github.com/pixl-sh/pixl-nodes/nodes/imagetx"
	"github.com/pixl-sh/pixl-nodes/nodes/llm"
	"github.com/pixl-sh/pixl-nodes/nodes/textfile"
	"github.com/pixl-sh/pixl-nodes/nodes/upload"
	"github.com/pixl-sh/pixl-nodes/storage"
)

// Options configures the Pack instance.
type Options struct {
	// Config is the resolved pack configuration. Defaults to config.Default().
	Config *config.Config

	// State backs cross-invocation node state. Defaults to an in-memory
	// store; hosts that want persistence across restarts pass a FileStore.
	State core.StateStore

	// Logger receives structured pack events. Defaults to the no-op logger.
	Logger logging.Logger
}

// Pack aggregates the registry and the services node invocations need.
type Pack struct {
	opts     Options
	registry *core.Registry
}

// New creates a Pack with every node registered. Any unset service is
// initialized with a local default.
func New(optFns ...func(o *Options)) *Pack {
	opts := Options{
		Config: config.Default(),
		State:  storage.NewMemoryStore(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	reg := core.NewRegistry(opts.Logger)
	Register(reg)
	return &Pack{opts: opts, registry: reg}
}

// Registry returns the pack's node registry.
func (p *Pack) Registry() *core.Registry { return p.registry }

// NewRunContext builds the per-invocation context nodes receive, wired to
// the pack's configuration, state store and logger.
func (p *Pack) NewRunContext(ctx context.Context) *core.RunContext {
	return core.NewRunContext(ctx, p.opts.Config, p.opts.State, p.opts.Logger)
}

// Register adds every node in the pack to the registry.
func Register(reg *core.Registry) {
	nodes := []core.Node{
		// Dataset and text nodes.
		dataset.NewDynamicString(),
		dataset.NewConcatenateString(),
		dataset.NewTagSelector(),
		dataset.NewRoundRobin(),
		dataset.NewFormatString(),
		textfile.NewLoadText(),
		textfile.NewRandomLine(),

		// LLM nodes.
		llm.NewOpenAI(),
		llm.NewClaude(),
		llm.NewGemini(),
		llm.NewOllamaSummarizer(),

		// Image effects.
		imagefx.NewBlur(),
		imagefx.NewSharpen(),
		imagefx.NewEdgeEnhance(),
		imagefx.NewInvert(),
		imagefx.NewPosterize(),
		imagefx.NewPixelate(),
		imagefx.NewGrain(),
		imagefx.NewVignette(),
		imagefx.NewGlare(),
		imagefx.NewChromaticAberration(),
		imagefx.NewColorFilter(),

		// Geometric transforms.
		imagetx.NewCrop(),
		imagetx.NewFlip(),
		imagetx.NewRotate(),
		imagetx.NewScale(),
		imagetx.NewTranslate(),
		imagetx.NewTransform(),

		// Blending and grading.
		imageblend.NewBlend(),
		imageblend.NewLevels(),
		imageblend.NewColorAdjust(),
		imageblend.NewColorRamp(),
		imageblend.NewSplitToning(),

		// Compression, save and upload.
		imageio.NewCompressImage(),
		imageio.NewCompressAndSave(),
		upload.NewUpload(),
		upload.NewS3Upload(),
	}

	for _, n := range nodes {
		reg.Register(n)
	}
}

// DefaultRegistry returns a fresh registry with every node registered.
func DefaultRegistry() *core.Registry {
	reg := core.NewRegistry(nil)
	Register(reg)
	return reg
}
