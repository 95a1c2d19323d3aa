package textfile

import (
	"github.com/pixl-sh/pixl-nodes/core"
)

// NewLoadText builds the PixlLoadText node: it reads a text file and outputs
// its contents. A custom absolute path takes priority over a catalog
// filename. Read failures produce an empty string with a log rather than a
// node error, so a broken path never stops the graph.
func NewLoadText() core.Node {
	inputs := core.InputSpec{
		Optional: []core.Param{
			core.StringParam("text_file", ""),
			{
				Name:        "custom_path",
				Kind:        core.KindString,
				Default:     "",
				Placeholder: "Or enter absolute path (e.g., /path/to/file.txt)",
			},
		},
	}

	return core.NewFunctionNode(
		"PixlLoadText",
		core.Info{DisplayName: "Pixl Load Text", Category: "Pixl/IO"},
		inputs,
		[]core.Port{{Name: "text_content", Kind: core.KindString}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			customPath := core.TrimmedArg(args, "custom_path", "")
			textFile := core.TrimmedArg(args, "text_file", "")

			var path string
			switch {
			case customPath != "":
				path = customPath
				rc.LogDebug("load_text.custom_path", "path", path)
			case textFile != "":
				resolved, err := ResolvePath(rc.Config.TextDir, textFile)
				if err != nil {
					rc.LogWarn("load_text.bad_filename", "file", textFile, "error", err.Error())
					return []any{""}, nil
				}
				path = resolved
				rc.LogDebug("load_text.catalog_file", "file", textFile)
			default:
				rc.LogWarn("load_text.no_input")
				return []any{""}, nil
			}

			content, ok, reason := readTextFile(path)
			if !ok {
				rc.LogWarn("load_text.read_failed", "path", path, "reason", reason)
				return []any{""}, nil
			}

			rc.LogDebug("load_text.loaded", "path", path, "bytes", len(content))
			return []any{content}, nil
		},
	)
}
