package textfile

import (
	"math/rand"
	"strings"

	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/util"
)

// NewRandomLine builds the PixlRandomLine node: it loads a catalog file and
// picks one non-blank line with a seeded PRNG. The .txt extension is
// appended when the filename lacks it. All failures yield an empty string.
func NewRandomLine() core.Node {
	inputs := core.InputSpec{
		Required: []core.Param{
			{
				Name:        "file_name",
				Kind:        core.KindString,
				Default:     "",
				Placeholder: "Filename without .txt (e.g., characters)",
			},
			core.IntParam("seed", 0, 0, int(^uint(0)>>1)),
		},
	}

	return core.NewFunctionNode(
		"PixlRandomLine",
		core.Info{DisplayName: "Pixl Random Line", Category: "Pixl/Text"},
		inputs,
		[]core.Port{{Name: "random_line", Kind: core.KindString}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			name := core.TrimmedArg(args, "file_name", "")
			if name == "" {
				rc.LogWarn("random_line.no_filename")
				return []any{""}, nil
			}
			if !strings.HasSuffix(strings.ToLower(name), ".txt") {
				name += ".txt"
			}

			path, err := ResolvePath(rc.Config.TextDir, name)
			if err != nil {
				rc.LogWarn("random_line.bad_filename", "file", name, "error", err.Error())
				return []any{""}, nil
			}

			content, ok, reason := readTextFile(path)
			if !ok {
				rc.LogWarn("random_line.read_failed", "file", name, "reason", reason)
				return []any{""}, nil
			}

			lines := util.NonBlankLines(content)
			if len(lines) == 0 {
				rc.LogWarn("random_line.empty_file", "file", name)
				return []any{""}, nil
			}

			seed := core.IntArg(args, "seed", 0)
			rng := rand.New(rand.NewSource(int64(seed)))
			selected := lines[rng.Intn(len(lines))]

			rc.LogDebug("random_line.selected", "file", name, "lines", len(lines))
			return []any{selected}, nil
		},
	)
}
