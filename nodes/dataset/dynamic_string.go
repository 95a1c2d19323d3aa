package dataset

import (
	"math/rand"

	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/util"
)

// NewDynamicString builds the PixlDynamicString node: it picks one line from
// a multiline list using a seeded PRNG, so the same seed always selects the
// same line.
func NewDynamicString() core.Node {
	inputs := core.InputSpec{
		Required: []core.Param{
			{
				Name:        "text_list",
				Kind:        core.KindString,
				Default:     "ducks\ndogs\ncats\nwhales",
				Multiline:   true,
				Placeholder: "Enter items separated by new lines...",
			},
			core.IntParam("seed", 0, 0, int(^uint(0)>>1)),
		},
	}

	return core.NewFunctionNode(
		"PixlDynamicString",
		core.Info{DisplayName: "Pixl Dynamic String", Category: "Pixl/Dataset"},
		inputs,
		[]core.Port{{Name: "selected_string", Kind: core.KindString}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			lines := util.NonBlankLines(core.StringArg(args, "text_list", ""))
			if len(lines) == 0 {
				rc.LogWarn("dynamic_string.empty_list")
				return []any{""}, nil
			}

			seed := core.IntArg(args, "seed", 0)
			rng := rand.New(rand.NewSource(int64(seed)))
			choice := lines[rng.Intn(len(lines))]

			rc.LogDebug("dynamic_string.selected", "choice", choice, "seed", seed)
			return []any{choice}, nil
		},
	)
}
