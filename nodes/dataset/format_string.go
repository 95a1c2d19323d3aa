package dataset

import (
	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/util"
)

// NewFormatString builds the PixlFormatString node: it renders a Go
// text/template against the string inputs a through d, exposed as {{.a}} and
// so on, with upper/lower/title/default/join helpers available. A template
// that fails to parse or execute falls back to the raw template text so the
// graph keeps producing output.
func NewFormatString() core.Node {
	inputs := core.InputSpec{
		Required: []core.Param{
			{
				Name:        "template",
				Kind:        core.KindString,
				Default:     "{{.a}}",
				Multiline:   true,
				Placeholder: "{{.a}}, {{upper .b}}",
			},
		},
		Optional: []core.Param{
			{Name: "a", Kind: core.KindString, Default: "", ForceInput: true},
			{Name: "b", Kind: core.KindString, Default: "", ForceInput: true},
			{Name: "c", Kind: core.KindString, Default: "", ForceInput: true},
			{Name: "d", Kind: core.KindString, Default: "", ForceInput: true},
		},
	}

	return core.NewFunctionNode(
		"PixlFormatString",
		core.Info{DisplayName: "Pixl Format String", Category: "Pixl/Dataset"},
		inputs,
		[]core.Port{{Name: "formatted_string", Kind: core.KindString}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			tmpl := core.StringArg(args, "template", "")
			state := map[string]any{
				"a": core.StringArg(args, "a", ""),
				"b": core.StringArg(args, "b", ""),
				"c": core.StringArg(args, "c", ""),
				"d": core.StringArg(args, "d", ""),
			}

			rendered, err := util.RenderTemplate(tmpl, state)
			if err != nil {
				rc.LogError("format_string.render_failed", "error", err.Error())
				return []any{tmpl}, nil
			}

			return []any{rendered}, nil
		},
	)
}
