package dataset

import (
	"strings"

	"github.com/pixl-sh/pixl-nodes/core"
)

// textSlots are the optional concatenation inputs, in join order.
var textSlots = []string{
	"text_a", "text_b", "text_c", "text_d", "text_e",
	"text_f", "text_g", "text_h", "text_i", "text_j",
}

// NewConcatenateString builds the PixlConcatenateString node: it joins up to
// ten optional string inputs with a delimiter, skipping absent and empty
// values.
func NewConcatenateString() core.Node {
	optional := make([]core.Param, 0, len(textSlots))
	for _, slot := range textSlots {
		optional = append(optional, core.Param{
			Name:       slot,
			Kind:       core.KindString,
			Multiline:  true,
			ForceInput: true,
		})
	}

	inputs := core.InputSpec{
		Required: []core.Param{core.StringParam("delimiter", " ")},
		Optional: optional,
	}

	return core.NewFunctionNode(
		"PixlConcatenateString",
		core.Info{DisplayName: "Pixl Concatenate String", Category: "Pixl/Dataset"},
		inputs,
		[]core.Port{{Name: "concatenated_string", Kind: core.KindString}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			delimiter := core.StringArg(args, "delimiter", " ")

			parts := make([]string, 0, len(textSlots))
			for _, slot := range textSlots {
				if value := core.StringArg(args, slot, ""); value != "" {
					parts = append(parts, value)
				}
			}

			if len(parts) == 0 {
				return []any{""}, nil
			}

			result := strings.Join(parts, delimiter)
			rc.LogDebug("concatenate.joined", "inputs", len(parts), "length", len(result))
			return []any{result}, nil
		},
	)
}
