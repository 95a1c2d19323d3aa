package dataset

import (
	"regexp"
	"strings"

	"github.com/pixl-sh/pixl-nodes/core"
)

const defaultPresets = "[Superman]\nmovie, superhero, dc, comic, blue, red\n\n" +
	"[Batman]\ndark, knight, gotham, rich, black\n\n" +
	"[Wonder Woman]\namazon, warrior, princess, tiara"

var sectionRe = regexp.MustCompile(`^\[(.+)\]$`)

// NewTagSelector builds the PixlTagSelector node: a trigger word to tag set
// lookup. Presets use INI-style sections ([Trigger] followed by tag lines) or
// the legacy "Trigger: tags" form; matching is case-insensitive.
func NewTagSelector() core.Node {
	inputs := core.InputSpec{
		Required: []core.Param{
			{Name: "trigger_word", Kind: core.KindString, Default: "", ForceInput: true},
			{
				Name:        "presets",
				Kind:        core.KindString,
				Default:     defaultPresets,
				Multiline:   true,
				Placeholder: "[TriggerWord]\ntags, separated, by, commas",
			},
		},
		Optional: []core.Param{core.StringParam("default_value", "")},
	}

	return core.NewFunctionNode(
		"PixlTagSelector",
		core.Info{DisplayName: "Pixl Tag Selector", Category: "Pixl/Dataset"},
		inputs,
		[]core.Port{{Name: "selected_tags", Kind: core.KindString}},
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			trigger := strings.ToLower(core.TrimmedArg(args, "trigger_word", ""))
			fallback := core.StringArg(args, "default_value", "")

			if trigger == "" {
				rc.LogDebug("tag_selector.no_trigger")
				return []any{fallback}, nil
			}

			presets := parsePresets(core.StringArg(args, "presets", ""))
			if tags, ok := presets[trigger]; ok {
				rc.LogDebug("tag_selector.matched", "trigger", trigger)
				return []any{tags}, nil
			}

			rc.LogDebug("tag_selector.miss", "trigger", trigger)
			return []any{fallback}, nil
		},
	)
}

// parsePresets maps lowercase trigger words to tag strings. Section format
// wins when any [header] line is present; multi-line section bodies
// accumulate with ", ". Without sections each "Key: value" line is an entry.
func parsePresets(presets string) map[string]string {
	out := map[string]string{}
	lines := strings.Split(strings.ReplaceAll(presets, "\r\n", "\n"), "\n")

	hasSections := false
	for _, line := range lines {
		if sectionRe.MatchString(strings.TrimSpace(line)) {
			hasSections = true
			break
		}
	}

	if hasSections {
		section := ""
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if m := sectionRe.FindStringSubmatch(line); m != nil {
				section = strings.ToLower(strings.TrimSpace(m[1]))
				continue
			}
			if section == "" {
				continue
			}
			if existing, ok := out[section]; ok {
				out[section] = existing + ", " + line
			} else {
				out[section] = line
			}
		}
		return out
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" || !strings.Contains(line, ":") {
			continue
		}
		key, value, _ := strings.Cut(line, ":")
		out[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return out
}
