package dataset

import (
	"fmt"

	"github.com/pixl-sh/pixl-nodes/core"
	"github.com/pixl-sh/pixl-nodes/internal/util"
	"github.com/pixl-sh/pixl-nodes/storage"
)

// NewRoundRobin builds the PixlRoundRobin node: a batch-completion cycler
// that gives each list item images_per_item executions before advancing to
// the next one. Progress survives host restarts through a cycle log file in
// the state directory; editing the list starts a fresh cycle because the log
// is keyed by the list fingerprint.
func NewRoundRobin() core.Node {
	inputs := core.InputSpec{
		Required: []core.Param{
			{
				Name:        "text_list",
				Kind:        core.KindString,
				Default:     "Item A\nItem B\nItem C",
				Multiline:   true,
				Placeholder: "Enter items (one per line)...",
			},
			core.IntParam("images_per_item", 32, 1, 1000),
			core.BoolParam("reset_trigger", false),
		},
	}

	returns := []core.Port{
		{Name: "selected_item", Kind: core.KindString},
		{Name: "progress_info", Kind: core.KindString},
		{Name: "batch_count_needed", Kind: core.KindInt},
	}

	return core.NewFunctionNode(
		"PixlRoundRobin",
		core.Info{DisplayName: "Pixl Round Robin", Category: "Pixl/Dataset"},
		inputs,
		returns,
		func(rc *core.RunContext, args map[string]any) ([]any, error) {
			textList := core.StringArg(args, "text_list", "")
			perItem := core.IntArg(args, "images_per_item", 32)

			items := util.NonBlankLines(textList)
			if len(items) == 0 {
				rc.LogWarn("round_robin.empty_list")
				return []any{"", "No items", 0}, nil
			}

			total := len(items) * perItem
			fingerprint := storage.Fingerprint(textList)
			log := storage.NewCycleLog(rc.Config.StateDir)

			if core.BoolArg(args, "reset_trigger", false) {
				if err := log.Reset(fingerprint); err != nil {
					return nil, fmt.Errorf("reset cycle state: %w", err)
				}
				rc.LogInfo("round_robin.reset", "items", len(items), "total", total)
			}

			index, count, err := log.Next(fingerprint, len(items), perItem)
			if err != nil {
				return nil, fmt.Errorf("advance cycle state: %w", err)
			}

			item := items[index]
			global := index*perItem + count
			progress := fmt.Sprintf("%s: %d/%d | Total: %d/%d", item, count, perItem, global, total)

			rc.LogInfo("round_robin.progress", "progress", progress)
			if count >= perItem && index == len(items)-1 {
				rc.LogInfo("round_robin.cycle_complete", "items", len(items))
			}

			return []any{item, progress, total}, nil
		},
	)
}
