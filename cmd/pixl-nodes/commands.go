package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	pixlnodes "github.com/pixl-sh/pixl-nodes"
	"github.com/pixl-sh/pixl-nodes/core"
)

// expectedNodes is the size of the complete pack; check fails when a node
// fails to register.
const expectedNodes = 37

func runCheck(w io.Writer) error {
	reg := pixlnodes.DefaultRegistry()

	var problems []string
	categories := map[string]int{}
	for _, n := range reg.List() {
		categories[n.Info().Category]++
		problems = append(problems, checkNode(n)...)
	}

	names := make([]string, 0, len(categories))
	for cat := range categories {
		names = append(names, cat)
	}
	sort.Strings(names)
	for _, cat := range names {
		fmt.Fprintf(w, "%-24s %d\n", cat, categories[cat])
	}
	fmt.Fprintf(w, "total: %d node(s)\n", reg.Len())

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(w, "problem:", p)
		}
		return fmt.Errorf("%d declaration problem(s)", len(problems))
	}
	if reg.Len() != expectedNodes {
		return fmt.Errorf("expected %d nodes, registry has %d", expectedNodes, reg.Len())
	}

	fmt.Fprintln(w, "ok")
	return nil
}

func checkNode(n core.Node) []string {
	var problems []string
	name := n.Name()

	if n.Info().DisplayName == "" {
		problems = append(problems, name+": empty display name")
	}
	if n.Info().Category == "" {
		problems = append(problems, name+": empty category")
	}
	if len(n.Returns()) == 0 {
		problems = append(problems, name+": no declared outputs")
	}
	for _, port := range n.Returns() {
		if port.Name == "" || port.Kind == "" {
			problems = append(problems, name+": incomplete output port")
		}
	}

	spec := n.InputSpec()
	seen := map[string]bool{}
	for _, p := range append(spec.Required, spec.Optional...) {
		if p.Name == "" {
			problems = append(problems, name+": unnamed parameter")
			continue
		}
		if seen[p.Name] {
			problems = append(problems, name+": duplicate parameter "+p.Name)
		}
		seen[p.Name] = true
		if p.Kind == "" {
			problems = append(problems, name+": parameter "+p.Name+" has no kind")
		}
	}
	return problems
}

func runList(w io.Writer, category string) error {
	reg := pixlnodes.DefaultRegistry()

	nodes := reg.List()
	if category != "" {
		nodes = reg.ListCategory(category)
	}
	if len(nodes) == 0 {
		return fmt.Errorf("no nodes under category %q", category)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, n := range nodes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n.Name(), n.Info().DisplayName, n.Info().Category)
	}
	return tw.Flush()
}
