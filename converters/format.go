package converters

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/khaclbit/algorithm-visualizer/core"
)

// minReadableWidth is the narrowest vertex column in readable output.
const minReadableWidth = 8

// FormatText serializes g as "source target weight" lines. Node labels are
// written when set; edges touching missing nodes are dropped.
func FormatText(g *core.Graph, opts FormatOptions) string {
	defs := edgeDefs(g)
	if len(defs) == 0 {
		if opts.IncludeComments {
			return "# Empty graph - no edges defined\n"
		}
		return ""
	}
	if opts.SortEdges {
		slices.SortStableFunc(defs, func(a, b EdgeDef) int {
			return cmp.Or(
				strings.Compare(a.Source, b.Source),
				strings.Compare(a.Target, b.Target),
				cmp.Compare(a.Weight, b.Weight),
			)
		})
	}

	lines := make([]string, 0, len(defs)+3)
	if opts.IncludeComments {
		lines = append(lines,
			fmt.Sprintf("# Graph with %d nodes and %d edges", len(g.Nodes), len(g.Edges)),
			"# Format: source_vertex target_vertex weight",
			"",
		)
	}
	for _, d := range defs {
		w := formatWeight(d.Weight, opts.Precision)
		if !opts.Readable {
			lines = append(lines, d.Source+" "+d.Target+" "+w)
			continue
		}
		width := max(len(d.Source), len(d.Target), minReadableWidth)
		lines = append(lines, fmt.Sprintf("%-*s %-*s %s", width, d.Source, width, d.Target, w))
	}

	return strings.Join(lines, "\n")
}

func edgeDefs(g *core.Graph) []EdgeDef {
	if g == nil {
		return nil
	}
	names := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		name := n.Label
		if name == "" {
			name = n.ID
		}
		names[n.ID] = name
	}
	defs := make([]EdgeDef, 0, len(g.Edges))
	for _, e := range g.Edges {
		src, ok1 := names[e.From]
		dst, ok2 := names[e.To]
		if !ok1 || !ok2 {
			continue
		}
		defs = append(defs, EdgeDef{Source: src, Target: dst, Weight: e.Weight})
	}
	return defs
}

// formatWeight prints integers bare and other values with precision
// decimals, trailing zeros removed.
func formatWeight(w float64, precision int) string {
	if w == math.Trunc(w) && !math.IsInf(w, 0) {
		return strconv.FormatFloat(w, 'f', -1, 64)
	}
	s := strconv.FormatFloat(w, 'f', max(precision, 0), 64)
	if strings.Contains(s, ".") {
		s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	}
	return s
}
