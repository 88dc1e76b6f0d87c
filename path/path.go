// Package path reconstructs concrete node paths from the predecessor maps the
// shortest-path algorithms record, and derives the edge lists and costs the
// rendering layer draws.
package path

import (
	"errors"
	"fmt"
	"slices"

	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/step"
)

// Sentinel errors for path reconstruction.
var (
	// ErrUnreachable is returned when the target has no predecessor chain to the start.
	ErrUnreachable = errors.New("path: target unreachable")

	// ErrCycle is returned when a predecessor chain loops back on itself.
	ErrCycle = errors.New("path: predecessor cycle")

	// ErrMissingEdge is returned by Cost when consecutive path nodes are not adjacent.
	ErrMissingEdge = errors.New("path: no edge between consecutive nodes")
)

// FromPredecessors walks pred from target back to a root (a node whose
// predecessor is "") and returns the root→target path.
//
// The walk is capped at len(pred)+1 hops, so an inconsistent map yields
// ErrCycle instead of looping. A target absent from pred is ErrUnreachable.
func FromPredecessors(pred step.Predecessors, target string) ([]string, error) {
	if _, ok := pred[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, target)
	}
	rev := []string{target}
	for cur := pred[target]; cur != ""; cur = pred[cur] {
		if len(rev) > len(pred) {
			return nil, fmt.Errorf("%w: at %q", ErrCycle, cur)
		}
		rev = append(rev, cur)
	}
	slices.Reverse(rev)
	return rev, nil
}

// To is FromPredecessors plus a check that the path starts at start.
func To(pred step.Predecessors, start, target string) ([]string, error) {
	p, err := FromPredecessors(pred, target)
	if err != nil {
		return nil, err
	}
	if p[0] != start {
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, target, start)
	}
	return p, nil
}

// Edges turns a node path into consecutive edge pointers.
func Edges(p []string) []step.EdgeRef {
	if len(p) < 2 {
		return nil
	}
	out := make([]step.EdgeRef, 0, len(p)-1)
	for i := 0; i+1 < len(p); i++ {
		out = append(out, step.EdgeRef{From: p[i], To: p[i+1]})
	}
	return out
}

// TreeEdges lists pred→node for every node with a predecessor, in the given
// node order. It is the shortest-path tree as currently known.
func TreeEdges(pred step.Predecessors, order []string) []step.EdgeRef {
	out := make([]step.EdgeRef, 0, len(pred))
	for _, id := range order {
		if p := pred[id]; p != "" {
			out = append(out, step.EdgeRef{From: p, To: id})
		}
	}
	return out
}

// Cost sums the cheapest traversal weight between each consecutive pair of
// p under g's direction policy. An empty or single-node path costs 0.
func Cost(g *core.Graph, p []string) (float64, error) {
	adj := g.Adjacency()
	var total float64
	for i := 0; i+1 < len(p); i++ {
		best, found := 0.0, false
		for _, arc := range adj.Arcs(p[i]) {
			if arc.To == p[i+1] && (!found || arc.Weight < best) {
				best, found = arc.Weight, true
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %s→%s", ErrMissingEdge, p[i], p[i+1])
		}
		total += best
	}
	return total, nil
}
