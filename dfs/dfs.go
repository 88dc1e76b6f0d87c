package dfs

import (
	"fmt"
	"slices"

	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/step"
)

// dfsWalker holds the mutable state of one traversal.
type dfsWalker struct {
	adj          *core.Adjacency
	rec          *step.Recorder
	stack        []string
	visited      *core.NodeSet
	visitedEdges []step.EdgeRef
	pred         step.Predecessors
}

// DFS runs iterative depth-first search on g from start and returns the
// recorded steps.
func DFS(g *core.Graph, start string, opts ...step.RecorderOption) ([]step.Step, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, start)
	}

	n := len(g.Nodes)
	w := &dfsWalker{
		adj:     g.Adjacency(),
		rec:     step.NewRecorder(opts...),
		stack:   make([]string, 0, n),
		visited: core.NewNodeSet(n),
		pred:    make(step.Predecessors, n),
	}

	w.pred[start] = ""
	w.stack = append(w.stack, start)
	w.rec.Record(step.Step{
		Kind:    step.KindCustom,
		Current: start,
		Queued:  []string{start},
		Comment: fmt.Sprintf("Starting DFS from node %s", start),
		State:   w.state(),
	})

	for len(w.stack) > 0 {
		cur := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.expand(cur)
	}

	w.rec.Record(step.Step{
		Kind:         step.KindCustom,
		Visited:      w.visited.Slice(),
		VisitedEdges: slices.Clone(w.visitedEdges),
		Comment:      "DFS complete!",
		State:        &step.TraversalState{Predecessors: w.pred.Clone()},
	})

	return w.rec.Steps(), nil
}

// expand visits cur unless it was reached before, then pushes its
// unvisited neighbors in reverse order.
func (w *dfsWalker) expand(cur string) {
	if w.visited.Has(cur) {
		w.rec.Record(w.snapshot(step.Step{
			Kind:    step.KindCustom,
			Comment: fmt.Sprintf("Node %s already visited, skipping", cur),
		}))
		return
	}

	w.visited.Add(cur)
	w.rec.Record(w.snapshot(step.Step{
		Kind:    step.KindVisitNode,
		Current: cur,
		Comment: fmt.Sprintf("Visiting node %s", cur),
	}))

	nbrs := w.adj.Neighbors(cur)
	slices.Reverse(nbrs)
	for _, nbr := range nbrs {
		w.rec.Record(w.snapshot(step.Step{
			Kind:           step.KindInspectEdge,
			Current:        cur,
			HighlightEdges: step.Edge(cur, nbr),
			Comment:        fmt.Sprintf("Checking edge %s → %s", cur, nbr),
		}))
		if w.visited.Has(nbr) {
			continue
		}

		w.stack = append(w.stack, nbr)
		if _, seen := w.pred[nbr]; !seen {
			w.pred[nbr] = cur
		}
		w.visitedEdges = append(w.visitedEdges, step.EdgeRef{From: cur, To: nbr})

		w.rec.Record(w.snapshot(step.Step{
			Kind:           step.KindDiscoverNode,
			Current:        cur,
			Highlight:      step.Nodes(nbr),
			HighlightEdges: step.Edge(cur, nbr),
			Comment:        fmt.Sprintf("Pushed %s onto stack", nbr),
		}))
	}
}

func (w *dfsWalker) snapshot(s step.Step) step.Step {
	s.Visited = w.visited.Slice()
	s.VisitedEdges = slices.Clone(w.visitedEdges)
	s.Queued = slices.Clone(w.stack)
	s.State = w.state()
	return s
}

func (w *dfsWalker) state() *step.TraversalState {
	return &step.TraversalState{
		Stack:        slices.Clone(w.stack),
		Predecessors: w.pred.Clone(),
	}
}
