package bfs

import (
	"fmt"
	"math"
	"slices"

	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/step"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	adj          *core.Adjacency
	rec          *step.Recorder
	queue        []string
	visited      *core.NodeSet
	visitedEdges []step.EdgeRef
	dist         step.Distances
	pred         step.Predecessors
}

// BFS runs breadth-first search on g from start and returns the recorded
// steps. The graph is only read.
func BFS(g *core.Graph, start string, opts ...step.RecorderOption) ([]step.Step, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, start)
	}

	n := len(g.Nodes)
	w := &walker{
		adj:     g.Adjacency(),
		rec:     step.NewRecorder(opts...),
		queue:   make([]string, 0, n),
		visited: core.NewNodeSet(n),
		dist:    make(step.Distances, n),
		pred:    make(step.Predecessors, n),
	}
	for _, id := range g.NodeIDs() {
		w.dist[id] = math.Inf(1)
	}
	w.init(start)
	w.loop()
	w.finish()

	return w.rec.Steps(), nil
}

// init seeds the queue with start and records the bootstrap step.
func (w *walker) init(start string) {
	w.dist[start] = 0
	w.pred[start] = ""
	w.visited.Add(start)
	w.queue = append(w.queue, start)

	w.rec.Record(step.Step{
		Kind:    step.KindCustom,
		Current: start,
		Queued:  []string{start},
		Comment: fmt.Sprintf("Starting BFS from node %s", start),
		State:   w.state(),
	})
}

// loop dequeues until the frontier is empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]

		w.rec.Record(w.snapshot(step.Step{
			Kind:    step.KindVisitNode,
			Current: cur,
			Comment: fmt.Sprintf("Visiting node %s (distance: %s)", cur, step.FormatNumber(w.dist[cur])),
		}))

		for _, nbr := range w.adj.Neighbors(cur) {
			w.inspect(cur, nbr)
		}
	}
}

// inspect examines cur→nbr and either discovers nbr or rejects it.
func (w *walker) inspect(cur, nbr string) {
	w.rec.Record(w.snapshot(step.Step{
		Kind:           step.KindInspectEdge,
		Current:        cur,
		HighlightEdges: step.Edge(cur, nbr),
		Comment:        fmt.Sprintf("Checking edge %s → %s", cur, nbr),
	}))

	if w.visited.Has(nbr) {
		w.rec.Record(w.snapshot(step.Step{
			Kind:           step.KindCustom,
			Current:        cur,
			HighlightEdges: step.Edge(cur, nbr),
			Rejected:       []string{nbr},
			Comment:        fmt.Sprintf("Node %s already visited, skipping", nbr),
		}))
		return
	}

	w.visited.Add(nbr)
	w.queue = append(w.queue, nbr)
	w.dist[nbr] = w.dist[cur] + 1
	w.pred[nbr] = cur
	w.visitedEdges = append(w.visitedEdges, step.EdgeRef{From: cur, To: nbr})

	w.rec.Record(w.snapshot(step.Step{
		Kind:           step.KindDiscoverNode,
		Current:        cur,
		Highlight:      step.Nodes(nbr),
		HighlightEdges: step.Edge(cur, nbr),
		Comment:        fmt.Sprintf("Discovered %s, distance: %s", nbr, step.FormatNumber(w.dist[nbr])),
	}))
}

// finish records the completion step with an empty frontier.
func (w *walker) finish() {
	w.rec.Record(step.Step{
		Kind:         step.KindCustom,
		Visited:      w.visited.Slice(),
		VisitedEdges: slices.Clone(w.visitedEdges),
		Comment:      "BFS complete!",
		State: &step.TraversalState{
			Distances:    w.dist.Clone(),
			Predecessors: w.pred.Clone(),
		},
	})
}

// snapshot fills the shared envelope fields of s from the current state.
func (w *walker) snapshot(s step.Step) step.Step {
	s.Visited = w.visited.Slice()
	s.VisitedEdges = slices.Clone(w.visitedEdges)
	s.Queued = slices.Clone(w.queue)
	s.State = w.state()
	return s
}

func (w *walker) state() *step.TraversalState {
	return &step.TraversalState{
		Queue:        slices.Clone(w.queue),
		Distances:    w.dist.Clone(),
		Predecessors: w.pred.Clone(),
	}
}
