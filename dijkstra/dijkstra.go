package dijkstra

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/path"
	"github.com/khaclbit/algorithm-visualizer/step"
)

// runner is the per-call working state.
type runner struct {
	adj     *core.Adjacency
	order   []string
	rec     *step.Recorder
	dist    step.Distances
	pred    step.Predecessors
	open    []string
	visited *core.NodeSet
}

// Dijkstra computes shortest distances from start to every node of g and
// returns the recorded steps. Unreachable nodes end with +Inf distance and
// no predecessor.
func Dijkstra(g *core.Graph, start string, opts ...step.RecorderOption) ([]step.Step, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, start)
	}

	order := g.NodeIDs()
	r := &runner{
		adj:     g.Adjacency(),
		order:   order,
		rec:     step.NewRecorder(opts...),
		dist:    make(step.Distances, len(order)),
		pred:    make(step.Predecessors, len(order)),
		open:    []string{start},
		visited: core.NewNodeSet(len(order)),
	}
	for _, id := range order {
		r.dist[id] = math.Inf(1)
		r.pred[id] = ""
	}
	r.dist[start] = 0

	r.rec.Record(r.snapshot(step.Step{
		Kind:    step.KindCustom,
		Current: start,
		Comment: fmt.Sprintf("Starting Dijkstra from node %s", start),
	}))
	r.loop()
	r.rec.Record(step.Step{
		Kind:         step.KindCustom,
		Visited:      r.visited.Slice(),
		VisitedEdges: path.TreeEdges(r.pred, r.order),
		Comment:      "Dijkstra complete!",
		State:        r.state(),
	})

	return r.rec.Steps(), nil
}

func (r *runner) loop() {
	for len(r.open) > 0 {
		slices.SortStableFunc(r.open, func(a, b string) int {
			return cmp.Compare(r.dist[a], r.dist[b])
		})
		cur := r.open[0]
		r.open = r.open[1:]

		if r.visited.Has(cur) {
			continue
		}
		if math.IsInf(r.dist[cur], 1) {
			break
		}
		r.visited.Add(cur)

		r.rec.Record(r.snapshot(step.Step{
			Kind:    step.KindVisitNode,
			Current: cur,
			Comment: fmt.Sprintf("Processing node %s (distance: %s)", cur, step.FormatNumber(r.dist[cur])),
		}))

		for _, arc := range r.adj.Arcs(cur) {
			r.relax(cur, arc)
		}
	}
}

// relax examines one arc out of the node being finalized.
func (r *runner) relax(cur string, arc core.Arc) {
	nbr := arc.To
	if r.visited.Has(nbr) {
		r.rec.Record(r.snapshot(step.Step{
			Kind:           step.KindCustom,
			Current:        cur,
			HighlightEdges: step.Edge(cur, nbr),
			Rejected:       []string{nbr},
			Comment:        fmt.Sprintf("Node %s already finalized, skipping", nbr),
		}))
		return
	}

	r.rec.Record(r.snapshot(step.Step{
		Kind:           step.KindInspectEdge,
		Current:        cur,
		HighlightEdges: step.Edge(cur, nbr),
		Comment:        fmt.Sprintf("Checking edge %s → %s (weight: %s)", cur, nbr, step.FormatNumber(arc.Weight)),
	}))

	candidate := r.dist[cur] + arc.Weight
	if !(candidate < r.dist[nbr]) {
		return
	}
	prev := r.pred[nbr]
	r.dist[nbr] = candidate
	r.pred[nbr] = cur
	if !slices.Contains(r.open, nbr) {
		r.open = append(r.open, nbr)
	}

	comment := fmt.Sprintf("Discovered %s via %s, distance: %s", nbr, cur, step.FormatNumber(candidate))
	if prev != "" {
		comment = fmt.Sprintf("Found shorter path to %s via %s: %s", nbr, cur, step.FormatNumber(candidate))
	}
	r.rec.Record(r.snapshot(step.Step{
		Kind:           step.KindRelaxEdge,
		Current:        cur,
		Highlight:      step.Nodes(nbr),
		HighlightEdges: step.Edge(cur, nbr),
		Comment:        comment,
	}))
}

func (r *runner) snapshot(s step.Step) step.Step {
	s.Visited = r.visited.Slice()
	s.VisitedEdges = path.TreeEdges(r.pred, r.order)
	s.Queued = slices.Clone(r.open)
	s.State = r.state()
	return s
}

func (r *runner) state() *step.DistanceState {
	return &step.DistanceState{
		Distances:    r.dist.Clone(),
		Predecessors: r.pred.Clone(),
	}
}

// Final returns the distance state of the last step that carries one,
// normally the completion step.
func Final(steps []step.Step) (*step.DistanceState, error) {
	for i := len(steps) - 1; i >= 0; i-- {
		if st, ok := steps[i].State.(*step.DistanceState); ok {
			return st, nil
		}
	}
	return nil, ErrNoState
}
