package astar

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/path"
	"github.com/khaclbit/algorithm-visualizer/step"
)

// search is the working state of one A* call.
type search struct {
	adj    *core.Adjacency
	order  []string
	rec    *step.Recorder
	h      step.Distances
	g      step.Distances
	pred   step.Predecessors
	open   []openEntry
	closed *core.NodeSet
}

// AStar searches for the cheapest path from start to target.
func AStar(g *core.Graph, start, target string, opts ...step.RecorderOption) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	rec := step.NewRecorder(opts...)

	if !g.HasNode(start) || !g.HasNode(target) {
		rec.Record(step.Step{
			Kind:    step.KindCustom,
			Comment: "Error: Start or target node not found in graph",
		})
		return Result{Steps: rec.Steps(), Path: []string{}, TotalCost: math.Inf(1)}, nil
	}
	if start == target {
		rec.Record(step.Step{
			Kind:      step.KindCustom,
			Highlight: step.Nodes(start),
			Visited:   []string{start},
			Comment:   fmt.Sprintf("Start equals target. Path found: [%s]", start),
		})
		return Result{Steps: rec.Steps(), PathFound: true, Path: []string{start}, VisitedCount: 1}, nil
	}

	order := g.NodeIDs()
	s := &search{
		adj:    g.Adjacency(),
		order:  order,
		rec:    rec,
		h:      make(step.Distances, len(order)),
		g:      make(step.Distances, len(order)),
		pred:   make(step.Predecessors, len(order)),
		closed: core.NewNodeSet(len(order)),
	}
	for _, n := range g.Nodes {
		h, _ := n.Heuristic()
		if !core.ValidWeight(h) {
			h = 0
		}
		s.h[n.ID] = h
		s.g[n.ID] = math.Inf(1)
		s.pred[n.ID] = ""
	}

	return s.run(start, target), nil
}

func (s *search) run(start, target string) Result {
	s.g[start] = 0
	s.open = append(s.open, openEntry{id: start, h: s.h[start], f: s.h[start]})
	s.rec.Record(step.Step{
		Kind:    step.KindCustom,
		Current: start,
		Queued:  []string{start},
		Comment: fmt.Sprintf("Starting A* from %s to %s. h(%s)=%s", start, target, start, num(s.h[start])),
		State:   s.state(),
	})

	for len(s.open) > 0 {
		idx := s.best()
		cur := s.open[idx]

		if cur.id == target {
			p, err := path.To(s.pred, start, target)
			if err != nil {
				p = []string{target}
			}
			s.rec.Record(step.Step{
				Kind:           step.KindCustom,
				Highlight:      step.Nodes(p...),
				HighlightEdges: step.EdgeHighlight{Edges: path.Edges(p)},
				Visited:        s.closed.Slice(),
				VisitedEdges:   path.TreeEdges(s.pred, s.order),
				Queued:         s.openIDs(),
				Comment:        fmt.Sprintf("🎯 Target reached! Path: %s. Total cost: %s", strings.Join(p, " → "), num(cur.g)),
				State:          s.state(),
			})
			return Result{
				Steps:        s.rec.Steps(),
				PathFound:    true,
				Path:         p,
				TotalCost:    cur.g,
				VisitedCount: s.closed.Len() + 1,
			}
		}

		s.open = slices.Delete(s.open, idx, idx+1)
		s.closed.Add(cur.id)
		s.rec.Record(s.snapshot(step.Step{
			Kind:    step.KindVisitNode,
			Current: cur.id,
			Comment: fmt.Sprintf("Evaluating %s: g=%s, h=%s, f=%s", cur.id, num(cur.g), num(cur.h), num(cur.f)),
		}))

		for _, arc := range s.adj.Arcs(cur.id) {
			s.expand(cur.id, arc)
		}
	}

	s.rec.Record(step.Step{
		Kind:    step.KindCustom,
		Visited: s.closed.Slice(),
		Comment: fmt.Sprintf("❌ No path found from %s to %s", start, target),
		State:   s.state(),
	})
	return Result{
		Steps:        s.rec.Steps(),
		Path:         []string{},
		TotalCost:    math.Inf(1),
		VisitedCount: s.closed.Len(),
	}
}

// expand relaxes one arc out of the node just closed.
func (s *search) expand(cur string, arc core.Arc) {
	nbr := arc.To
	if s.closed.Has(nbr) {
		s.rec.Record(s.snapshot(step.Step{
			Kind:           step.KindCustom,
			Current:        cur,
			HighlightEdges: step.Edge(cur, nbr),
			Rejected:       []string{nbr},
			Comment:        fmt.Sprintf("Neighbor %s already in closed set, skipping", nbr),
		}))
		return
	}

	tentG := s.g[cur] + arc.Weight
	h := s.h[nbr]
	tentF := tentG + h
	s.rec.Record(s.snapshot(step.Step{
		Kind:           step.KindInspectEdge,
		Current:        cur,
		Highlight:      step.Nodes(nbr),
		HighlightEdges: step.Edge(cur, nbr),
		Comment: fmt.Sprintf("Checking %s → %s: edge=%s, tentative g=%s, h=%s, f=%s",
			cur, nbr, num(arc.Weight), num(tentG), num(h), num(tentF)),
	}))

	if !(tentG < s.g[nbr]) {
		return
	}
	s.pred[nbr] = cur
	s.g[nbr] = tentG

	action := "Updated"
	if i := s.indexOf(nbr); i >= 0 {
		s.open[i] = openEntry{id: nbr, g: tentG, h: h, f: tentF}
	} else {
		action = "Added"
		s.open = append(s.open, openEntry{id: nbr, g: tentG, h: h, f: tentF})
	}
	s.rec.Record(s.snapshot(step.Step{
		Kind:           step.KindRelaxEdge,
		Current:        cur,
		Highlight:      step.Nodes(nbr),
		HighlightEdges: step.Edge(cur, nbr),
		Comment:        fmt.Sprintf("%s %s: g=%s, h=%s, f=%s", action, nbr, num(tentG), num(h), num(tentF)),
	}))
}

// best returns the index of the first open entry with minimal f.
func (s *search) best() int {
	best := 0
	for i := 1; i < len(s.open); i++ {
		if s.open[i].f < s.open[best].f {
			best = i
		}
	}
	return best
}

func (s *search) indexOf(id string) int {
	return slices.IndexFunc(s.open, func(e openEntry) bool { return e.id == id })
}

func (s *search) openIDs() []string {
	ids := make([]string, len(s.open))
	for i, e := range s.open {
		ids[i] = e.id
	}
	return ids
}

func (s *search) snapshot(st step.Step) step.Step {
	st.Visited = s.closed.Slice()
	st.VisitedEdges = path.TreeEdges(s.pred, s.order)
	st.Queued = s.openIDs()
	st.State = s.state()
	return st
}

func (s *search) state() *step.DistanceState {
	return &step.DistanceState{
		Distances:    s.g.Clone(),
		Predecessors: s.pred.Clone(),
		Heuristics:   s.h.Clone(),
	}
}

func num(v float64) string { return step.FormatNumber(v) }

// RequireHeuristics reports the first node of g without a finite,
// non-negative heuristic. Callers run it before offering A*.
func RequireHeuristics(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	for _, n := range g.Nodes {
		h, ok := n.Heuristic()
		if !ok || !core.ValidWeight(h) {
			return fmt.Errorf("%w: %q", ErrMissingHeuristic, n.ID)
		}
	}
	return nil
}

// MarshalJSON encodes an infinite TotalCost as null.
func (r Result) MarshalJSON() ([]byte, error) {
	type alias Result
	return json.Marshal(struct {
		alias
		TotalCost *float64 `json:"totalCost"`
	}{alias(r), step.Finite(r.TotalCost)})
}

// MarshalYAML encodes an infinite TotalCost as null.
func (r Result) MarshalYAML() (any, error) {
	type alias Result
	return struct {
		alias     `yaml:",inline"`
		TotalCost *float64 `yaml:"totalCost"`
	}{alias(r), step.Finite(r.TotalCost)}, nil
}
