// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Arcs, EdgeBetween) and the Adjacency snapshot.
// Determinism:
//   - Arcs keep the insertion order of Graph.Edges; parallel edges repeat.
//   - Neighbors keep first-seen order of Arcs with duplicates removed.
// Policy:
//   - Directed graph: an edge contributes only From→To.
//   - Undirected graph: an edge contributes From→To and To→From; a self-loop once.
//   - Edges touching IDs that are not nodes of the graph are skipped.

package core

// Arc is one traversable step out of a node: the other endpoint, the
// traversal weight (malformed weights already defaulted), and the edge ID.
type Arc struct {
	To     string
	Weight float64
	EdgeID string
}

// Adjacency is a read-only neighborhood snapshot of a Graph built in one
// pass over its edges. Algorithms build it once per run.
type Adjacency struct {
	arcs  map[string][]Arc
	nodes map[string]int
}

// Adjacency builds the neighborhood snapshot of g.
// Complexity: O(V + E)
func (g *Graph) Adjacency() *Adjacency {
	a := &Adjacency{
		arcs:  make(map[string][]Arc, len(g.Nodes)),
		nodes: g.index(),
	}
	var ok bool
	for _, e := range g.Edges {
		if _, ok = a.nodes[e.From]; !ok {
			continue
		}
		if _, ok = a.nodes[e.To]; !ok {
			continue
		}
		w := TraversalWeight(e)
		a.arcs[e.From] = append(a.arcs[e.From], Arc{To: e.To, Weight: w, EdgeID: e.ID})
		if !g.Directed && e.From != e.To {
			a.arcs[e.To] = append(a.arcs[e.To], Arc{To: e.From, Weight: w, EdgeID: e.ID})
		}
	}

	return a
}

// Has reports whether id is a node of the underlying graph.
func (a *Adjacency) Has(id string) bool {
	_, ok := a.nodes[id]
	return ok
}

// Arcs returns every arc leaving id in edge insertion order. Parallel edges
// yield one arc each. The returned slice is a copy.
func (a *Adjacency) Arcs(id string) []Arc {
	src := a.arcs[id]
	out := make([]Arc, len(src))
	copy(out, src)
	return out
}

// Neighbors returns the distinct neighbor IDs of id in first-seen order.
func (a *Adjacency) Neighbors(id string) []string {
	src := a.arcs[id]
	out := make([]string, 0, len(src))
	seen := make(map[string]struct{}, len(src))
	for _, arc := range src {
		if _, dup := seen[arc.To]; dup {
			continue
		}
		seen[arc.To] = struct{}{}
		out = append(out, arc.To)
	}
	return out
}

// Neighbors returns the distinct neighbor IDs of id under the graph-level
// direction policy. Unknown IDs yield an empty slice.
// Complexity: O(V + E)
func (g *Graph) Neighbors(id string) []string {
	return g.Adjacency().Neighbors(id)
}

// EdgeBetween returns the first edge connecting from→to, also matching
// to→from when the graph is undirected.
// Complexity: O(E)
func (g *Graph) EdgeBetween(from, to string) (Edge, bool) {
	for _, e := range g.Edges {
		if e.From == from && e.To == to {
			return e, true
		}
		if !g.Directed && e.From == to && e.To == from {
			return e, true
		}
	}
	return Edge{}, false
}
