package floydwarshall

import (
	"fmt"
	"math"
	"slices"

	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/path"
	"github.com/khaclbit/algorithm-visualizer/step"
)

// FloydWarshall computes all-pairs shortest distances of g and returns the
// recorded steps. The final matrices are on the last step; see Final.
func FloydWarshall(g *core.Graph, opts ...step.RecorderOption) ([]step.Step, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	nodes := g.NodeIDs()
	n := len(nodes)
	idx := make(map[string]int, n)
	for i, id := range nodes {
		idx[id] = i
	}

	dist := make(step.Matrix, n)
	next := make(step.NextMatrix, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		next[i] = make([]string, n)
		for j := range dist[i] {
			dist[i][j] = math.Inf(1)
		}
		dist[i][i] = 0
		next[i][i] = nodes[i]
	}
	link := func(i, j int, w float64) {
		if i == j || !(w < dist[i][j]) {
			return
		}
		dist[i][j] = w
		next[i][j] = nodes[j]
	}
	for _, e := range g.Edges {
		i, okFrom := idx[e.From]
		j, okTo := idx[e.To]
		if !okFrom || !okTo {
			continue
		}
		w := core.TraversalWeight(e)
		link(i, j, w)
		if !g.Directed {
			link(j, i, w)
		}
	}

	rec := step.NewRecorder(opts...)
	snap := func(pu *step.PathUpdate) *step.MatrixState {
		return &step.MatrixState{
			Nodes:      slices.Clone(nodes),
			Dist:       dist.Clone(),
			Next:       next.Clone(),
			PathUpdate: pu,
		}
	}

	rec.Record(step.Step{
		Kind:    step.KindCustom,
		Comment: "Initialized distance matrix with direct edges",
		State:   snap(nil),
	})

	for k := 0; k < n; k++ {
		rec.Record(step.Step{
			Kind:      step.KindCustom,
			Highlight: step.NodeHighlight{Intermediary: []string{nodes[k]}},
			Comment:   fmt.Sprintf("Considering paths through node %s (k=%d)", nodes[k], k),
			State:     snap(nil),
		})
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			for j := 0; j < n; j++ {
				if i == j || j == k {
					continue
				}
				through := dist[i][k] + dist[k][j]
				if !(through < dist[i][j]) {
					continue
				}

				oldPath, _ := ReconstructPath(next, nodes, nodes[i], nodes[j])
				oldDist := dist[i][j]
				dist[i][j] = through
				next[i][j] = next[i][k]
				newPath, _ := ReconstructPath(next, nodes, nodes[i], nodes[j])

				rec.Record(step.Step{
					Kind: step.KindMatrixUpdate,
					Highlight: step.NodeHighlight{
						Intermediary: []string{nodes[k]},
						Source:       []string{nodes[i]},
						Destination:  []string{nodes[j]},
					},
					HighlightEdges: step.EdgeHighlight{
						OldPath: styled(oldPath, step.DimmedPairColor(nodes[i], nodes[j]), step.StylePathOld),
						NewPath: styled(newPath, step.PairColor(nodes[i], nodes[j]), step.StylePathNew),
					},
					Comment: fmt.Sprintf("dist[%s][%s] = %s (via %s)", nodes[i], nodes[j], step.FormatNumber(through), nodes[k]),
					State: snap(&step.PathUpdate{
						From:        nodes[i],
						To:          nodes[j],
						Via:         nodes[k],
						OldPath:     nonNil(oldPath),
						NewPath:     nonNil(newPath),
						OldDistance: oldDist,
						NewDistance: through,
					}),
				})
			}
		}
	}

	rec.Record(step.Step{
		Kind:    step.KindCustom,
		Comment: "Floyd-Warshall complete!",
		State:   snap(nil),
	})

	return rec.Steps(), nil
}

// styled converts a node path into edges with a shared color and style.
func styled(p []string, color, style string) []step.EdgeRef {
	edges := path.Edges(p)
	for i := range edges {
		edges[i].Color = color
		edges[i].Style = style
	}
	return edges
}

func nonNil(p []string) []string {
	if p == nil {
		return []string{}
	}
	return p
}

// ReconstructPath follows next-hops from → to. A node to itself is the
// one-node path.
//
// Errors:
//   - ErrNodeNotFound if either ID is not in nodes.
//   - ErrNoPath if no first hop is known.
//   - ErrInconsistentNext if the walk dead-ends or exceeds len(nodes)+1 hops.
func ReconstructPath(next step.NextMatrix, nodes []string, from, to string) ([]string, error) {
	i, j := slices.Index(nodes, from), slices.Index(nodes, to)
	if i < 0 || j < 0 {
		return nil, fmt.Errorf("%w: %q→%q", ErrNodeNotFound, from, to)
	}
	if i == j {
		return []string{from}, nil
	}
	if next[i][j] == "" {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, from, to)
	}

	p := []string{from}
	for cur := i; cur != j; {
		hop := next[cur][j]
		cur = slices.Index(nodes, hop)
		if cur < 0 || len(p) > len(nodes) {
			return p, fmt.Errorf("%w: %s→%s", ErrInconsistentNext, from, to)
		}
		p = append(p, hop)
	}
	return p, nil
}

// Distance reads dist[from][to] from a final matrix.
func Distance(dist step.Matrix, nodes []string, from, to string) (float64, error) {
	i, j := slices.Index(nodes, from), slices.Index(nodes, to)
	if i < 0 || j < 0 {
		return math.Inf(1), fmt.Errorf("%w: %q→%q", ErrNodeNotFound, from, to)
	}
	return dist[i][j], nil
}

// Final returns the matrix state of the last step that carries one.
func Final(steps []step.Step) (*step.MatrixState, error) {
	for i := len(steps) - 1; i >= 0; i-- {
		if st, ok := steps[i].State.(*step.MatrixState); ok {
			return st, nil
		}
	}
	return nil, ErrNoState
}

// Query answers a path inspection against a matrix state: the path, its
// distance, and the pair color used to draw it.
func Query(st *step.MatrixState, from, to string) ([]string, float64, string, error) {
	d, err := Distance(st.Dist, st.Nodes, from, to)
	if err != nil {
		return nil, d, "", err
	}
	p, err := ReconstructPath(st.Next, st.Nodes, from, to)
	if err != nil {
		return nil, d, "", err
	}
	return p, d, step.PairColor(from, to), nil
}
