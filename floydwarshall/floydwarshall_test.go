package floydwarshall_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gpath "gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/floydwarshall"
	"github.com/khaclbit/algorithm-visualizer/path"
	"github.com/khaclbit/algorithm-visualizer/step"
)

func triangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 4)
	return g
}

func TestFloydWarshall_NilGraph(t *testing.T) {
	_, err := floydwarshall.FloydWarshall(nil)
	assert.ErrorIs(t, err, floydwarshall.ErrGraphNil)

	_, err = floydwarshall.Final(nil)
	assert.ErrorIs(t, err, floydwarshall.ErrNoState)
}

func TestFloydWarshall_Triangle(t *testing.T) {
	steps, err := floydwarshall.FloydWarshall(triangle(t))
	require.NoError(t, err)
	require.Len(t, steps, 7)

	final, err := floydwarshall.Final(steps)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, final.Nodes)
	assert.Equal(t, step.Matrix{{0, 1, 3}, {1, 0, 2}, {3, 2, 0}}, final.Dist)

	p, err := floydwarshall.ReconstructPath(final.Next, final.Nodes, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p)

	comments := make([]string, len(steps))
	for i, s := range steps {
		comments[i] = s.Comment
	}
	assert.Equal(t, []string{
		"Initialized distance matrix with direct edges",
		"Considering paths through node A (k=0)",
		"Considering paths through node B (k=1)",
		"dist[A][C] = 3 (via B)",
		"dist[C][A] = 3 (via B)",
		"Considering paths through node C (k=2)",
		"Floyd-Warshall complete!",
	}, comments)
}

func TestFloydWarshall_MatrixUpdateStep(t *testing.T) {
	steps, err := floydwarshall.FloydWarshall(triangle(t))
	require.NoError(t, err)

	init := steps[0].State.(*step.MatrixState)
	assert.Equal(t, step.Matrix{{0, 1, 4}, {1, 0, 2}, {4, 2, 0}}, init.Dist)
	assert.Equal(t, step.NextMatrix{{"A", "B", "C"}, {"A", "B", "C"}, {"A", "B", "C"}}, init.Next)

	assert.Equal(t, []string{"B"}, steps[2].Highlight.Intermediary)

	up := steps[3]
	assert.Equal(t, step.KindMatrixUpdate, up.Kind)
	assert.Equal(t, step.NodeHighlight{Intermediary: []string{"B"}, Source: []string{"A"}, Destination: []string{"C"}}, up.Highlight)

	old, newer := step.DimmedPairColor("A", "C"), step.PairColor("A", "C")
	assert.Equal(t, []step.EdgeRef{{From: "A", To: "C", Color: old, Style: step.StylePathOld}}, up.HighlightEdges.OldPath)
	assert.Equal(t, []step.EdgeRef{
		{From: "A", To: "B", Color: newer, Style: step.StylePathNew},
		{From: "B", To: "C", Color: newer, Style: step.StylePathNew},
	}, up.HighlightEdges.NewPath)

	st := up.State.(*step.MatrixState)
	require.NotNil(t, st.PathUpdate)
	assert.Equal(t, step.PathUpdate{
		From: "A", To: "C", Via: "B",
		OldPath: []string{"A", "C"}, NewPath: []string{"A", "B", "C"},
		OldDistance: 4, NewDistance: 3,
	}, *st.PathUpdate)
	assert.Equal(t, "B", st.Next[0][2])

	// the same pair is colored identically in the reverse update
	assert.Equal(t, newer, steps[4].HighlightEdges.NewPath[0].Color)
	// earlier snapshots are untouched
	assert.Equal(t, 4.0, steps[2].State.(*step.MatrixState).Dist[0][2])
}

func TestFloydWarshall_FirstUpdateFromInfinity(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)

	steps, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	var up *step.PathUpdate
	for _, s := range steps {
		if s.Kind == step.KindMatrixUpdate {
			up = s.State.(*step.MatrixState).PathUpdate
			assert.Empty(t, s.HighlightEdges.OldPath)
			break
		}
	}
	require.NotNil(t, up)
	assert.True(t, math.IsInf(up.OldDistance, 1))
	assert.Equal(t, []string{}, up.OldPath)
}

func TestFloydWarshall_InitEdgeCases(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"A", "B"} {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	_, _ = g.AddEdge("A", "A", 5)
	_, _ = g.AddEdge("A", "B", 7)
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "ghost", 1)

	steps, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	final, _ := floydwarshall.Final(steps)
	assert.Equal(t, 0.0, final.Dist[0][0], "self-loop keeps the diagonal")
	assert.Equal(t, 2.0, final.Dist[0][1], "cheapest parallel edge")
	assert.True(t, math.IsInf(final.Dist[1][0], 1), "directed")

	_, err = floydwarshall.ReconstructPath(final.Next, final.Nodes, "B", "A")
	assert.ErrorIs(t, err, floydwarshall.ErrNoPath)
}

func TestReconstructPath_Errors(t *testing.T) {
	nodes := []string{"A", "B", "C"}
	_, err := floydwarshall.ReconstructPath(step.NextMatrix{}, nodes, "A", "Z")
	assert.ErrorIs(t, err, floydwarshall.ErrNodeNotFound)

	loop := step.NextMatrix{
		{"A", "B", "B"},
		{"A", "B", "A"},
		{"", "", "C"},
	}
	_, err = floydwarshall.ReconstructPath(loop, nodes, "A", "C")
	assert.ErrorIs(t, err, floydwarshall.ErrInconsistentNext)

	dead := step.NextMatrix{
		{"A", "", "B"},
		{"", "B", ""},
		{"", "", "C"},
	}
	_, err = floydwarshall.ReconstructPath(dead, nodes, "A", "C")
	assert.ErrorIs(t, err, floydwarshall.ErrInconsistentNext)

	p, err := floydwarshall.ReconstructPath(loop, nodes, "B", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, p)

	_, err = floydwarshall.Distance(step.Matrix{}, nodes, "Q", "A")
	assert.ErrorIs(t, err, floydwarshall.ErrNodeNotFound)
}

func TestQuery(t *testing.T) {
	steps, err := floydwarshall.FloydWarshall(triangle(t))
	require.NoError(t, err)
	final, _ := floydwarshall.Final(steps)

	p, d, color, err := floydwarshall.Query(final, "C", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, p)
	assert.Equal(t, 3.0, d)
	assert.Equal(t, step.PairColor("A", "C"), color)
}

// TestFloydWarshall_Properties runs random graphs through symmetry, triangle
// consistency, round-trip reconstruction and the gonum oracle.
func TestFloydWarshall_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 25; trial++ {
		n := 1 + rng.Intn(9)
		directed := trial%2 == 1
		g := core.NewGraph(core.WithDirected(directed))
		ids := make([]string, n)
		for i := range ids {
			ids[i] = "n" + strconv.Itoa(i)
			require.NoError(t, g.AddNode(ids[i], 0, 0))
		}

		var oracle gpath.AllShortest
		if directed {
			og := simple.NewWeightedDirectedGraph(0, math.Inf(1))
			for i := 0; i < n; i++ {
				og.AddNode(simple.Node(i))
			}
			seen := map[[2]int]bool{}
			for e := 0; e < 2*n; e++ {
				u, v := rng.Intn(n), rng.Intn(n)
				if u == v || seen[[2]int{u, v}] {
					continue
				}
				seen[[2]int{u, v}] = true
				w := float64(rng.Intn(10))
				_, _ = g.AddEdge(ids[u], ids[v], w)
				og.SetWeightedEdge(og.NewWeightedEdge(simple.Node(u), simple.Node(v), w))
			}
			var ok bool
			oracle, ok = gpath.FloydWarshall(og)
			require.True(t, ok)
		} else {
			og := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
			for i := 0; i < n; i++ {
				og.AddNode(simple.Node(i))
			}
			seen := map[[2]int]bool{}
			for e := 0; e < 2*n; e++ {
				u, v := rng.Intn(n), rng.Intn(n)
				if u > v {
					u, v = v, u
				}
				if u == v || seen[[2]int{u, v}] {
					continue
				}
				seen[[2]int{u, v}] = true
				w := float64(rng.Intn(10))
				_, _ = g.AddEdge(ids[u], ids[v], w)
				og.SetWeightedEdge(og.NewWeightedEdge(simple.Node(u), simple.Node(v), w))
			}
			var ok bool
			oracle, ok = gpath.FloydWarshall(og)
			require.True(t, ok)
		}

		steps, err := floydwarshall.FloydWarshall(g)
		require.NoError(t, err)
		final, err := floydwarshall.Final(steps)
		require.NoError(t, err)
		d := final.Dist

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.Equal(t, oracle.Weight(int64(i), int64(j)), d[i][j], "trial %d %d→%d", trial, i, j)
				if !directed {
					assert.Equal(t, d[i][j], d[j][i], "symmetry")
				}
				for k := 0; k < n; k++ {
					assert.LessOrEqual(t, d[i][j], d[i][k]+d[k][j], "triangle %d %d %d", i, j, k)
				}
				if math.IsInf(d[i][j], 1) {
					continue
				}
				p, err := floydwarshall.ReconstructPath(final.Next, final.Nodes, ids[i], ids[j])
				require.NoError(t, err)
				cost, err := path.Cost(g, p)
				require.NoError(t, err)
				dd, err := floydwarshall.Distance(d, final.Nodes, ids[i], ids[j])
				require.NoError(t, err)
				assert.Equal(t, dd, cost, "round trip %s→%s", ids[i], ids[j])
			}
		}
	}
}
