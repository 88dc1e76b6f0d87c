package bfs_test

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/khaclbit/algorithm-visualizer/bfs"
	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/step"
)

// triangle builds the undirected A-B:1, B-C:2, A-C:4 graph.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, float64(i*100), 0))
	}
	for _, e := range []struct {
		from, to string
		w        float64
	}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 4}} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}
	return g
}

func finalState(t *testing.T, steps []step.Step) *step.TraversalState {
	t.Helper()
	last, ok := step.Last(steps)
	require.True(t, ok)
	st, ok := last.State.(*step.TraversalState)
	require.True(t, ok, "final state is %T", last.State)
	return st
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), "missing")
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)
}

func TestBFS_TriangleDistances(t *testing.T) {
	steps, err := bfs.BFS(triangle(t), "A")
	require.NoError(t, err)

	st := finalState(t, steps)
	assert.Equal(t, step.Distances{"A": 0, "B": 1, "C": 1}, st.Distances)
	assert.Equal(t, step.Predecessors{"A": "", "B": "A", "C": "A"}, st.Predecessors)
	assert.Empty(t, st.Queue)
}

func TestBFS_StepSequence(t *testing.T) {
	steps, err := bfs.BFS(triangle(t), "A")
	require.NoError(t, err)
	require.Len(t, steps, 17)

	kinds := make([]step.Kind, len(steps))
	for i, s := range steps {
		kinds[i] = s.Kind
	}
	assert.Equal(t, []step.Kind{
		step.KindCustom,
		step.KindVisitNode,
		step.KindInspectEdge, step.KindDiscoverNode,
		step.KindInspectEdge, step.KindDiscoverNode,
		step.KindVisitNode,
		step.KindInspectEdge, step.KindCustom,
		step.KindInspectEdge, step.KindCustom,
		step.KindVisitNode,
		step.KindInspectEdge, step.KindCustom,
		step.KindInspectEdge, step.KindCustom,
		step.KindCustom,
	}, kinds)

	assert.Equal(t, "Starting BFS from node A", steps[0].Comment)
	assert.Equal(t, []string{"A"}, steps[0].Queued)
	assert.Equal(t, "Visiting node A (distance: 0)", steps[1].Comment)
	assert.Equal(t, "Checking edge A → B", steps[2].Comment)
	assert.Equal(t, "Discovered B, distance: 1", steps[3].Comment)
	assert.Equal(t, []string{"B"}, steps[3].Highlight.Nodes)
	assert.Equal(t, []string{"B"}, steps[3].Queued)
	assert.Equal(t, []string{"B", "C"}, steps[5].Queued)
	assert.Equal(t, []string{"A"}, steps[8].Rejected)
	assert.Equal(t, "BFS complete!", steps[16].Comment)
	assert.Equal(t, []string{"A", "B", "C"}, steps[16].Visited)
	assert.Equal(t, []step.EdgeRef{{From: "A", To: "B"}, {From: "A", To: "C"}}, steps[16].VisitedEdges)
}

func TestBFS_SnapshotsAreIndependent(t *testing.T) {
	steps, err := bfs.BFS(triangle(t), "A")
	require.NoError(t, err)

	boot := steps[0].State.(*step.TraversalState)
	assert.True(t, math.IsInf(boot.Distances["B"], 1), "B unreached at bootstrap")
	assert.Equal(t, []string{"A"}, boot.Queue)

	ids := map[string]bool{}
	for _, s := range steps {
		assert.False(t, ids[s.ID], "duplicate step id")
		ids[s.ID] = true
	}
}

func TestBFS_UnreachableStaysInfinite(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddNode("D", 0, 0))

	steps, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	st := finalState(t, steps)
	assert.True(t, math.IsInf(st.Distances["D"], 1))
	assert.Equal(t, "", st.Predecessors["D"])
}

func TestBFS_DirectedFollowsArcs(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	_, _ = g.AddEdge("B", "A", 1)
	_, _ = g.AddEdge("B", "C", 1)

	steps, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	st := finalState(t, steps)
	assert.True(t, math.IsInf(st.Distances["B"], 1))
	assert.Len(t, steps, 3, "bootstrap, visit A, complete")
}

// TestBFS_MatchesHopCountOracle compares hop distances against gonum on
// random undirected graphs with unit weights.
func TestBFS_MatchesHopCountOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 3 + rng.Intn(12)
		g := core.NewGraph()
		og := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddNode("n"+strconv.Itoa(i), 0, 0))
			og.AddNode(simple.Node(i))
		}
		for e := 0; e < n*2; e++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			_, err := g.AddEdge("n"+strconv.Itoa(u), "n"+strconv.Itoa(v), float64(1+rng.Intn(9)))
			require.NoError(t, err)
			og.SetWeightedEdge(og.NewWeightedEdge(simple.Node(u), simple.Node(v), 1))
		}

		steps, err := bfs.BFS(g, "n0")
		require.NoError(t, err)
		st := finalState(t, steps)
		sp := path.DijkstraFrom(simple.Node(0), og)

		visits := 0
		for _, s := range steps {
			if s.Kind == step.KindVisitNode {
				visits++
			}
		}
		reached := 0
		for i := 0; i < n; i++ {
			want := sp.WeightTo(int64(i))
			assert.Equal(t, want, st.Distances["n"+strconv.Itoa(i)], fmt.Sprintf("trial %d node %d", trial, i))
			if !math.IsInf(want, 1) {
				reached++
			}
		}
		assert.Equal(t, reached, visits, "one visit per reachable node")
	}
}
