package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaclbit/algorithm-visualizer/core"
)

// triangle builds the undirected A-B:1, B-C:2, A-C:4 fixture.
func triangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 4)
	require.NoError(t, err)
	return g
}

func TestAddNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", 1, 2, core.WithHeuristic(3)))
	assert.ErrorIs(t, g.AddNode("", 0, 0), core.ErrEmptyNodeID)
	assert.ErrorIs(t, g.AddNode("A", 0, 0), core.ErrDuplicateNode)

	n, err := g.Node("A")
	require.NoError(t, err)
	assert.Equal(t, "A", n.Label, "label defaults to ID")
	h, ok := n.Heuristic()
	assert.True(t, ok)
	assert.Equal(t, 3.0, h)

	_, err = g.Node("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAddEdge_RejectsBadWeights(t *testing.T) {
	g := core.NewGraph()
	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := g.AddEdge("A", "B", w)
		assert.ErrorIs(t, err, core.ErrBadWeight, "weight %v", w)
	}
	id, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err, "zero is legal")
	assert.Equal(t, "e-A-B-1", id)
	_, err = g.AddEdge("", "B", 1)
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
}

func TestNeighbors_UndirectedInsertionOrder(t *testing.T) {
	g := triangle(t)
	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
	assert.Equal(t, []string{"A", "C"}, g.Neighbors("B"))
	assert.Equal(t, []string{"B", "A"}, g.Neighbors("C"))
	assert.Empty(t, g.Neighbors("missing"))
}

func TestNeighbors_Directed(t *testing.T) {
	g := triangle(t, core.WithDirected(true))
	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
	assert.Equal(t, []string{"C"}, g.Neighbors("B"))
	assert.Empty(t, g.Neighbors("C"))
}

func TestAdjacency_ParallelAndDangling(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", 0, 0))
	require.NoError(t, g.AddNode("B", 0, 0))
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "B", 5)
	_, _ = g.AddEdge("A", "ghost", 1)
	g.Edges = append(g.Edges, core.Edge{ID: "bad", From: "B", To: "A", Weight: math.NaN()})

	adj := g.Adjacency()
	arcs := adj.Arcs("A")
	require.Len(t, arcs, 3)
	assert.Equal(t, []float64{2, 5, core.DefaultWeight}, []float64{arcs[0].Weight, arcs[1].Weight, arcs[2].Weight})
	assert.Equal(t, []string{"B"}, adj.Neighbors("A"), "parallel edges dedup, dangling skipped")
	assert.False(t, adj.Has("ghost"))
}

func TestEdgeBetween(t *testing.T) {
	g := triangle(t)
	e, ok := g.EdgeBetween("C", "B")
	require.True(t, ok)
	assert.Equal(t, 2.0, e.Weight)

	d := triangle(t, core.WithDirected(true))
	_, ok = d.EdgeBetween("C", "B")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, triangle(t).Validate())

	g := &core.Graph{
		Nodes: []core.Node{{ID: "A"}, {ID: "A"}, {ID: ""}},
		Edges: []core.Edge{{ID: "e1", From: "A", To: "Z", Weight: -2}},
	}
	err := g.Validate()
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	assert.ErrorIs(t, err, core.ErrDanglingEdge)
}

func TestClone_IsDeep(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", 0, 0, core.WithHeuristic(1)))
	c := g.Clone()
	*c.Nodes[0].Weight = 9
	h, _ := g.Nodes[0].Heuristic()
	assert.Equal(t, 1.0, h)

	id, err := c.AddEdge("A", "A", 1)
	require.NoError(t, err)
	assert.Equal(t, "e-A-A-1", id)
	assert.Empty(t, g.Edges)
}

func TestNodeSet(t *testing.T) {
	s := core.NewNodeSet(4)
	assert.True(t, s.Add("B"))
	assert.True(t, s.Add("A"))
	assert.False(t, s.Add("B"))
	assert.True(t, s.Add("C"))
	assert.True(t, s.Remove("A"))
	assert.False(t, s.Remove("A"))
	assert.Equal(t, []string{"B", "C"}, s.Slice())
	assert.True(t, s.Has("C"))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Remove("B"))
	assert.True(t, s.Has("C"), "index stays consistent after removal")
	assert.True(t, s.Remove("C"))
	assert.Zero(t, s.Len())
}

func TestAddEdge_SkipsTakenIDs(t *testing.T) {
	g := &core.Graph{
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}},
		Edges: []core.Edge{{ID: "e-A-B-1", From: "A", To: "B", Weight: 1}},
	}
	id, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	assert.Equal(t, "e-A-B-2", id)
}

func TestCircleSlot(t *testing.T) {
	x, y := core.CircleSlot(0, 4)
	assert.InDelta(t, core.LayoutCenterX+90, x, 1e-9)
	assert.InDelta(t, core.LayoutCenterY, y, 1e-9)

	x, y = core.CircleSlot(0, 100)
	assert.InDelta(t, core.LayoutCenterX+core.LayoutMaxRadius, x, 1e-9)
	assert.InDelta(t, core.LayoutCenterY, y, 1e-9)

	x, y = core.CircleSlot(0, 0)
	assert.Equal(t, core.LayoutCenterX, x)
	assert.Equal(t, core.LayoutCenterY, y)
}
