package converters_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaclbit/algorithm-visualizer/converters"
	"github.com/khaclbit/algorithm-visualizer/core"
)

func TestParseText_Valid(t *testing.T) {
	res := converters.ParseText("A B 5\r\nB C 2.5\n\n  A C 1  \rC D 10", converters.DefaultParseOptions())
	require.True(t, res.Success, res.Errors)
	assert.Empty(t, res.Errors)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Vertices)
	assert.Equal(t, []converters.EdgeDef{
		{Source: "A", Target: "B", Weight: 5, Line: 1},
		{Source: "B", Target: "C", Weight: 2.5, Line: 2},
		{Source: "A", Target: "C", Weight: 1, Line: 4},
		{Source: "C", Target: "D", Weight: 10, Line: 5},
	}, res.Edges)
	assert.NoError(t, res.Err())
}

func TestParseText_Errors(t *testing.T) {
	cases := []struct {
		line    string
		typ     converters.ErrorType
		message string
	}{
		{"A B", converters.FormatError, `Invalid line format. Expected: "vertex1 vertex2 weight"`},
		{"A B 1 extra", converters.FormatError, `Invalid line format. Expected: "vertex1 vertex2 weight"`},
		{"A-1 B 2", converters.VertexInvalid, `Invalid source vertex "A-1". Use only letters, numbers, and underscores`},
		{"A b! 2", converters.VertexInvalid, `Invalid target vertex "b!". Use only letters, numbers, and underscores`},
		{"A B -3", converters.WeightInvalid, `Weight "-3" cannot be negative`},
		{"A B abc", converters.WeightInvalid, `Invalid weight "abc". Must be a valid number`},
		{"A B 1.2.3", converters.WeightInvalid, `Invalid weight "1.2.3". Must be a valid number`},
		{"A B Infinity", converters.WeightInvalid, `Invalid weight "Infinity". Must be a valid number`},
		{"A B 0", converters.WeightInvalid, `Weight "0" must be positive`},
		{"A A 1", converters.VertexInvalid, "Self-loops are not allowed: A → A"},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			res := converters.ParseText("X Y 1\n"+tc.line, converters.DefaultParseOptions())
			assert.False(t, res.Success)
			require.Len(t, res.Errors, 1)
			assert.Equal(t, tc.typ, res.Errors[0].Type)
			assert.Equal(t, 2, res.Errors[0].Line)
			assert.Equal(t, tc.message, res.Errors[0].Message)
			assert.NotEmpty(t, res.Errors[0].Suggestion)
			assert.Len(t, res.Edges, 1, "good lines are still collected")
		})
	}
}

func TestParseText_SelfLoopsAllowed(t *testing.T) {
	opts := converters.DefaultParseOptions()
	opts.AllowSelfLoops = true
	res := converters.ParseText("A A 1", opts)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"A"}, res.Vertices)
}

func TestParseText_DuplicatesLastWins(t *testing.T) {
	res := converters.ParseText("A B 1\nB C 2\nA B 3", converters.DefaultParseOptions())
	require.True(t, res.Success)
	assert.Equal(t, []converters.EdgeDef{
		{Source: "B", Target: "C", Weight: 2, Line: 2},
		{Source: "A", Target: "B", Weight: 3, Line: 3},
	}, res.Edges)

	opts := converters.DefaultParseOptions()
	opts.AllowDuplicateEdges = false
	res = converters.ParseText("A B 1\nA B 3", opts)
	assert.Len(t, res.Edges, 2)
}

func TestParseText_Limits(t *testing.T) {
	opts := converters.DefaultParseOptions()
	opts.MaxNodes, opts.MaxEdges = 2, 1
	res := converters.ParseText("A B 1\nB C 1", opts)
	assert.False(t, res.Success)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, "Too many nodes: 3 exceeds limit of 2", res.Errors[0].Message)
	assert.Equal(t, "Too many edges: 2 exceeds limit of 1", res.Errors[1].Message)
	assert.Zero(t, res.Errors[0].Line)

	err := res.Err()
	assert.ErrorIs(t, err, converters.ErrInvalidText)
	var verr converters.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, converters.FormatError, verr.Type)
}

func TestValidateText(t *testing.T) {
	errs := converters.ValidateText("A B 1\n\nbad\nA A 2")
	require.Len(t, errs, 1, "self-loops are a parse option, not a line error")
	assert.Equal(t, 3, errs[0].Line)
	assert.Equal(t, "line 3: "+errs[0].Message, errs[0].Error())
}

func TestParseResult_Graph(t *testing.T) {
	res := converters.ParseText("C A 1\nA B 2", converters.DefaultParseOptions())
	g, err := res.Graph()
	require.NoError(t, err)

	assert.False(t, g.Directed)
	assert.Equal(t, []string{"A", "B", "C"}, g.NodeIDs())
	// n=3 gives radius 80; slot 0 sits at angle 0
	assert.InDelta(t, 480, g.Nodes[0].X, 1e-9)
	assert.InDelta(t, 300, g.Nodes[0].Y, 1e-9)
	assert.InDelta(t, 360, g.Nodes[1].X, 1e-9)
	assert.InDelta(t, 300+80*0.8660254037844386, g.Nodes[1].Y, 1e-9)
	require.Len(t, g.Edges, 2)
	assert.Equal(t, "C", g.Edges[0].From)
	assert.Equal(t, 2.0, g.Edges[1].Weight)
}

func TestMergeText_PreservesPositions(t *testing.T) {
	existing := core.NewGraph(core.WithDirected(true))
	require.NoError(t, existing.AddNode("A", 11, 22, core.WithHeuristic(4)))
	require.NoError(t, existing.AddNode("Gone", 0, 0))

	res := converters.ParseText("A B 1\nB C 1", converters.DefaultParseOptions())
	g, err := converters.MergeText(existing, res)
	require.NoError(t, err)

	assert.True(t, g.Directed)
	assert.Equal(t, []string{"A", "B", "C"}, g.NodeIDs())
	a, _ := g.Node("A")
	assert.Equal(t, 11.0, a.X)
	assert.Equal(t, 22.0, a.Y)
	h, ok := a.Heuristic()
	assert.True(t, ok)
	assert.Equal(t, 4.0, h)
	b, _ := g.Node("B")
	assert.InDelta(t, 480, b.X, 1e-9, "first new node takes slot 0")

	g2, err := converters.MergeText(nil, res)
	require.NoError(t, err)
	assert.Len(t, g2.Nodes, 3)
}

func TestFormatText(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 2.5)
	_, _ = g.AddEdge("A", "B", 3.14159)
	_, _ = g.AddEdge("A", "ghost", 1)

	assert.Equal(t, "A B 3.14\nA C 2.5\nB C 2", converters.FormatText(g, converters.DefaultFormatOptions()))

	unsorted := converters.DefaultFormatOptions()
	unsorted.SortEdges = false
	assert.Equal(t, "B C 2\nA C 2.5\nA B 3.14", converters.FormatText(g, unsorted))

	readable := converters.DefaultFormatOptions()
	readable.Readable = true
	lines := strings.Split(converters.FormatText(g, readable), "\n")
	assert.Equal(t, "A        B        3.14", lines[0])

	commented := converters.DefaultFormatOptions()
	commented.IncludeComments = true
	out := converters.FormatText(g, commented)
	assert.True(t, strings.HasPrefix(out,
		"# Graph with 3 nodes and 4 edges\n# Format: source_vertex target_vertex weight\n\nA B 3.14"), out)
}

func TestFormatText_EmptyAndLabels(t *testing.T) {
	assert.Equal(t, "", converters.FormatText(core.NewGraph(), converters.DefaultFormatOptions()))
	opts := converters.DefaultFormatOptions()
	opts.IncludeComments = true
	assert.Equal(t, "# Empty graph - no edges defined\n", converters.FormatText(nil, opts))

	g := core.NewGraph()
	require.NoError(t, g.AddNode("n1", 0, 0, core.WithLabel("Start")))
	require.NoError(t, g.AddNode("n2", 0, 0))
	_, _ = g.AddEdge("n1", "n2", 2.001)
	assert.Equal(t, "Start n2 2", converters.FormatText(g, converters.DefaultFormatOptions()))
}

func TestText_RoundTrip(t *testing.T) {
	src := "A B 1\nA C 2.75\nB D 4\nC D 0.5"
	res := converters.ParseText(src, converters.DefaultParseOptions())
	g, err := res.Graph()
	require.NoError(t, err)
	assert.Equal(t, src, converters.FormatText(g, converters.DefaultFormatOptions()))
}

func TestJSON_RoundTrip(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddNode("A", 1, 2, core.WithHeuristic(3)))
	require.NoError(t, g.AddNode("B", 4, 5, core.WithLabel("Bee")))
	_, err := g.AddEdge("A", "B", 1.5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, converters.WriteJSON(&buf, g))
	assert.Contains(t, buf.String(), `"directed": true`)

	back, err := converters.ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Nodes, back.Nodes)
	assert.Equal(t, g.Edges, back.Edges)
	assert.True(t, back.Directed)

	id, err := back.AddEdge("A", "B", 2)
	require.NoError(t, err)
	assert.NotEqual(t, g.Edges[0].ID, id)
}

func TestReadJSON_Rejects(t *testing.T) {
	_, err := converters.ReadJSON(strings.NewReader(`{"nodes":[],"edges":[],"extra":1}`))
	assert.ErrorIs(t, err, converters.ErrInvalidJSON)

	_, err = converters.ReadJSON(strings.NewReader(`{"nodes":[{"id":"A","x":0,"y":0}],"edges":[{"id":"e1","from":"A","to":"Z","weight":1}]}`))
	assert.ErrorIs(t, err, converters.ErrInvalidJSON)
	assert.ErrorIs(t, err, core.ErrDanglingEdge)

	g, err := converters.ReadJSON(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, g.Nodes)
	assert.NotNil(t, g.Edges)
}
