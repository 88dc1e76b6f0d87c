package runner_test

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/khaclbit/algorithm-visualizer/astar"
	"github.com/khaclbit/algorithm-visualizer/bfs"
	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/floydwarshall"
	"github.com/khaclbit/algorithm-visualizer/runner"
	"github.com/khaclbit/algorithm-visualizer/step"
)

func triangle(t *testing.T, opts ...core.NodeOption) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, 0, 0, opts...))
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 4)
	return g
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]runner.Algorithm{
		"BFS":            runner.BFS,
		" dfs ":          runner.DFS,
		"Dijkstra":       runner.Dijkstra,
		"a*":             runner.AStar,
		"astar":          runner.AStar,
		"floyd-warshall": runner.FloydWarshall,
		"fw":             runner.FloydWarshall,
	} {
		got, err := runner.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := runner.ParseAlgorithm("prim")
	assert.ErrorIs(t, err, runner.ErrUnknownAlgorithm)
}

func TestRun_Summaries(t *testing.T) {
	ctx := context.Background()
	g := triangle(t, core.WithHeuristic(0))

	tests := []struct {
		req   runner.Request
		steps int
		path  []string
		cost  float64
	}{
		{runner.Request{Algorithm: runner.BFS, Start: "A", Target: "C"}, 17, []string{"A", "C"}, 4},
		{runner.Request{Algorithm: runner.DFS, Start: "A", Target: "C"}, 15, []string{"A", "C"}, 4},
		{runner.Request{Algorithm: runner.Dijkstra, Start: "A", Target: "C"}, 14, []string{"A", "B", "C"}, 3},
		{runner.Request{Algorithm: runner.AStar, Start: "A", Target: "C"}, 0, []string{"A", "B", "C"}, 3},
		{runner.Request{Algorithm: runner.FloydWarshall, Start: "A", Target: "C"}, 7, []string{"A", "B", "C"}, 3},
	}
	for _, tc := range tests {
		t.Run(string(tc.req.Algorithm), func(t *testing.T) {
			res, err := runner.Run(ctx, g, tc.req)
			require.NoError(t, err)
			if tc.steps > 0 {
				assert.Len(t, res.Steps, tc.steps)
			}
			assert.Equal(t, tc.req.Algorithm, res.Summary.Algorithm)
			assert.Equal(t, len(res.Steps), res.Summary.StepCount)
			assert.True(t, res.Summary.PathFound)
			assert.Equal(t, tc.path, res.Summary.Path)
			assert.Equal(t, tc.cost, res.Summary.Cost)
			assert.Equal(t, 3, res.Summary.VisitedCount)
		})
	}
}

func TestRun_FloydWarshallColor(t *testing.T) {
	res, err := runner.Run(context.Background(), triangle(t), runner.Request{Algorithm: "fw", Start: "A", Target: "C"})
	require.NoError(t, err)
	assert.Equal(t, step.PairColor("A", "C"), res.Summary.Color)

	res, err = runner.Run(context.Background(), triangle(t), runner.Request{Algorithm: "fw"})
	require.NoError(t, err)
	assert.False(t, res.Summary.PathFound)
	assert.Equal(t, []string{}, res.Summary.Path)
}

func TestRun_Unreachable(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddNode("D", 0, 0))

	for _, algo := range []runner.Algorithm{runner.BFS, runner.DFS, runner.Dijkstra, runner.FloydWarshall} {
		res, err := runner.Run(context.Background(), g, runner.Request{Algorithm: algo, Start: "A", Target: "D"})
		require.NoError(t, err, algo)
		assert.False(t, res.Summary.PathFound, algo)
		assert.Empty(t, res.Summary.Path, algo)
		assert.True(t, math.IsInf(res.Summary.Cost, 1), algo)
	}
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	g := triangle(t)

	_, err := runner.Run(ctx, nil, runner.Request{Algorithm: runner.BFS, Start: "A"})
	assert.ErrorIs(t, err, runner.ErrNilGraph)

	_, err = runner.Run(ctx, g, runner.Request{Algorithm: "kruskal", Start: "A"})
	assert.ErrorIs(t, err, runner.ErrUnknownAlgorithm)

	_, err = runner.Run(ctx, g, runner.Request{Algorithm: runner.DFS})
	assert.ErrorIs(t, err, runner.ErrStartRequired)

	_, err = runner.Run(ctx, g, runner.Request{Algorithm: runner.AStar, Start: "A"})
	assert.ErrorIs(t, err, runner.ErrTargetRequired)

	_, err = runner.Run(ctx, g, runner.Request{Algorithm: runner.AStar, Start: "A", Target: "C"})
	assert.ErrorIs(t, err, astar.ErrMissingHeuristic)

	// endpoints are checked before heuristics, as for the other algorithms
	_, err = runner.Run(ctx, g, runner.Request{Algorithm: runner.AStar, Start: "Z", Target: "C"})
	assert.ErrorIs(t, err, runner.ErrNodeNotFound)
	assert.ErrorContains(t, err, `"Z"`)
	_, err = runner.Run(ctx, g, runner.Request{Algorithm: runner.AStar, Start: "A", Target: "Z"})
	assert.ErrorIs(t, err, runner.ErrNodeNotFound)

	_, err = runner.Run(ctx, g, runner.Request{Algorithm: runner.BFS, Start: "Z"})
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = runner.Run(cancelled, g, runner.Request{Algorithm: runner.BFS, Start: "A"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Logging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r := runner.New(runner.WithLogger(logger))

	g := triangle(t)
	_, _ = g.AddEdge("A", "ghost", 1)
	_, err := r.Run(context.Background(), g, runner.Request{Algorithm: runner.BFS, Start: "A"})
	require.NoError(t, err)

	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	assert.Equal(t, []string{"graph failed validation", "run started", "run finished"}, msgs)
	last := hook.LastEntry()
	assert.Equal(t, runner.BFS, last.Data["algorithm"])
	assert.Equal(t, len(g.Nodes), last.Data["nodes"])
}

func TestRun_RecorderOptions(t *testing.T) {
	r := runner.New(runner.WithRecorderOptions(step.WithIDFunc(func() string { return "fixed" })))
	res, err := r.Run(context.Background(), triangle(t), runner.Request{Algorithm: runner.BFS, Start: "A"})
	require.NoError(t, err)
	for _, s := range res.Steps {
		assert.Equal(t, "fixed", s.ID)
	}
}

func TestInspectPath(t *testing.T) {
	steps, err := floydwarshall.FloydWarshall(triangle(t))
	require.NoError(t, err)

	in, err := runner.InspectPath(steps, "C", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, in.Path)
	assert.Equal(t, 3.0, in.Distance)
	assert.Equal(t, step.PairColor("C", "A"), in.Color)

	_, err = runner.InspectPath(steps, "A", "Q")
	assert.ErrorIs(t, err, floydwarshall.ErrNodeNotFound)

	bfsSteps, err := bfs.BFS(triangle(t), "A")
	require.NoError(t, err)
	_, err = runner.InspectPath(bfsSteps, "A", "C")
	assert.ErrorIs(t, err, floydwarshall.ErrNoState)
}

func TestSummary_YAMLCost(t *testing.T) {
	type doc struct {
		Algorithm string   `yaml:"algorithm"`
		Path      []string `yaml:"path"`
		Cost      *float64 `yaml:"cost"`
	}

	b, err := yaml.Marshal(runner.Summary{Algorithm: runner.Dijkstra, Path: []string{"A", "B", "C"}, Cost: 3})
	require.NoError(t, err)
	var got doc
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, "dijkstra", got.Algorithm)
	assert.Equal(t, []string{"A", "B", "C"}, got.Path)
	require.NotNil(t, got.Cost)
	assert.Equal(t, 3.0, *got.Cost)

	b, err = yaml.Marshal(runner.Summary{Algorithm: runner.BFS, Path: []string{}, Cost: math.Inf(1)})
	require.NoError(t, err)
	assert.Contains(t, string(b), "cost: null")
}

func TestSummary_JSONCost(t *testing.T) {
	b, err := json.Marshal(runner.Summary{Algorithm: runner.BFS, Path: []string{}, Cost: math.Inf(1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"algorithm":"bfs","stepCount":0,"visitedCount":0,"pathFound":false,"path":[],"cost":null}`, string(b))
}
