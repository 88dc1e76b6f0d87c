package runner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/khaclbit/algorithm-visualizer/astar"
	"github.com/khaclbit/algorithm-visualizer/bfs"
	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/dfs"
	"github.com/khaclbit/algorithm-visualizer/dijkstra"
	"github.com/khaclbit/algorithm-visualizer/floydwarshall"
	"github.com/khaclbit/algorithm-visualizer/logging"
	"github.com/khaclbit/algorithm-visualizer/path"
	"github.com/khaclbit/algorithm-visualizer/step"
)

// Runner runs algorithms and logs each run.
type Runner struct {
	logger  logrus.FieldLogger
	recOpts []step.RecorderOption
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; nil discards.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithRecorderOptions forwards options to every algorithm's step recorder.
func WithRecorderOptions(opts ...step.RecorderOption) Option {
	return func(r *Runner) { r.recOpts = append(r.recOpts, opts...) }
}

// New builds a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.OrDiscard(r.logger).WithField("module", "runner")
	return r
}

// Run is New().Run.
func Run(ctx context.Context, g *core.Graph, req Request) (Result, error) {
	return New().Run(ctx, g, req)
}

// Run executes req against g and returns every recorded step. The context
// is only consulted before the run starts; a started run always completes.
//
// A* requires a target and a heuristic on every node. Dangling edges are
// logged and otherwise left to the algorithms, which skip them.
func (r *Runner) Run(ctx context.Context, g *core.Graph, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	algo, err := ParseAlgorithm(string(req.Algorithm))
	if err != nil {
		return Result{}, err
	}
	if algo.NeedsStart() && req.Start == "" {
		return Result{}, fmt.Errorf("%w for %s", ErrStartRequired, algo)
	}
	if algo.NeedsTarget() && req.Target == "" {
		return Result{}, fmt.Errorf("%w for %s", ErrTargetRequired, algo)
	}

	log := r.logger.WithFields(logrus.Fields{
		"algorithm": algo,
		"nodes":     len(g.Nodes),
		"edges":     len(g.Edges),
	})
	if verr := g.Validate(); verr != nil {
		log.WithError(verr).Warn("graph failed validation")
	}

	began := time.Now()
	log.WithFields(logrus.Fields{"start": req.Start, "target": req.Target}).Debug("run started")

	var res Result
	switch algo {
	case BFS:
		res, err = r.traversal(g, req, bfs.BFS)
	case DFS:
		res, err = r.traversal(g, req, dfs.DFS)
	case Dijkstra:
		res, err = r.dijkstra(g, req)
	case AStar:
		res, err = r.astar(g, req)
	case FloydWarshall:
		res, err = r.floydWarshall(g, req)
	}
	if err != nil {
		log.WithError(err).Warn("run failed")
		return Result{}, err
	}
	res.Summary.Algorithm = algo
	res.Summary.StepCount = len(res.Steps)
	if res.Summary.Path == nil {
		res.Summary.Path = []string{}
	}

	log.WithFields(logrus.Fields{
		"steps":    res.Summary.StepCount,
		"visited":  res.Summary.VisitedCount,
		"found":    res.Summary.PathFound,
		"duration": time.Since(began),
	}).Info("run finished")
	return res, nil
}

type traversalFunc func(*core.Graph, string, ...step.RecorderOption) ([]step.Step, error)

// traversal covers BFS and DFS. Their target path follows the recorded
// predecessor tree; its cost is the sum of edge weights along it.
func (r *Runner) traversal(g *core.Graph, req Request, run traversalFunc) (Result, error) {
	steps, err := run(g, req.Start, r.recOpts...)
	if err != nil {
		return Result{}, err
	}
	res := Result{Steps: steps, Summary: Summary{Cost: math.Inf(1)}}
	last, _ := step.Last(steps)
	res.Summary.VisitedCount = len(last.Visited)

	st, ok := last.State.(*step.TraversalState)
	if req.Target == "" || !ok {
		return res, nil
	}
	p, err := path.To(st.Predecessors, req.Start, req.Target)
	if err != nil {
		return res, nil
	}
	cost, err := path.Cost(g, p)
	if err != nil {
		return res, nil
	}
	res.Summary.Path, res.Summary.PathFound, res.Summary.Cost = p, true, cost
	return res, nil
}

func (r *Runner) dijkstra(g *core.Graph, req Request) (Result, error) {
	steps, err := dijkstra.Dijkstra(g, req.Start, r.recOpts...)
	if err != nil {
		return Result{}, err
	}
	res := Result{Steps: steps, Summary: Summary{Cost: math.Inf(1)}}
	last, _ := step.Last(steps)
	res.Summary.VisitedCount = len(last.Visited)
	if req.Target == "" {
		return res, nil
	}

	final, err := dijkstra.Final(steps)
	if err != nil {
		return Result{}, err
	}
	if p, perr := path.To(final.Predecessors, req.Start, req.Target); perr == nil {
		res.Summary.Path, res.Summary.PathFound = p, true
		res.Summary.Cost = final.Distances[req.Target]
	}
	return res, nil
}

func (r *Runner) astar(g *core.Graph, req Request) (Result, error) {
	for _, id := range []string{req.Start, req.Target} {
		if !g.HasNode(id) {
			return Result{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}
	if err := astar.RequireHeuristics(g); err != nil {
		return Result{}, err
	}
	out, err := astar.AStar(g, req.Start, req.Target, r.recOpts...)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Steps: out.Steps,
		Summary: Summary{
			VisitedCount: out.VisitedCount,
			PathFound:    out.PathFound,
			Path:         out.Path,
			Cost:         out.TotalCost,
		},
	}, nil
}

// floydWarshall reports every node as visited. With both endpoints set the
// summary carries the pair query.
func (r *Runner) floydWarshall(g *core.Graph, req Request) (Result, error) {
	steps, err := floydwarshall.FloydWarshall(g, r.recOpts...)
	if err != nil {
		return Result{}, err
	}
	res := Result{Steps: steps, Summary: Summary{VisitedCount: len(g.Nodes), Cost: math.Inf(1)}}
	if req.Start == "" || req.Target == "" {
		return res, nil
	}
	in, err := InspectPath(steps, req.Start, req.Target)
	switch {
	case err == nil:
		res.Summary.Path, res.Summary.PathFound = in.Path, true
		res.Summary.Cost, res.Summary.Color = in.Distance, in.Color
	case errors.Is(err, floydwarshall.ErrNoPath):
	default:
		return Result{}, err
	}
	return res, nil
}

// InspectPath answers a pair query from a finished Floyd-Warshall run
// without running it again.
func InspectPath(steps []step.Step, from, to string) (Inspection, error) {
	st, err := floydwarshall.Final(steps)
	if err != nil {
		return Inspection{}, err
	}
	p, d, color, err := floydwarshall.Query(st, from, to)
	if err != nil {
		return Inspection{}, err
	}
	return Inspection{From: from, To: to, Path: p, Distance: d, Color: color}, nil
}
