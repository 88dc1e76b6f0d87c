package builder

import (
	"fmt"

	"github.com/khaclbit/algorithm-visualizer/core"
)

// Constructor adds one topology to g using the resolved configuration.
// Constructors validate their parameters and return sentinel errors; they
// never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. The first constructor error is returned wrapped as
// "BuildGraph: %w".
//
// Complexity: the sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNode inserts id at (x, y), attaching the configured heuristic.
func addNode(g *core.Graph, cfg builderConfig, method, id string, x, y float64) error {
	var opts []core.NodeOption
	if cfg.heuristicFn != nil {
		opts = append(opts, core.WithHeuristic(cfg.heuristicFn(id, x, y)))
	}
	if err := g.AddNode(id, x, y, opts...); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
	}
	return nil
}

// addEdge inserts u→v with the next generated weight.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	return nil
}
