package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

// HeuristicFn computes h(node) from a generated node's ID and position.
type HeuristicFn func(id string, x, y float64) float64

type builderConfig struct {
	idFn        IDFn
	rng         *rand.Rand
	weightFn    WeightFn
	heuristicFn HeuristicFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     ExcelColumnIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a new random source, making stochastic builds reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithHeuristicFn attaches fn(id, x, y) as the heuristic of every node.
// Panics on nil.
func WithHeuristicFn(fn HeuristicFn) BuilderOption {
	if fn == nil {
		panic("builder: WithHeuristicFn(nil)")
	}
	return func(c *builderConfig) { c.heuristicFn = fn }
}

// ZeroHeuristic is the always-admissible heuristic h = 0.
func ZeroHeuristic(string, float64, float64) float64 { return 0 }
