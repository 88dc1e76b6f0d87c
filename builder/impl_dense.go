package builder

import (
	"fmt"

	"github.com/khaclbit/algorithm-visualizer/core"
)

const (
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minCompleteNodes = 1
	minRandomNodes   = 1
)

// Complete builds K_n (n ≥ 1): one edge per unordered pair, i < j, in
// lexicographic index order. A directed graph gets both orientations.
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := circleNodes(g, cfg, methodComplete, n); err != nil {
			return err
		}
		return pairs(g, cfg, methodComplete, n, func() bool { return true })
	}
}

// RandomSparse builds G(n, p): each pair (each ordered pair when directed)
// gets an edge with probability p. A random source is required unless p is
// 0 or 1.
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := circleNodes(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		return pairs(g, cfg, methodRandomSparse, n, func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			}
			return cfg.rng.Float64() < p
		})
	}
}

func circleNodes(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		x, y := core.CircleSlot(i, n)
		if err := addNode(g, cfg, method, cfg.idFn(i), x, y); err != nil {
			return err
		}
	}
	return nil
}

// pairs visits i < j (or every i != j when g is directed) and adds an
// edge whenever keep returns true.
func pairs(g *core.Graph, cfg builderConfig, method string, n int, keep func() bool) error {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (!g.Directed && j < i) {
				continue
			}
			if !keep() {
				continue
			}
			if err := addEdge(g, cfg, method, cfg.idFn(i), cfg.idFn(j)); err != nil {
				return err
			}
		}
	}
	return nil
}
