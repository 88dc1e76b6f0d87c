package builder

import (
	"fmt"

	"github.com/khaclbit/algorithm-visualizer/core"
)

const (
	methodCycle = "Cycle"
	methodPath  = "Path"

	minCycleNodes = 3
	minPathNodes  = 2

	// pathSpacing is the horizontal gap between consecutive path nodes.
	pathSpacing = 80.0
	pathOriginX = 100.0
)

// Cycle builds the simple cycle C_n (n ≥ 3) on the layout circle. Edges run
// i → i+1 and close with n-1 → 0.
// Complexity: O(n) nodes and edges.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			x, y := core.CircleSlot(i, n)
			if err := addNode(g, cfg, methodCycle, cfg.idFn(i), x, y); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Path builds the simple path P_n (n ≥ 2) on a horizontal line.
// Complexity: O(n) nodes and edges.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			x := pathOriginX + float64(i)*pathSpacing
			if err := addNode(g, cfg, methodPath, cfg.idFn(i), x, core.LayoutCenterY); err != nil {
				return err
			}
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}
		return nil
	}
}
