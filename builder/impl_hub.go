package builder

import (
	"fmt"

	"github.com/khaclbit/algorithm-visualizer/core"
)

const (
	methodStar  = "Star"
	methodWheel = "Wheel"

	minStarNodes  = 2
	minWheelNodes = 4

	// CenterID is the fixed ID of the hub in Star and Wheel.
	CenterID = "Center"
)

// Star builds a hub CenterID with n-1 leaves (n ≥ 2). Spokes run
// Center → leaf.
// Complexity: O(n) nodes and edges.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		return hub(g, cfg, methodStar, n-1, false)
	}
}

// Wheel builds W_n: a rim cycle of n-1 nodes plus spokes from CenterID
// (n ≥ 4). Rim edges come first, then spokes.
// Complexity: O(n) nodes, 2(n-1) edges.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		return hub(g, cfg, methodWheel, n-1, true)
	}
}

func hub(g *core.Graph, cfg builderConfig, method string, leaves int, rim bool) error {
	if err := addNode(g, cfg, method, CenterID, core.LayoutCenterX, core.LayoutCenterY); err != nil {
		return err
	}
	for i := 0; i < leaves; i++ {
		x, y := core.CircleSlot(i, leaves)
		if err := addNode(g, cfg, method, cfg.idFn(i), x, y); err != nil {
			return err
		}
	}
	if rim {
		for i := 0; i < leaves; i++ {
			if err := addEdge(g, cfg, method, cfg.idFn(i), cfg.idFn((i+1)%leaves)); err != nil {
				return err
			}
		}
	}
	for i := 0; i < leaves; i++ {
		if err := addEdge(g, cfg, method, CenterID, cfg.idFn(i)); err != nil {
			return err
		}
	}
	return nil
}
