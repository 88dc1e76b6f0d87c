package builder

import (
	"fmt"

	"github.com/khaclbit/algorithm-visualizer/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1

	// gridIDFmt is the fixed "r<row>c<col>" grid ID scheme; WithIDScheme
	// does not apply to grids.
	gridIDFmt = "r%dc%d"

	gridSpacing = 80.0
	gridOrigin  = 100.0
)

// GridID returns the ID Grid assigns to cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid builds a rows×cols 4-neighbourhood grid in row-major order. For each
// cell the right edge is added before the down edge; a directed graph also
// gets the reverse of each.
// Complexity: O(rows·cols) nodes and edges.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				x, y := gridOrigin+float64(c)*gridSpacing, gridOrigin+float64(r)*gridSpacing
				if err := addNode(g, cfg, methodGrid, GridID(r, c), x, y); err != nil {
					return err
				}
			}
		}

		link := func(u, v string) error {
			if err := addEdge(g, cfg, methodGrid, u, v); err != nil {
				return err
			}
			if g.Directed {
				return addEdge(g, cfg, methodGrid, v, u)
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
