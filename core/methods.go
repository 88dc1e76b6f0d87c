// File: methods.go
// Role: Node/edge construction, lookups, validation and cloning.
// Determinism:
//   - Nodes() and Edges() keep insertion order; nothing here sorts.
//   - Generated edge IDs are "e-<from>-<to>-<n>" with a per-graph counter.

package core

import (
	"errors"
	"fmt"
	"math"
)

// AddNode appends a node at (x, y). The label defaults to the ID.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrDuplicateNode if a node with the same ID exists.
//
// Complexity: O(V) for the duplicate scan.
func (g *Graph) AddNode(id string, x, y float64, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if g.HasNode(id) {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	n := Node{ID: id, X: x, Y: y, Label: id}
	for _, opt := range opts {
		opt(&n)
	}
	g.Nodes = append(g.Nodes, n)

	return nil
}

// AddEdge appends an edge from→to with the given weight and returns its ID.
// Missing endpoints are not created; callers add nodes first.
//
// Errors:
//   - ErrEmptyNodeID if either endpoint is "".
//   - ErrBadWeight if weight is negative, NaN, or infinite.
//
// Complexity: O(E) for the ID uniqueness scan.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if !ValidWeight(weight) {
		return "", fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	e := Edge{
		ID:     g.newEdgeID(from, to),
		From:   from,
		To:     to,
		Weight: weight,
	}
	for _, opt := range opts {
		opt(&e)
	}
	g.Edges = append(g.Edges, e)

	return e.ID, nil
}

// newEdgeID returns the next generated ID not already used by an edge.
// Graphs decoded from JSON start with a zero counter, hence the scan.
func (g *Graph) newEdgeID(from, to string) string {
	used := make(map[string]struct{}, len(g.Edges))
	for _, e := range g.Edges {
		used[e.ID] = struct{}{}
	}
	for {
		g.nextEdgeID++
		id := fmt.Sprintf("e-%s-%s-%d", from, to, g.nextEdgeID)
		if _, taken := used[id]; !taken {
			return id
		}
	}
}

// ValidWeight reports whether w is a legal edge weight (finite, >= 0).
func ValidWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}

// TraversalWeight returns the weight algorithms use for e, falling back to
// DefaultWeight for malformed values.
func TraversalWeight(e Edge) float64 {
	if !ValidWeight(e.Weight) {
		return DefaultWeight
	}
	return e.Weight
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(V)
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index()[id]
	return ok
}

// Node returns the node with the given ID.
// Complexity: O(V)
func (g *Graph) Node(id string) (Node, error) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, nil
		}
	}
	return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
}

// NodeIDs returns node IDs in graph order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// index maps node ID to its position in Nodes.
func (g *Graph) index() map[string]int {
	idx := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		if _, dup := idx[n.ID]; !dup {
			idx[n.ID] = i
		}
	}
	return idx
}

// Validate checks the structural invariants the editing layer is expected to
// uphold: non-empty unique node IDs, non-negative finite weights, and edges
// that reference existing nodes. All violations are joined into one error.
//
// Algorithms never call Validate; they tolerate malformed graphs.
func (g *Graph) Validate() error {
	var errs []error
	seen := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			errs = append(errs, ErrEmptyNodeID)
			continue
		}
		if _, dup := seen[n.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID))
		}
		seen[n.ID] = struct{}{}
	}
	for _, e := range g.Edges {
		if !ValidWeight(e.Weight) {
			errs = append(errs, fmt.Errorf("%w: edge %s weight=%v", ErrBadWeight, e.ID, e.Weight))
		}
		if _, ok := seen[e.From]; !ok {
			errs = append(errs, fmt.Errorf("%w: edge %s from=%q", ErrDanglingEdge, e.ID, e.From))
		}
		if _, ok := seen[e.To]; !ok {
			errs = append(errs, fmt.Errorf("%w: edge %s to=%q", ErrDanglingEdge, e.ID, e.To))
		}
	}

	return errors.Join(errs...)
}

// Clone returns a deep copy of the graph, heuristic pointers included.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	c := &Graph{
		Nodes:      make([]Node, len(g.Nodes)),
		Edges:      make([]Edge, len(g.Edges)),
		Directed:   g.Directed,
		nextEdgeID: g.nextEdgeID,
	}
	copy(c.Edges, g.Edges)
	for i, n := range g.Nodes {
		if n.Weight != nil {
			h := *n.Weight
			n.Weight = &h
		}
		c.Nodes[i] = n
	}

	return c
}
