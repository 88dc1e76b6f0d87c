// Package core defines the Graph, Node, and Edge value types consumed by the
// step-recording algorithms, plus the read-only lookup helpers they share.
//
// This file declares Node, Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrDuplicateNode  - a node with the same ID already exists.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrBadWeight      - edge weight is negative, NaN, or infinite.
//	ErrDanglingEdge   - an edge references a node that is not in the graph.
package core

import (
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that AddNode was called with an ID already present.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadWeight indicates an edge weight that is negative or not finite.
	ErrBadWeight = errors.New("core: edge weight must be a non-negative finite number")

	// ErrDanglingEdge indicates an edge whose endpoint is not a node of the graph.
	ErrDanglingEdge = errors.New("core: edge references unknown node")
)

// DefaultWeight is the traversal weight used whenever an edge carries a
// malformed (negative, NaN, or infinite) weight.
const DefaultWeight = 1.0

// Node is a vertex of the graph as placed by the editing layer.
//
// Weight is the A* heuristic h(node). A nil Weight means "no heuristic";
// BFS, DFS, Dijkstra and Floyd-Warshall ignore it entirely.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string `json:"id" yaml:"id"`

	// X and Y are canvas coordinates; algorithms never read them.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`

	// Label is the display name; empty means "use ID".
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Weight is the optional heuristic value.
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Heuristic returns the node's heuristic value and whether one is set.
func (n Node) Heuristic() (float64, bool) {
	if n.Weight == nil {
		return 0, false
	}
	return *n.Weight, true
}

// Edge is a weighted connection between two nodes.
//
// Directed is carried for round-tripping per-edge edits; traversal always
// follows the graph-level Directed flag.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string `json:"id" yaml:"id"`

	// From is the source node ID.
	From string `json:"from" yaml:"from"`

	// To is the destination node ID.
	To string `json:"to" yaml:"to"`

	// Weight is the traversal cost; must be non-negative and finite.
	Weight float64 `json:"weight" yaml:"weight"`

	// Directed records a per-edge direction toggle from the editor.
	Directed bool `json:"directed,omitempty" yaml:"directed,omitempty"`
}

// Graph is the plain graph value handed to every algorithm.
//
// Nodes and Edges keep insertion order; neighbor iteration follows the order
// of Edges. Algorithms treat a Graph as read-only.
type Graph struct {
	Nodes    []Node `json:"nodes" yaml:"nodes"`
	Edges    []Edge `json:"edges" yaml:"edges"`
	Directed bool   `json:"directed,omitempty" yaml:"directed,omitempty"`

	// nextEdgeID feeds generated edge IDs in AddEdge.
	nextEdgeID uint64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the graph-level directedness used by traversal.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.Directed = directed }
}

// NodeOption configures a Node when added through AddNode.
type NodeOption func(n *Node)

// WithLabel sets the display label of a node.
func WithLabel(label string) NodeOption {
	return func(n *Node) { n.Label = label }
}

// WithHeuristic sets the A* heuristic value h(node).
func WithHeuristic(h float64) NodeOption {
	return func(n *Node) { n.Weight = &h }
}

// EdgeOption configures an Edge when added through AddEdge.
type EdgeOption func(e *Edge)

// WithEdgeDirected marks an individual edge as directed.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// WithEdgeID overrides the generated edge ID.
func WithEdgeID(id string) EdgeOption {
	return func(e *Edge) {
		if id != "" {
			e.ID = id
		}
	}
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		Nodes: make([]Node, 0),
		Edges: make([]Edge, 0),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
