// Package step defines the record emitted at every algorithmic event and the
// helpers algorithms use to build immutable snapshots of their working state.
package step

import (
	"slices"
)

// Kind tags what happened at a Step.
type Kind string

// Step kinds. Every algorithm emits a subset of these.
const (
	KindVisitNode      Kind = "visit-node"
	KindDiscoverNode   Kind = "discover-node"
	KindRelaxEdge      Kind = "relax-edge"
	KindInspectEdge    Kind = "inspect-edge"
	KindUpdateDistance Kind = "update-distance"
	KindMatrixUpdate   Kind = "matrix-update"
	KindCustom         Kind = "custom"
)

// Kinds lists every Kind in declaration order.
var Kinds = []Kind{
	KindVisitNode,
	KindDiscoverNode,
	KindRelaxEdge,
	KindInspectEdge,
	KindUpdateDistance,
	KindMatrixUpdate,
	KindCustom,
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return slices.Contains(Kinds, k)
}

// Edge styles used on highlighted path edges.
const (
	StylePathOld = "path-old"
	StylePathNew = "path-new"
)

// EdgeRef points at a traversed connection. Color and Style are set only on
// Floyd-Warshall path edges.
type EdgeRef struct {
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
}

// Matches reports whether r connects a and b in either orientation.
func (r EdgeRef) Matches(a, b string) bool {
	return (r.From == a && r.To == b) || (r.From == b && r.To == a)
}

// NodeHighlight groups highlighted nodes. Traversal and shortest-path steps
// fill Nodes; Floyd-Warshall fills the structured roles.
type NodeHighlight struct {
	Nodes        []string `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Intermediary []string `json:"intermediary,omitempty" yaml:"intermediary,omitempty"`
	Source       []string `json:"source,omitempty" yaml:"source,omitempty"`
	Destination  []string `json:"destination,omitempty" yaml:"destination,omitempty"`
}

// EdgeHighlight groups highlighted edges. OldPath and NewPath are only set on
// Floyd-Warshall matrix updates.
type EdgeHighlight struct {
	Edges   []EdgeRef `json:"edges,omitempty" yaml:"edges,omitempty"`
	OldPath []EdgeRef `json:"oldPath,omitempty" yaml:"oldPath,omitempty"`
	NewPath []EdgeRef `json:"newPath,omitempty" yaml:"newPath,omitempty"`
}

// Step is one recorded event. Steps are never mutated after Record.
type Step struct {
	ID             string        `json:"id" yaml:"id"`
	Kind           Kind          `json:"type" yaml:"type"`
	Current        string        `json:"currentNode,omitempty" yaml:"currentNode,omitempty"`
	Highlight      NodeHighlight `json:"highlightNodes" yaml:"highlightNodes"`
	HighlightEdges EdgeHighlight `json:"highlightEdges" yaml:"highlightEdges"`
	Visited        []string      `json:"visitedNodes,omitempty" yaml:"visitedNodes,omitempty"`
	VisitedEdges   []EdgeRef     `json:"visitedEdges,omitempty" yaml:"visitedEdges,omitempty"`
	Queued         []string      `json:"queuedNodes,omitempty" yaml:"queuedNodes,omitempty"`
	Rejected       []string      `json:"rejectedNodes,omitempty" yaml:"rejectedNodes,omitempty"`
	Comment        string        `json:"comment" yaml:"comment"`
	State          State         `json:"state,omitempty" yaml:"state,omitempty"`
}

// State is the per-algorithm payload of a Step. The concrete type is one of
// *TraversalState, *DistanceState or *MatrixState.
type State interface {
	// StateKind names the payload variant ("traversal", "distance", "matrix").
	StateKind() string
}

// TraversalState is the BFS/DFS payload: the frontier plus whatever
// distance and predecessor bookkeeping the algorithm keeps.
type TraversalState struct {
	Queue        []string     `json:"queue,omitempty" yaml:"queue,omitempty"`
	Stack        []string     `json:"stack,omitempty" yaml:"stack,omitempty"`
	Distances    Distances    `json:"distances,omitempty" yaml:"distances,omitempty"`
	Predecessors Predecessors `json:"predecessors,omitempty" yaml:"predecessors,omitempty"`
}

// StateKind implements State.
func (*TraversalState) StateKind() string { return "traversal" }

// DistanceState is the Dijkstra/A* payload. For A* Distances holds g-scores
// and Heuristics holds h(node).
type DistanceState struct {
	Distances    Distances    `json:"distances" yaml:"distances"`
	Predecessors Predecessors `json:"predecessors,omitempty" yaml:"predecessors,omitempty"`
	Heuristics   Distances    `json:"heuristics,omitempty" yaml:"heuristics,omitempty"`
}

// StateKind implements State.
func (*DistanceState) StateKind() string { return "distance" }

// PathUpdate records one Floyd-Warshall improvement for pair (From, To).
type PathUpdate struct {
	From        string   `json:"from" yaml:"from"`
	To          string   `json:"to" yaml:"to"`
	Via         string   `json:"via" yaml:"via"`
	OldPath     []string `json:"oldPath" yaml:"oldPath"`
	NewPath     []string `json:"newPath" yaml:"newPath"`
	OldDistance float64  `json:"oldDistance" yaml:"oldDistance"`
	NewDistance float64  `json:"newDistance" yaml:"newDistance"`
}

// MatrixState is the Floyd-Warshall payload. Nodes fixes the index order of
// both matrices.
type MatrixState struct {
	Nodes      []string    `json:"fwNodes" yaml:"fwNodes"`
	Dist       Matrix      `json:"fwMatrix" yaml:"fwMatrix"`
	Next       NextMatrix  `json:"fwNext" yaml:"fwNext"`
	PathUpdate *PathUpdate `json:"fwPathUpdate,omitempty" yaml:"fwPathUpdate,omitempty"`
}

// StateKind implements State.
func (*MatrixState) StateKind() string { return "matrix" }

// Distances maps node ID to a tentative or final distance; +Inf means
// unreached.
type Distances map[string]float64

// Clone returns an independent copy.
func (d Distances) Clone() Distances {
	if d == nil {
		return nil
	}
	out := make(Distances, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Predecessors maps node ID to its predecessor; "" means none (null).
type Predecessors map[string]string

// Clone returns an independent copy.
func (p Predecessors) Clone() Predecessors {
	if p == nil {
		return nil
	}
	out := make(Predecessors, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Matrix is a square distance matrix indexed by MatrixState.Nodes.
type Matrix [][]float64

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = slices.Clone(row)
	}
	return out
}

// NextMatrix holds the first hop on the best known i→j path; "" means none.
type NextMatrix [][]string

// Clone returns a deep copy.
func (m NextMatrix) Clone() NextMatrix {
	out := make(NextMatrix, len(m))
	for i, row := range m {
		out[i] = slices.Clone(row)
	}
	return out
}
