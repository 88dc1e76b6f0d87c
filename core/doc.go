// Package core provides the plain, JSON-friendly graph model that every
// step-recording algorithm in this module reads.
//
// A Graph G = (V,E) is two ordered slices plus a direction flag:
//
//   - Nodes carry an ID, canvas coordinates, an optional label and an
//     optional heuristic weight (used only by A*).
//   - Edges carry an ID, endpoints, a non-negative finite weight and a
//     per-edge Directed toggle kept for round-tripping editor state.
//   - Graph.Directed decides traversal direction for every edge.
//
// Why a value type instead of a locked catalog?
//
//   - Algorithms are eager, single-threaded and never mutate their input,
//     so there is nothing to guard.
//   - Neighbor order must follow edge insertion order (the order the user
//     drew edges), which a sorted catalog would lose.
//   - The same struct round-trips through JSON, YAML and the bolt store.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph
//	AddNode(id string, x, y float64, opts ...NodeOption) error           // O(V)
//	AddEdge(from, to string, w float64, opts ...EdgeOption) (string, error) // O(1)
//
//	// Query
//	HasNode(id) bool, Node(id) (Node, error), NodeIDs() []string
//	Neighbors(id) []string            // distinct, first-seen order
//	EdgeBetween(from, to) (Edge, bool)
//	Adjacency() *Adjacency            // one-pass snapshot: Arcs, Neighbors, Has
//
//	// Hygiene
//	Validate() error                  // joined ErrEmptyNodeID/ErrDuplicateNode/ErrBadWeight/ErrDanglingEdge
//	Clone() *Graph
//
// Malformed weights never stop an algorithm: TraversalWeight maps negative,
// NaN or infinite weights to DefaultWeight (1). Edges whose endpoints are not
// nodes of the graph are skipped by Adjacency.
package core
