// Package bfs records a breadth-first traversal of a core.Graph as a
// replayable sequence of step.Step values.
//
// What
//
//   - FIFO-queue BFS from a single start node.
//   - Distance is the edge count from the start; unreached nodes stay +Inf.
//   - Neighbors are examined in edge insertion order (core.Graph.Neighbors).
//
// Emitted steps, in order:
//
//   - custom         "Starting BFS from node S" (bootstrap)
//   - visit-node     once per dequeued node
//   - inspect-edge   once per examined neighbor
//   - discover-node  when the neighbor is new; it is enqueued at distance+1
//   - custom         rejection when the neighbor was already seen
//   - custom         "BFS complete!"
//
// Every step carries a *step.TraversalState snapshot (Queue, Distances,
// Predecessors). Snapshots are copies, so later steps never alias earlier ones.
//
// Complexity
//
//   - Time:   O(V + E) algorithmic work, plus O(V) per step for snapshots.
//   - Memory: O(S·V) for S recorded steps.
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrStartNodeNotFound  if start is not a node of the graph.
package bfs
