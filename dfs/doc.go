// Package dfs records a depth-first traversal of a core.Graph as a
// replayable sequence of step.Step values.
//
// What:
//
//   - Iterative DFS with an explicit LIFO stack, so steps are recorded
//     linearly instead of across a recursion.
//   - Neighbors are pushed in reverse insertion order; popping therefore
//     reproduces the left-to-right order of a recursive DFS.
//   - A node may sit on the stack several times. Popping an already
//     visited node records an "already visited, skipping" step.
//   - The first discoverer of a node becomes its predecessor.
//
// Emitted steps:
//
//   - custom         "Starting DFS from node S" (bootstrap)
//   - visit-node     first pop of a node
//   - inspect-edge   every neighbor of a visited node
//   - discover-node  unvisited neighbor pushed onto the stack
//   - custom         duplicate pop skipped
//   - custom         "DFS complete!"
//
// Complexity:
//
//   - Time:   O(V + E) pushes and pops, plus O(V) per step for snapshots.
//   - Memory: O(E) stack in the worst case.
//
// Errors:
//
//   - ErrGraphNil           graph pointer is nil
//   - ErrStartNodeNotFound  start ID not in graph
package dfs
