// Package dijkstra records Dijkstra's single-source shortest-path algorithm
// on a core.Graph with non-negative weights as a step.Step sequence.
//
// The open set is a plain slice, stable-sorted by tentative distance before
// every pop. With V bounded by what a person can draw this costs nothing,
// and it fixes the visible tie-break: among equal distances the node that
// entered the open set first is finalized first.
//
// Emitted steps:
//
//	– custom       "Starting Dijkstra from node S"
//	– visit-node   node finalized ("Processing node X (distance: d)")
//	– custom       neighbor already finalized, skipped
//	– inspect-edge candidate edge examined
//	– relax-edge   strict improvement; narration says "Discovered" when the
//	               node had no predecessor, "Found shorter path" otherwise
//	– custom       "Dijkstra complete!"
//
// Every step carries a *step.DistanceState, and VisitedEdges is rebuilt
// from the full predecessor map each time, so the drawn tree always shows
// the latest shortest-path tree.
//
// Complexity:
//
//	– Time:  O(V² log V + E) for the re-sorts plus O(V) per step for snapshots.
//	– Space: O(V) working state.
//
// Errors (sentinel):
//
//	– ErrNilGraph           if the provided graph pointer is nil.
//	– ErrStartNodeNotFound  if the start node does not exist in the graph.
package dijkstra
