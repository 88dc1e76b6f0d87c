// Package floydwarshall records the Floyd-Warshall all-pairs shortest-path
// algorithm on a core.Graph as a step.Step sequence, and answers path
// queries against the final matrices afterwards.
//
// Node order is Graph.Nodes order, fixed at the start of a run. dist[i][j]
// starts at 0 on the diagonal, at the cheapest direct edge weight where an
// edge exists (mirrored when the graph is undirected), and +Inf elsewhere.
// next[i][j] holds the first hop on the best known i→j path.
//
// Each improvement dist[i][k] + dist[k][j] < dist[i][j] records a
// matrix-update step with both matrices, the replaced and the new path, and
// a step.PathUpdate. Path edges carry a color derived from the unordered
// (i, j) pair, dimmed on the old path, so the same pair always renders the
// same way.
//
// Complexity: O(V³) relaxations, O(V²) per recorded step for snapshots.
package floydwarshall
