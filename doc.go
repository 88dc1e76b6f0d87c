// Package algoviz records graph algorithms step by step so a front end can
// replay them.
//
// Every algorithm runs eagerly over a plain graph value and returns the full
// []step.Step sequence: which node is current, what is highlighted, visited,
// queued or rejected, a one-line narration, and a snapshot of the working
// state (queue, distances, predecessors, or the Floyd-Warshall matrices).
// Playback is a cursor over that finished sequence.
//
// Packages:
//
//	core/          - Graph, Node, Edge and the read-only adjacency helpers
//	step/          - the Step record, its state variants, JSON encoding, pair colours
//	path/          - predecessor-chain reconstruction, path edges and costs
//	bfs/, dfs/     - traversals
//	dijkstra/      - single-source shortest paths
//	astar/         - heuristic search between two nodes
//	floydwarshall/ - all-pairs shortest paths with path-change narration
//	converters/    - "source target weight" text and JSON import/export
//	builder/       - generated sample graphs (cycle, grid, wheel, random, ...)
//	playback/      - replay cursor and pseudocode highlighting
//	runner/        - run an algorithm by name and summarize the result
//	store/         - named graph persistence in a bolt file
//	server/        - HTTP API
//	cli/           - the algoviz command (cmd/algoviz)
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddNode("A", 0, 0)
//	_ = g.AddNode("B", 100, 0)
//	_, _ = g.AddEdge("A", "B", 3)
//	steps, _ := dijkstra.Dijkstra(g, "A")
//	for _, s := range steps {
//		fmt.Println(s.Comment)
//	}
package algoviz
