package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the specified start node ID
	// does not exist in the graph.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)
