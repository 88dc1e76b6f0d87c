package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartNodeNotFound indicates that the start node does not exist
	// in the provided graph.
	ErrStartNodeNotFound = errors.New("dijkstra: start node not found in graph")

	// ErrNoState is returned by Final when no step carries a distance state.
	ErrNoState = errors.New("dijkstra: no distance state recorded")
)
