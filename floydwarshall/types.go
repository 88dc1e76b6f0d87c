package floydwarshall

import "errors"

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil graph pointer is passed.
	ErrGraphNil = errors.New("floydwarshall: graph is nil")

	// ErrNodeNotFound is returned by queries naming a node outside the
	// matrix node order.
	ErrNodeNotFound = errors.New("floydwarshall: node not found")

	// ErrNoPath is returned when no path exists between the pair.
	ErrNoPath = errors.New("floydwarshall: no path")

	// ErrInconsistentNext is returned when following next-hops does not
	// reach the destination within len(nodes)+1 hops.
	ErrInconsistentNext = errors.New("floydwarshall: inconsistent next matrix")

	// ErrNoState is returned by Final when no step carries a matrix state.
	ErrNoState = errors.New("floydwarshall: no matrix state recorded")
)
