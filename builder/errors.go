package builder

import "errors"

// Sentinel errors returned by constructors.
var (
	// ErrTooFewVertices is returned when a size parameter is below the
	// topology minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability is returned when an edge probability is outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource is returned by stochastic constructors without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed is returned for a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)
