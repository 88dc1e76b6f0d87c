package step

import (
	"slices"

	"github.com/google/uuid"
)

// Recorder accumulates the append-only Step sequence of one algorithm run.
// It is not safe for concurrent use; each run owns its own Recorder.
type Recorder struct {
	steps []Step
	newID func() string
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithIDFunc replaces the default uuid generator, e.g. for golden tests.
func WithIDFunc(fn func() string) RecorderOption {
	return func(r *Recorder) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// NewRecorder returns an empty Recorder that stamps each Step with a random
// UUID.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		steps: make([]Step, 0, 16),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record stamps s with a fresh ID and appends it. Callers hand over
// ownership of every slice and map inside s.
func (r *Recorder) Record(s Step) {
	s.ID = r.newID()
	r.steps = append(r.steps, s)
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int { return len(r.steps) }

// Steps returns the recorded sequence.
func (r *Recorder) Steps() []Step {
	return slices.Clip(r.steps)
}

// Edge is shorthand for a single highlighted edge.
func Edge(from, to string) EdgeHighlight {
	return EdgeHighlight{Edges: []EdgeRef{{From: from, To: to}}}
}

// Nodes is shorthand for a plain node highlight.
func Nodes(ids ...string) NodeHighlight {
	return NodeHighlight{Nodes: slices.Clone(ids)}
}

// Last returns the final step of a sequence and false when it is empty.
func Last(steps []Step) (Step, bool) {
	if len(steps) == 0 {
		return Step{}, false
	}
	return steps[len(steps)-1], true
}
