package astar

import (
	"errors"

	"github.com/khaclbit/algorithm-visualizer/step"
)

var (
	// ErrGraphNil is returned when a nil graph pointer is passed.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrMissingHeuristic is returned by RequireHeuristics when a node has
	// no usable heuristic value.
	ErrMissingHeuristic = errors.New("astar: node has no heuristic")
)

// Result is the outcome of one A* run.
type Result struct {
	Steps        []step.Step `json:"steps" yaml:"steps"`
	PathFound    bool        `json:"pathFound" yaml:"pathFound"`
	Path         []string    `json:"path" yaml:"path"`
	TotalCost    float64     `json:"-" yaml:"-"`
	VisitedCount int         `json:"visitedCount" yaml:"visitedCount"`
}

// openEntry is one member of the open set.
type openEntry struct {
	id      string
	g, h, f float64
}
