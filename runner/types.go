// Package runner dispatches a graph to one of the step-recording algorithms
// by name, enforces the preconditions the editor used to check before
// offering an algorithm, and summarizes the finished run.
package runner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/khaclbit/algorithm-visualizer/step"
)

// Sentinel errors for run dispatch.
var (
	// ErrUnknownAlgorithm is returned for an algorithm name Run does not know.
	ErrUnknownAlgorithm = errors.New("runner: unknown algorithm")

	// ErrNilGraph is returned when Run receives a nil graph.
	ErrNilGraph = errors.New("runner: graph is nil")

	// ErrStartRequired is returned when a single-source algorithm gets no start node.
	ErrStartRequired = errors.New("runner: start node required")

	// ErrTargetRequired is returned when A* gets no target node.
	ErrTargetRequired = errors.New("runner: target node required")

	// ErrNodeNotFound is returned when an A* endpoint is not in the graph.
	ErrNodeNotFound = errors.New("runner: node not found in graph")
)

// Algorithm names a runnable algorithm.
type Algorithm string

// Supported algorithms.
const (
	BFS           Algorithm = "bfs"
	DFS           Algorithm = "dfs"
	Dijkstra      Algorithm = "dijkstra"
	AStar         Algorithm = "astar"
	FloydWarshall Algorithm = "floyd-warshall"
)

// Algorithms lists every supported algorithm in menu order.
var Algorithms = []Algorithm{BFS, DFS, Dijkstra, AStar, FloydWarshall}

// ParseAlgorithm resolves a case-insensitive name. "a*", "floydwarshall"
// and "fw" are accepted as aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "a*":
		return AStar, nil
	case "floydwarshall", "floyd_warshall", "fw":
		return FloydWarshall, nil
	default:
		for _, a := range Algorithms {
			if string(a) == n {
				return a, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// NeedsStart reports whether the algorithm runs from a single source.
func (a Algorithm) NeedsStart() bool { return a != FloydWarshall }

// NeedsTarget reports whether the algorithm requires a target node.
func (a Algorithm) NeedsTarget() bool { return a == AStar }

// Request selects the algorithm and its endpoints. Target is optional
// except for A*; when set, the summary reports the path to it.
type Request struct {
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`
	Start     string    `json:"start,omitempty" yaml:"start,omitempty"`
	Target    string    `json:"target,omitempty" yaml:"target,omitempty"`
}

// Summary condenses a finished run. Cost is +Inf when no path was found.
type Summary struct {
	Algorithm    Algorithm `json:"algorithm" yaml:"algorithm"`
	StepCount    int       `json:"stepCount" yaml:"stepCount"`
	VisitedCount int       `json:"visitedCount" yaml:"visitedCount"`
	PathFound    bool      `json:"pathFound" yaml:"pathFound"`
	Path         []string  `json:"path" yaml:"path"`
	Cost         float64   `json:"-" yaml:"-"`
	Color        string    `json:"color,omitempty" yaml:"color,omitempty"`
}

// MarshalJSON encodes an infinite Cost as null.
func (s Summary) MarshalJSON() ([]byte, error) {
	type alias Summary
	return json.Marshal(struct {
		alias
		Cost *float64 `json:"cost"`
	}{alias(s), step.Finite(s.Cost)})
}

// MarshalYAML mirrors MarshalJSON: an infinite Cost is null.
func (s Summary) MarshalYAML() (any, error) {
	type alias Summary
	return struct {
		alias `yaml:",inline"`
		Cost  *float64 `yaml:"cost"`
	}{alias(s), step.Finite(s.Cost)}, nil
}

// Result is a finished run: every step plus its summary.
type Result struct {
	Steps   []step.Step `json:"steps" yaml:"steps"`
	Summary Summary     `json:"summary" yaml:"summary"`
}

// Inspection answers a Floyd-Warshall pair query.
type Inspection struct {
	From     string   `json:"from" yaml:"from"`
	To       string   `json:"to" yaml:"to"`
	Path     []string `json:"path" yaml:"path"`
	Distance float64  `json:"distance" yaml:"distance"`
	Color    string   `json:"color" yaml:"color"`
}
