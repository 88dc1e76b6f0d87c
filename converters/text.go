package converters

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/step"
)

var (
	lineRe    = regexp.MustCompile(`^(\S+)\s+(\S+)\s+(\S+)$`)
	vertexRe  = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	weightRe  = regexp.MustCompile(`^[\d.]+$`)
	newlineRe = regexp.MustCompile(`\r\n|\r|\n`)
)

// ParseText parses "source target weight" lines.
func ParseText(text string, opts ParseOptions) ParseResult {
	var (
		errs  []ValidationError
		edges []EdgeDef
		verts = make(map[string]struct{})
	)

	for i, raw := range newlineRe.Split(text, -1) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		e, verr := parseLine(line, i+1)
		if verr != nil {
			errs = append(errs, *verr)
			continue
		}
		if !opts.AllowSelfLoops && e.Source == e.Target {
			errs = append(errs, ValidationError{
				Type:       VertexInvalid,
				Line:       e.Line,
				Message:    fmt.Sprintf("Self-loops are not allowed: %s → %s", e.Source, e.Target),
				Suggestion: "Use different source and target vertices",
			})
			continue
		}

		verts[e.Source] = struct{}{}
		verts[e.Target] = struct{}{}
		if opts.AllowDuplicateEdges {
			edges = slices.DeleteFunc(edges, func(d EdgeDef) bool {
				return d.Source == e.Source && d.Target == e.Target
			})
		}
		edges = append(edges, e)
	}

	if opts.MaxNodes > 0 && len(verts) > opts.MaxNodes {
		errs = append(errs, ValidationError{
			Type:       FormatError,
			Message:    fmt.Sprintf("Too many nodes: %d exceeds limit of %d", len(verts), opts.MaxNodes),
			Suggestion: "Reduce the number of unique vertex names",
		})
	}
	if opts.MaxEdges > 0 && len(edges) > opts.MaxEdges {
		errs = append(errs, ValidationError{
			Type:       FormatError,
			Message:    fmt.Sprintf("Too many edges: %d exceeds limit of %d", len(edges), opts.MaxEdges),
			Suggestion: "Reduce the number of edge definitions",
		})
	}

	vertices := make([]string, 0, len(verts))
	for v := range verts {
		vertices = append(vertices, v)
	}
	slices.Sort(vertices)

	return ParseResult{
		Success:  len(errs) == 0,
		Vertices: vertices,
		Edges:    edges,
		Errors:   errs,
	}
}

// ValidateText reports line-level problems without building a result.
func ValidateText(text string) []ValidationError {
	var errs []ValidationError
	for i, raw := range newlineRe.Split(text, -1) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if _, verr := parseLine(line, i+1); verr != nil {
			errs = append(errs, *verr)
		}
	}
	return errs
}

func parseLine(line string, n int) (EdgeDef, *ValidationError) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return EdgeDef{}, &ValidationError{
			Type:       FormatError,
			Line:       n,
			Message:    `Invalid line format. Expected: "vertex1 vertex2 weight"`,
			Suggestion: `Use format like "A B 5" or "node1 node2 3.14"`,
		}
	}
	src, dst, ws := m[1], m[2], m[3]

	for _, v := range []struct{ role, id string }{{"source", src}, {"target", dst}} {
		if !vertexRe.MatchString(v.id) {
			return EdgeDef{}, &ValidationError{
				Type:       VertexInvalid,
				Line:       n,
				Message:    fmt.Sprintf("Invalid %s vertex %q. Use only letters, numbers, and underscores", v.role, v.id),
				Suggestion: "Rename vertex to use alphanumeric characters only",
			}
		}
	}

	if strings.HasPrefix(ws, "-") {
		return EdgeDef{}, &ValidationError{
			Type:       WeightInvalid,
			Line:       n,
			Message:    fmt.Sprintf("Weight %q cannot be negative", ws),
			Suggestion: "Use a positive number greater than 0",
		}
	}
	w, err := strconv.ParseFloat(ws, 64)
	if !weightRe.MatchString(ws) || err != nil || math.IsInf(w, 0) {
		return EdgeDef{}, &ValidationError{
			Type:       WeightInvalid,
			Line:       n,
			Message:    fmt.Sprintf("Invalid weight %q. Must be a valid number", ws),
			Suggestion: "Use a numeric value like 1, 2.5, or 10",
		}
	}
	if w <= 0 {
		return EdgeDef{}, &ValidationError{
			Type:       WeightInvalid,
			Line:       n,
			Message:    fmt.Sprintf("Weight %q must be positive", step.FormatNumber(w)),
			Suggestion: "Use a positive number greater than 0",
		}
	}

	return EdgeDef{Source: src, Target: dst, Weight: w, Line: n}, nil
}

// Graph builds an undirected graph from the parsed lines, placing the
// sorted vertices on a circle.
func (r ParseResult) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	n := len(r.Vertices)
	for i, v := range r.Vertices {
		x, y := core.CircleSlot(i, n)
		if err := g.AddNode(v, x, y); err != nil {
			return nil, err
		}
	}
	if err := addEdges(g, r.Edges); err != nil {
		return nil, err
	}
	return g, nil
}

// MergeText rebuilds existing from a parse result. Nodes that already exist
// keep their position and heuristic; new nodes fill circle slots in order.
// Directedness is taken from existing.
func MergeText(existing *core.Graph, r ParseResult) (*core.Graph, error) {
	if existing == nil {
		return r.Graph()
	}
	old := make(map[string]core.Node, len(existing.Nodes))
	for _, n := range existing.Nodes {
		old[n.ID] = n
	}

	g := core.NewGraph(core.WithDirected(existing.Directed))
	n, fresh := len(r.Vertices), 0
	for _, v := range r.Vertices {
		if prev, ok := old[v]; ok {
			var opts []core.NodeOption
			if h, ok := prev.Heuristic(); ok {
				opts = append(opts, core.WithHeuristic(h))
			}
			if err := g.AddNode(v, prev.X, prev.Y, opts...); err != nil {
				return nil, err
			}
			continue
		}
		x, y := core.CircleSlot(fresh, n)
		fresh++
		if err := g.AddNode(v, x, y); err != nil {
			return nil, err
		}
	}
	if err := addEdges(g, r.Edges); err != nil {
		return nil, err
	}
	return g, nil
}

func addEdges(g *core.Graph, defs []EdgeDef) error {
	for _, d := range defs {
		if _, err := g.AddEdge(d.Source, d.Target, d.Weight); err != nil {
			return fmt.Errorf("line %d: %w", d.Line, err)
		}
	}
	return nil
}
