package step

// HighlightInfo describes how a renderer should draw one edge at a step.
type HighlightInfo struct {
	Highlighted bool
	Style       string
	Color       string
	OldPath     bool
	NewPath     bool
}

// EdgeHighlighted reports whether the a–b connection is highlighted in any
// of the edge groups, in either orientation.
func (s Step) EdgeHighlighted(a, b string) bool {
	return s.EdgeHighlightInfo(a, b).Highlighted
}

// EdgeHighlightInfo resolves the drawing style for a–b. The old path wins
// over the new path, which wins over plain highlighted edges; path edges
// without an explicit style get StylePathOld or StylePathNew.
func (s Step) EdgeHighlightInfo(a, b string) HighlightInfo {
	if r, ok := find(s.HighlightEdges.OldPath, a, b); ok {
		return HighlightInfo{Highlighted: true, Style: orDefault(r.Style, StylePathOld), Color: r.Color, OldPath: true}
	}
	if r, ok := find(s.HighlightEdges.NewPath, a, b); ok {
		return HighlightInfo{Highlighted: true, Style: orDefault(r.Style, StylePathNew), Color: r.Color, NewPath: true}
	}
	if r, ok := find(s.HighlightEdges.Edges, a, b); ok {
		return HighlightInfo{Highlighted: true, Style: r.Style, Color: r.Color}
	}
	return HighlightInfo{}
}

// EdgeVisited reports whether a–b is part of the step's visited edges.
func (s Step) EdgeVisited(a, b string) bool {
	_, ok := find(s.VisitedEdges, a, b)
	return ok
}

func find(refs []EdgeRef, a, b string) (EdgeRef, bool) {
	for _, r := range refs {
		if r.Matches(a, b) {
			return r, true
		}
	}
	return EdgeRef{}, false
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
