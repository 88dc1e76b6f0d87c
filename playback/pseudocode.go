package playback

import (
	"slices"

	"github.com/khaclbit/algorithm-visualizer/step"
)

// Line is one pseudocode line. It is lit while the current step's kind is
// one of Kinds.
type Line struct {
	Text   string      `json:"line" yaml:"line"`
	Indent int         `json:"indent" yaml:"indent"`
	Kinds  []step.Kind `json:"stepTypes,omitempty" yaml:"stepTypes,omitempty"`
}

// Active reports whether s lights l.
func (l Line) Active(s step.Step) bool {
	return slices.Contains(l.Kinds, s.Kind)
}

func ln(indent int, text string, kinds ...step.Kind) Line {
	return Line{Text: text, Indent: indent, Kinds: kinds}
}

var pseudocode = map[string][]Line{
	"bfs": {
		ln(0, "BFS(G, start):"),
		ln(1, "queue ← [start]", step.KindCustom),
		ln(1, "visited ← {start}", step.KindCustom),
		ln(1, "while queue is not empty:"),
		ln(2, "u ← queue.dequeue()", step.KindVisitNode),
		ln(2, "for each neighbor v of u:", step.KindInspectEdge),
		ln(3, "if v not in visited:", step.KindDiscoverNode),
		ln(4, "visited.add(v)"),
		ln(4, "queue.enqueue(v)"),
	},
	"dfs": {
		ln(0, "DFS(G, start):"),
		ln(1, "stack ← [start]", step.KindCustom),
		ln(1, "visited ← {}", step.KindCustom),
		ln(1, "while stack is not empty:"),
		ln(2, "u ← stack.pop()", step.KindVisitNode),
		ln(2, "if u not in visited:"),
		ln(3, "visited.add(u)"),
		ln(3, "for each neighbor v of u:", step.KindInspectEdge),
		ln(4, "if v not in visited:", step.KindDiscoverNode),
		ln(5, "stack.push(v)"),
	},
	"dijkstra": {
		ln(0, "Dijkstra(G, start):"),
		ln(1, "dist[v] ← ∞ for all v", step.KindCustom),
		ln(1, "dist[start] ← 0", step.KindCustom),
		ln(1, "pq ← [(0, start)]"),
		ln(1, "while pq is not empty:"),
		ln(2, "u ← pq.extractMin()", step.KindVisitNode),
		ln(2, "for each neighbor v of u:", step.KindInspectEdge),
		ln(3, "alt ← dist[u] + weight(u, v)", step.KindRelaxEdge),
		ln(3, "if alt < dist[v]:", step.KindUpdateDistance),
		ln(4, "dist[v] ← alt"),
		ln(4, "pq.decreaseKey(v, alt)"),
	},
	"floyd-warshall": {
		ln(0, "FloydWarshall(G):"),
		ln(1, "dist ← |V| × |V| matrix", step.KindCustom),
		ln(1, "dist[i][j] ← weight(i,j) or ∞"),
		ln(1, "dist[i][i] ← 0 for all i"),
		ln(1, "for k from 1 to |V|:"),
		ln(2, "for i from 1 to |V|:"),
		ln(3, "for j from 1 to |V|:"),
		ln(4, "if dist[i][k] + dist[k][j] < dist[i][j]:", step.KindMatrixUpdate),
		ln(5, "dist[i][j] ← dist[i][k] + dist[k][j]"),
	},
	"astar": {
		ln(0, "A*(G, start, target):"),
		ln(1, "openSet ← {start}", step.KindCustom),
		ln(1, "closedSet ← {}"),
		ln(1, "g[v] ← ∞ for all v"),
		ln(1, "g[start] ← 0"),
		ln(1, "f[v] ← g[v] + h[v]"),
		ln(1, "while openSet is not empty:"),
		ln(2, "u ← node in openSet with lowest f", step.KindVisitNode),
		ln(2, "if u = target:"),
		ln(3, "return reconstructPath()"),
		ln(2, "openSet.remove(u)"),
		ln(2, "closedSet.add(u)"),
		ln(2, "for each neighbor v of u:", step.KindInspectEdge),
		ln(3, "if v in closedSet: continue"),
		ln(3, "tentative_g ← g[u] + weight(u,v)", step.KindRelaxEdge),
		ln(3, "if tentative_g < g[v]:"),
		ln(4, "g[v] ← tentative_g"),
		ln(4, "f[v] ← g[v] + h[v]"),
		ln(4, "openSet.add(v)"),
		ln(1, `return "no path"`),
	},
}

// Pseudocode returns the listing for an algorithm name as used by the
// runner ("bfs", "dfs", "dijkstra", "astar", "floyd-warshall"). Unknown
// names fall back to BFS. The result is a fresh copy.
func Pseudocode(algorithm string) []Line {
	lines, ok := pseudocode[algorithm]
	if !ok {
		lines = pseudocode["bfs"]
	}
	out := make([]Line, len(lines))
	for i, l := range lines {
		l.Kinds = slices.Clone(l.Kinds)
		out[i] = l
	}
	return out
}

// ActiveLines returns the indexes of the lines lit by the current step,
// or nil before the first step.
func (p *Player) ActiveLines(lines []Line) []int {
	cur, ok := p.Current()
	if !ok {
		return nil
	}
	var out []int
	for i, l := range lines {
		if l.Active(cur) {
			out = append(out, i)
		}
	}
	return out
}
