package converters

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/khaclbit/algorithm-visualizer/core"
)

// ReadJSON decodes a graph document and validates it. Unknown fields are
// rejected.
func ReadJSON(r io.Reader) (*core.Graph, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	g := core.NewGraph()
	if err := dec.Decode(g); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if g.Nodes == nil {
		g.Nodes = []core.Node{}
	}
	if g.Edges == nil {
		g.Edges = []core.Edge{}
	}
	if err := g.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidJSON, err)
	}
	return g, nil
}

// WriteJSON encodes g with two-space indentation.
func WriteJSON(w io.Writer, g *core.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}
