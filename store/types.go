// Package store persists named graphs in a single bolt file through
// bolthold. It replaces the browser local storage the editor used to save
// and restore its canvas.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/khaclbit/algorithm-visualizer/core"
)

// Sentinel errors for graph persistence.
var (
	// ErrGraphNotFound is returned by Load and Delete for an unknown name.
	ErrGraphNotFound = errors.New("store: graph not found")

	// ErrEmptyName is returned when a graph name is blank.
	ErrEmptyName = errors.New("store: graph name is empty")

	// ErrNilGraph is returned by Save for a nil graph.
	ErrNilGraph = errors.New("store: graph is nil")
)

// Store saves and restores graphs by name.
type Store interface {
	Save(ctx context.Context, name string, g *core.Graph) error
	Load(ctx context.Context, name string) (*core.Graph, error)
	List(ctx context.Context) ([]Info, error)
	Delete(ctx context.Context, name string) error
	Close() error
}

// Info summarizes a stored graph without its body.
type Info struct {
	Name      string    `json:"name" yaml:"name"`
	Nodes     int       `json:"nodes" yaml:"nodes"`
	Edges     int       `json:"edges" yaml:"edges"`
	Directed  bool      `json:"directed" yaml:"directed"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// record is the bolthold row; Name is the key.
type record struct {
	Name      string `boltholdKey:"Name"`
	Graph     core.Graph
	CreatedAt int64
	UpdatedAt int64
}
