package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"

	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/logging"
)

// BoltStore is a Store backed by a bolthold database file.
type BoltStore struct {
	db     *bolthold.Store
	logger logrus.FieldLogger
	now    func() time.Time
}

var _ Store = (*BoltStore)(nil)

// Open opens (or creates) the database at path. A zero timeout waits
// five seconds for the file lock.
func Open(path string, timeout time.Duration, logger logrus.FieldLogger) (*BoltStore, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	db, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      timeout,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open graph store %s: %w", path, err)
	}
	return &BoltStore{
		db:     db,
		logger: logging.OrDiscard(logger).WithField("module", "store"),
		now:    time.Now,
	}, nil
}

// Close releases the database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Save stores a copy of g under name, replacing any previous graph.
func (s *BoltStore) Save(ctx context.Context, name string, g *core.Graph) error {
	name, err := checkName(ctx, name)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrNilGraph
	}

	now := s.now().Unix()
	rec := record{Name: name, Graph: *g.Clone(), CreatedAt: now, UpdatedAt: now}
	var prev record
	if err := s.db.Get(name, &prev); err == nil {
		rec.CreatedAt = prev.CreatedAt
	} else if !errors.Is(err, bolthold.ErrNotFound) {
		return fmt.Errorf("read graph %q: %w", name, err)
	}

	if err := s.db.Upsert(name, &rec); err != nil {
		return fmt.Errorf("save graph %q: %w", name, err)
	}
	s.logger.WithFields(logrus.Fields{"name": name, "nodes": len(g.Nodes), "edges": len(g.Edges)}).Debug("graph saved")
	return nil
}

// Load returns the graph stored under name.
func (s *BoltStore) Load(ctx context.Context, name string) (*core.Graph, error) {
	name, err := checkName(ctx, name)
	if err != nil {
		return nil, err
	}
	var rec record
	if err := s.db.Get(name, &rec); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrGraphNotFound, name)
		}
		return nil, fmt.Errorf("load graph %q: %w", name, err)
	}
	g := rec.Graph
	if g.Nodes == nil {
		g.Nodes = []core.Node{}
	}
	if g.Edges == nil {
		g.Edges = []core.Edge{}
	}
	return &g, nil
}

// List returns every stored graph ordered by name.
func (s *BoltStore) List(ctx context.Context) ([]Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var recs []record
	if err := s.db.Find(&recs, nil); err != nil {
		return nil, fmt.Errorf("list graphs: %w", err)
	}
	out := make([]Info, 0, len(recs))
	for _, r := range recs {
		out = append(out, Info{
			Name:      r.Name,
			Nodes:     len(r.Graph.Nodes),
			Edges:     len(r.Graph.Edges),
			Directed:  r.Graph.Directed,
			UpdatedAt: time.Unix(r.UpdatedAt, 0).UTC(),
		})
	}
	slices.SortFunc(out, func(a, b Info) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

// Delete removes the graph stored under name.
func (s *BoltStore) Delete(ctx context.Context, name string) error {
	name, err := checkName(ctx, name)
	if err != nil {
		return err
	}
	if err := s.db.Delete(name, &record{}); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return fmt.Errorf("%w: %q", ErrGraphNotFound, name)
		}
		return fmt.Errorf("delete graph %q: %w", name, err)
	}
	s.logger.WithField("name", name).Debug("graph deleted")
	return nil
}

func checkName(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}
