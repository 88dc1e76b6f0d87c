package core

// NodeSet is an insertion-ordered set of node IDs. Snapshots of visited and
// closed sets are taken from it, so their order must be the order in which
// nodes were added.
type NodeSet struct {
	order []string
	index map[string]int
}

// NewNodeSet returns an empty set sized for n entries.
func NewNodeSet(n int) *NodeSet {
	return &NodeSet{
		order: make([]string, 0, n),
		index: make(map[string]int, n),
	}
}

// Add inserts id if absent and reports whether it was inserted.
func (s *NodeSet) Add(id string) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = len(s.order)
	s.order = append(s.order, id)
	return true
}

// Has reports membership.
func (s *NodeSet) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Remove deletes id, keeping the relative order of the others.
func (s *NodeSet) Remove(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j]] = j
	}
	return true
}

// Len returns the number of members.
func (s *NodeSet) Len() int { return len(s.order) }

// Slice returns a copy of the members in insertion order.
func (s *NodeSet) Slice() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
