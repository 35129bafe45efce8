package taxonomy

import (
	"strings"
)

// noParent marks arena nodes at rank 0.
const noParent = -1

// node is one taxon in the hierarchy's arena. Nodes are addressed by
// dense integer handles; parent and children hold handles, never
// pointers, so the tree has no ownership cycles.
type node struct {
	name     string
	folded   string
	rank     int
	parent   int
	children []int
	// id is the dense per-rank taxon ID, assigned in first-seen
	// order and never reassigned.
	id int
}

// Taxon is a read-only view of one named node of a hierarchy.
type Taxon struct {
	h      *Hierarchy
	handle int
}

// Name returns the taxon's name with its original casing.
func (t Taxon) Name() string {
	return t.h.nodes[t.handle].name
}

// Rank returns the taxon's rank in [0, depth).
func (t Taxon) Rank() int {
	return t.h.nodes[t.handle].rank
}

// ID returns the dense per-rank taxon ID.
func (t Taxon) ID() int {
	return t.h.nodes[t.handle].id
}

// Parent returns the parent taxon at rank-1. The second value is
// false for rank-0 taxa.
func (t Taxon) Parent() (Taxon, bool) {
	p := t.h.nodes[t.handle].parent
	if p == noParent {
		return Taxon{}, false
	}
	return Taxon{h: t.h, handle: p}, true
}

// Children enumerates child taxa in insertion order.
func (t Taxon) Children() []Taxon {
	hs := t.h.nodes[t.handle].children
	res := make([]Taxon, len(hs))
	for i, c := range hs {
		res[i] = Taxon{h: t.h, handle: c}
	}
	return res
}

// IsLeaf reports whether the taxon terminates a taxonomy path.
func (t Taxon) IsLeaf() bool {
	return len(t.h.nodes[t.handle].children) == 0
}

// Resolve walks parent links to the root and returns the root-to-self
// name sequence. When depth is positive the result is right-padded
// with empty names or truncated to exactly depth entries.
func (t Taxon) Resolve(depth int) []string {
	names := make([]string, t.Rank()+1)
	for h := t.handle; h != noParent; h = t.h.nodes[h].parent {
		names[t.h.nodes[h].rank] = t.h.nodes[h].name
	}
	if depth <= 0 {
		return names
	}
	if len(names) > depth {
		return names[:depth]
	}
	res := make([]string, depth)
	copy(res, names)
	return res
}

// NumPaths returns the number of taxonomy paths terminating in the
// taxon's subtree.
func (t Taxon) NumPaths() int {
	lo, hi := t.PathRange()
	return hi - lo
}

// PathRange returns the half-open interval [lo, hi) of path IDs
// covered by the taxon's descendants. The interval is contiguous by
// construction of the depth-first numbering.
func (t Taxon) PathRange() (int, int) {
	r := t.h.paths.Load().ranges[t.handle]
	return r.lo, r.hi
}

// Compare orders taxa by rank, then case-insensitively by name.
// It is the ordering used for canonical sorted enumerations.
func Compare(a, b Taxon) int {
	an, bn := a.h.nodes[a.handle], b.h.nodes[b.handle]
	if an.rank != bn.rank {
		return an.rank - bn.rank
	}
	return strings.Compare(an.folded, bn.folded)
}

// foldName produces the canonical case-folded map key for a taxon
// name.
func foldName(name string) string {
	return strings.ToLower(name)
}
