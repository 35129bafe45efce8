// Package taxonomy implements the taxonomy hierarchy engine of dnadb.
//
// The engine ingests rank-prefixed taxonomy labels such as
// "k__Bacteria;p__Firmicutes;c__;o__;f__;g__;s__", deduplicates taxa
// into a rank-indexed tree, and assigns two families of dense integer
// identifiers: per-rank taxon IDs in first-seen order, and taxonomy
// path IDs numbering terminal root-to-leaf paths depth-first so that
// every internal taxon covers one contiguous path-ID interval.
//
// A hierarchy is built by a single writer; once built, all read
// queries are safe for concurrent use. Derived path indexes are
// rebuilt into fresh snapshots and swapped atomically, so readers
// never observe partial state.
package taxonomy

import (
	"log/slog"
	"sync/atomic"
)

// Hierarchy is a rank-indexed forest of deduplicated taxa with dense
// integer identifiers. The zero value is not usable, create instances
// with New.
type Hierarchy struct {
	depth  int
	scheme Scheme

	// Node arena. A taxon name is unique within its rank
	// (case-insensitively); ranks maps case-folded names to handles.
	nodes []node
	roots []int
	ranks []map[string]int

	// byID maps per-rank taxon IDs back to handles. Append-only: an
	// added taxon never changes the ID of a previously assigned one.
	byID [][]int

	paths atomic.Pointer[pathIndex]
}

type pathRange struct {
	lo, hi int
}

// pathIndex is an immutable snapshot of the derived path numbering.
type pathIndex struct {
	// leaves maps path IDs to leaf handles in depth-first order.
	leaves []int
	// ranges maps node handles to the half-open path-ID interval of
	// their descendant leaves.
	ranges []pathRange
}

// Option modifies a Hierarchy during construction.
type Option func(*Hierarchy)

// OptDepth sets the number of ranks. Values outside [1, scheme depth]
// are ignored with a warning.
func OptDepth(depth int) Option {
	return func(h *Hierarchy) {
		if depth < 1 {
			slog.Warn("Ignoring non-positive hierarchy depth", "depth", depth)
			return
		}
		h.depth = depth
	}
}

// OptScheme sets the rank-prefix table used for label serialization.
func OptScheme(s Scheme) Option {
	return func(h *Hierarchy) {
		if s.Depth() == 0 {
			slog.Warn("Ignoring empty taxonomy scheme")
			return
		}
		h.scheme = s
	}
}

// New creates an empty hierarchy. The default shape is the seven-rank
// kingdom-based scheme.
func New(opts ...Option) *Hierarchy {
	h := &Hierarchy{
		depth:  DefaultDepth,
		scheme: SchemeKingdom,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.depth > h.scheme.Depth() {
		slog.Warn(
			"Hierarchy depth exceeds scheme, truncating",
			"depth", h.depth, "scheme", string(h.scheme),
		)
		h.depth = h.scheme.Depth()
	}
	h.ranks = make([]map[string]int, h.depth)
	h.byID = make([][]int, h.depth)
	for i := range h.depth {
		h.ranks[i] = make(map[string]int)
	}
	h.rebuild()
	return h
}

// Depth returns the fixed number of ranks.
func (h *Hierarchy) Depth() int {
	return h.depth
}

// Scheme returns the rank-prefix table of the hierarchy.
func (h *Hierarchy) Scheme() Scheme {
	return h.scheme
}

// AddTaxons inserts one ranked name sequence, creating missing taxa
// along the walk. Insertion stops at the first empty name, so labels
// may terminate before the full depth. Re-adding an existing path is
// a no-op.
func (h *Hierarchy) AddTaxons(names []string) {
	if h.addTaxons(names) {
		h.rebuild()
	}
}

// AddLabel splits a label and inserts its taxa.
func (h *Hierarchy) AddLabel(label string) {
	h.AddTaxons(Split(label, h.depth, true))
}

// AddEntry inserts the taxa of the entry's label.
func (h *Hierarchy) AddEntry(e Entry) {
	h.AddLabel(e.Label)
}

// AddEntries bulk-inserts entries. The derived path index is rebuilt
// once per batch; ID assignment is identical to entry-at-a-time
// insertion since taxon IDs depend only on first-seen order.
func (h *Hierarchy) AddEntries(entries []Entry) {
	changed := false
	for _, e := range entries {
		if h.addTaxons(Split(e.Label, h.depth, true)) {
			changed = true
		}
	}
	if changed {
		h.rebuild()
	}
}

// addTaxons performs the insertion walk and reports whether any new
// taxon was created. It never leaves the hierarchy partially linked:
// each created node is fully attached before the walk advances.
func (h *Hierarchy) addTaxons(names []string) bool {
	changed := false
	parent := noParent
	for rank, name := range names {
		if rank >= h.depth || name == "" {
			break
		}
		key := foldName(name)
		hd, ok := h.ranks[rank][key]
		if !ok {
			hd = len(h.nodes)
			h.nodes = append(h.nodes, node{
				name:   name,
				folded: key,
				rank:   rank,
				parent: parent,
				id:     len(h.byID[rank]),
			})
			h.ranks[rank][key] = hd
			h.byID[rank] = append(h.byID[rank], hd)
			if parent == noParent {
				h.roots = append(h.roots, hd)
			} else {
				h.nodes[parent].children = append(h.nodes[parent].children, hd)
			}
			changed = true
		}
		parent = hd
	}
	return changed
}

// rebuild recomputes the path numbering into a fresh snapshot and
// swaps it in atomically.
func (h *Hierarchy) rebuild() {
	idx := &pathIndex{ranges: make([]pathRange, len(h.nodes))}
	var dfs func(hd int)
	dfs = func(hd int) {
		lo := len(idx.leaves)
		if len(h.nodes[hd].children) == 0 {
			idx.leaves = append(idx.leaves, hd)
		} else {
			for _, c := range h.nodes[hd].children {
				dfs(c)
			}
		}
		idx.ranges[hd] = pathRange{lo: lo, hi: len(idx.leaves)}
	}
	for _, r := range h.roots {
		dfs(r)
	}
	h.paths.Store(idx)
}

// NumTaxa returns the number of distinct taxa at a rank, or 0 for a
// rank outside [0, depth).
func (h *Hierarchy) NumTaxa(rank int) int {
	if rank < 0 || rank >= h.depth {
		return 0
	}
	return len(h.byID[rank])
}

// NumPaths returns the number of distinct terminal taxonomy paths.
func (h *Hierarchy) NumPaths() int {
	return len(h.paths.Load().leaves)
}

// TaxonID returns the dense taxon ID of a name at a rank. The lookup
// is case-insensitive.
func (h *Hierarchy) TaxonID(rank int, name string) (int, error) {
	if rank < 0 || rank >= h.depth {
		return 0, rankOutOfRangeError(rank, h.depth)
	}
	hd, ok := h.ranks[rank][foldName(name)]
	if !ok {
		return 0, taxonNotFoundError(rank, name)
	}
	return h.nodes[hd].id, nil
}

// TaxonName returns the name assigned to a taxon ID at a rank.
func (h *Hierarchy) TaxonName(rank, id int) (string, error) {
	if rank < 0 || rank >= h.depth {
		return "", rankOutOfRangeError(rank, h.depth)
	}
	if id < 0 || id >= len(h.byID[rank]) {
		return "", taxonNotFoundError(rank, id)
	}
	return h.nodes[h.byID[rank][id]].name, nil
}

// TaxonByName returns the taxon view of a name at a rank.
func (h *Hierarchy) TaxonByName(rank int, name string) (Taxon, error) {
	if rank < 0 || rank >= h.depth {
		return Taxon{}, rankOutOfRangeError(rank, h.depth)
	}
	hd, ok := h.ranks[rank][foldName(name)]
	if !ok {
		return Taxon{}, taxonNotFoundError(rank, name)
	}
	return Taxon{h: h, handle: hd}, nil
}

// Taxa enumerates the taxa of a rank in taxon-ID order.
func (h *Hierarchy) Taxa(rank int) []Taxon {
	if rank < 0 || rank >= h.depth {
		return nil
	}
	res := make([]Taxon, len(h.byID[rank]))
	for i, hd := range h.byID[rank] {
		res[i] = Taxon{h: h, handle: hd}
	}
	return res
}

// Leaves enumerates all childless taxa in path-ID order, found by
// depth-first descent from the rank-0 roots.
func (h *Hierarchy) Leaves() []Taxon {
	idx := h.paths.Load()
	res := make([]Taxon, len(idx.leaves))
	for i, hd := range idx.leaves {
		res[i] = Taxon{h: h, handle: hd}
	}
	return res
}

// PathID returns the dense taxonomy path ID of a label. The label
// must resolve to a terminal taxon of the hierarchy.
func (h *Hierarchy) PathID(label string) (int, error) {
	hd, ok := h.walk(Split(label, h.depth, true), false)
	if !ok || len(h.nodes[hd].children) > 0 {
		return 0, pathNotFoundError(label)
	}
	return h.paths.Load().ranges[hd].lo, nil
}

// PathLabel reconstructs the full-depth label of a taxonomy path ID.
func (h *Hierarchy) PathLabel(id int) (string, error) {
	idx := h.paths.Load()
	if id < 0 || id >= len(idx.leaves) {
		return "", pathNotFoundError(id)
	}
	t := Taxon{h: h, handle: idx.leaves[id]}
	return h.scheme.Join(t.Resolve(h.depth), h.depth)
}

// HasTaxonomy reports whether every non-empty rank name of the label
// exists in the hierarchy at its rank. An empty rank name terminates
// the walk with a positive answer (valid prefix). When strict is
// true, the names must additionally form the exact ancestor chain
// recorded in the tree.
func (h *Hierarchy) HasTaxonomy(label string, strict bool) bool {
	_, ok := h.walk(Split(label, h.depth, true), strict)
	return ok
}

// HasEntry is HasTaxonomy over an entry's label.
func (h *Hierarchy) HasEntry(e Entry, strict bool) bool {
	return h.HasTaxonomy(e.Label, strict)
}

// walk resolves ranked names against the tree. It returns the handle
// of the deepest resolved taxon and whether the whole non-empty
// prefix resolved. The returned handle is noParent when no rank
// matched.
func (h *Hierarchy) walk(names []string, strict bool) (int, bool) {
	parent := noParent
	for rank, name := range names {
		if rank >= h.depth || name == "" {
			break
		}
		hd, ok := h.ranks[rank][foldName(name)]
		if !ok {
			return parent, false
		}
		if strict && h.nodes[hd].parent != parent {
			return parent, false
		}
		parent = hd
	}
	return parent, true
}

// ReduceTaxons returns the longest valid prefix of the ranked names
// found in the hierarchy, padded with empty names to the hierarchy
// depth. Ranks at and after the first unknown name are dropped. When
// strict is true a name only matches if its recorded parent is the
// previously matched taxon; otherwise per-rank name presence
// suffices.
func (h *Hierarchy) ReduceTaxons(names []string, strict bool) []string {
	res := make([]string, h.depth)
	parent := noParent
	for rank, name := range names {
		if rank >= h.depth || name == "" {
			break
		}
		hd, ok := h.ranks[rank][foldName(name)]
		if !ok {
			break
		}
		if strict && h.nodes[hd].parent != parent {
			break
		}
		res[rank] = h.nodes[hd].name
		parent = hd
	}
	return res
}

// ReduceLabel reduces a label to its nearest valid ancestor form at
// the hierarchy depth.
func (h *Hierarchy) ReduceLabel(label string) (string, error) {
	return h.scheme.Join(h.ReduceTaxons(Split(label, h.depth, true), false), h.depth)
}

// ReduceEntry returns the entry with its label reduced.
func (h *Hierarchy) ReduceEntry(e Entry) (Entry, error) {
	label, err := h.ReduceLabel(e.Label)
	if err != nil {
		return Entry{}, err
	}
	return Entry{SequenceID: e.SequenceID, Label: label}, nil
}

// Tokenize maps a label's rank names to their per-rank taxon IDs.
//
// A rank that is empty or unknown to the hierarchy is unresolved.
// With pad false the output stops at the first unresolved rank; with
// pad true the output always has depth entries and unresolved ranks
// carry a sentinel: -1, or the designated unknown ID 0 when
// includeMissing is true. includeMissing shifts all real taxon IDs up
// by one to keep 0 free. Labels deeper than the hierarchy are
// silently truncated.
func (h *Hierarchy) Tokenize(label string, pad, includeMissing bool) []int {
	names := Split(label, h.depth, true)
	tokens := make([]int, 0, h.depth)
	for rank := range h.depth {
		id := -1
		if rank < len(names) && names[rank] != "" {
			if hd, ok := h.ranks[rank][foldName(names[rank])]; ok {
				id = h.nodes[hd].id
			}
		}
		if id < 0 && !pad {
			return tokens
		}
		tokens = append(tokens, sentinel(id, includeMissing))
	}
	return tokens
}

func sentinel(id int, includeMissing bool) int {
	if includeMissing {
		return id + 1
	}
	return id
}

// Detokenize is the inverse of Tokenize: it maps taxon IDs back to
// rank names and reconstructs the label at the hierarchy depth. For
// any label present in the hierarchy,
// Detokenize(Tokenize(label, ...)) returns the label unchanged.
func (h *Hierarchy) Detokenize(tokens []int, includeMissing bool) (string, error) {
	names := make([]string, h.depth)
	for rank, tok := range tokens {
		if rank >= h.depth {
			break
		}
		if includeMissing {
			tok--
		}
		if tok < 0 {
			continue
		}
		name, err := h.TaxonName(rank, tok)
		if err != nil {
			return "", err
		}
		names[rank] = name
	}
	return h.scheme.Join(names, h.depth)
}

// Merge produces a new hierarchy containing the union of all input
// taxa with freshly derived parent links and ID maps. Unless OptDepth
// overrides it, the result uses the minimum depth among the inputs; a
// depth mismatch is reported as a warning, not an error. The
// resulting taxon set is independent of input order.
func Merge(hierarchies []*Hierarchy, opts ...Option) *Hierarchy {
	if len(hierarchies) == 0 {
		return New(opts...)
	}

	depth := hierarchies[0].depth
	mismatch := false
	for _, in := range hierarchies[1:] {
		if in.depth != depth {
			mismatch = true
		}
		depth = min(depth, in.depth)
	}
	if mismatch {
		slog.Warn(
			"Merging hierarchies of different depths",
			"depth", depth,
		)
	}

	merged := New(
		append([]Option{
			OptScheme(hierarchies[0].scheme),
			OptDepth(depth),
		}, opts...)...,
	)
	for _, in := range hierarchies {
		for rank := range min(in.depth, merged.depth) {
			for _, hd := range in.byID[rank] {
				t := Taxon{h: in, handle: hd}
				merged.addTaxons(t.Resolve(0))
			}
		}
	}
	merged.rebuild()
	return merged
}
