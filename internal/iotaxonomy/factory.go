package iotaxonomy

import (
	"github.com/gnames/dnadb/internal/iokv"
	"github.com/gnames/dnadb/pkg/dnadb"
	"github.com/gnames/dnadb/pkg/taxonomy"
)

// Factory builds a taxonomy store in a single write pass. Labels get
// dense path indices in first-seen order; Close writes per-label
// counts and the total record count, then seals the store.
type Factory struct {
	dir       string
	fact      dnadb.Factory
	hierarchy *taxonomy.Hierarchy
	indices   map[string]uint32
	counts    []uint32
	total     uint32
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// OptHierarchy feeds every added label into a hierarchy while the
// store is being built.
func OptHierarchy(h *taxonomy.Hierarchy) FactoryOption {
	return func(f *Factory) {
		f.hierarchy = h
	}
}

// NewFactory creates a fresh store directory. Existing data under
// dir is removed.
func NewFactory(
	dir string,
	chunkSize int,
	opts ...FactoryOption,
) (*Factory, error) {
	fact, err := iokv.NewFactory(dir, chunkSize)
	if err != nil {
		return nil, err
	}
	res := &Factory{
		dir:     dir,
		fact:    fact,
		indices: make(map[string]uint32),
	}
	for _, opt := range opts {
		opt(res)
	}
	return res, nil
}

// Add records one (sequenceID, label) entry.
func (f *Factory) Add(e taxonomy.Entry) error {
	index, ok := f.indices[e.Label]
	if !ok {
		index = uint32(len(f.indices))
		f.indices[e.Label] = index
		f.counts = append(f.counts, 0)
		if err := f.fact.Write(lixKey(e.Label), dnadb.EncodeIndex(index)); err != nil {
			return err
		}
		if err := f.fact.Write(lblKey(int(index)), []byte(e.Label)); err != nil {
			return err
		}
		if f.hierarchy != nil {
			f.hierarchy.AddLabel(e.Label)
		}
	}

	if err := f.fact.Write(seqKey(int(f.total)), []byte(e.Label)); err != nil {
		return err
	}
	if err := f.fact.Write(sidKey(e.SequenceID), dnadb.EncodeIndex(index)); err != nil {
		return err
	}
	member := f.counts[index]
	if err := f.fact.Write(memKey(int(index), int(member)), []byte(e.SequenceID)); err != nil {
		return err
	}
	f.counts[index] = member + 1
	f.total++
	return nil
}

// AddEntries records a batch of entries.
func (f *Factory) AddEntries(entries []taxonomy.Entry) error {
	for _, e := range entries {
		if err := f.Add(e); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of entries added so far.
func (f *Factory) Len() int {
	return int(f.total)
}

// NumLabels returns the number of distinct labels seen so far.
func (f *Factory) NumLabels() int {
	return len(f.indices)
}

// Close writes the summary records, flushes and seals the store.
func (f *Factory) Close() error {
	for i, n := range f.counts {
		if err := f.fact.Write(cntKey(i), dnadb.EncodeIndex(n)); err != nil {
			return err
		}
	}
	if err := f.fact.Write("length", dnadb.EncodeIndex(f.total)); err != nil {
		return err
	}
	return f.fact.Close()
}
