// Package iofasta persists FASTA records in an ordered byte-string
// store, indexed both by dense record index and by sequence
// identifier.
package iofasta

import (
	"fmt"

	"github.com/gnames/dnadb/internal/iokv"
	"github.com/gnames/dnadb/pkg/dnadb"
	"github.com/gnames/dnadb/pkg/fasta"
)

func seqKey(i int) string {
	return fmt.Sprintf("seq_%d", i)
}

func sidKey(id string) string {
	return "sid_" + id
}

// Db is a read-only FASTA store.
type Db struct {
	dir    string
	store  dnadb.Store
	length int
}

// Open opens a store built by a Factory.
func Open(dir string) (*Db, error) {
	st, err := iokv.Open(dir)
	if err != nil {
		return nil, err
	}
	raw, err := st.Get("length")
	if err != nil {
		st.Close()
		return nil, lengthError(dir, err)
	}
	n, err := dnadb.DecodeIndex(raw)
	if err != nil {
		st.Close()
		return nil, err
	}
	return &Db{dir: dir, store: st, length: int(n)}, nil
}

// Len returns the number of stored records.
func (d *Db) Len() int {
	return d.length
}

// Entry returns the record at a dense index.
func (d *Db) Entry(i int) (fasta.Entry, error) {
	if i < 0 || i >= d.length {
		return fasta.Entry{}, indexError(d.dir, i, d.length)
	}
	raw, err := d.store.Get(seqKey(i))
	if err != nil {
		return fasta.Entry{}, err
	}
	return fasta.Deserialize(raw)
}

// EntryByID returns the record with a sequence identifier.
func (d *Db) EntryByID(id string) (fasta.Entry, error) {
	i, err := d.Index(id)
	if err != nil {
		return fasta.Entry{}, err
	}
	return d.Entry(i)
}

// Index returns the dense index of a sequence identifier.
func (d *Db) Index(id string) (int, error) {
	raw, err := d.store.Get(sidKey(id))
	if err != nil {
		return 0, sequenceIDError(d.dir, id)
	}
	i, err := dnadb.DecodeIndex(raw)
	if err != nil {
		return 0, err
	}
	return int(i), nil
}

// Has reports whether a sequence identifier is stored.
func (d *Db) Has(id string) (bool, error) {
	return d.store.Has(sidKey(id))
}

// All visits every record in index order. It stops at the first
// error returned by fn and propagates it.
func (d *Db) All(fn func(i int, e fasta.Entry) error) error {
	for i := 0; i < d.length; i++ {
		e, err := d.Entry(i)
		if err != nil {
			return err
		}
		if err := fn(i, e); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying store.
func (d *Db) Close() error {
	return d.store.Close()
}

// Factory builds a FASTA store in a single write pass. Records get
// dense indices in insertion order; Close writes the record count
// and seals the store.
type Factory struct {
	dir   string
	fact  dnadb.Factory
	count uint32
}

// NewFactory creates a fresh store directory. Existing data under
// dir is removed.
func NewFactory(dir string, chunkSize int) (*Factory, error) {
	fact, err := iokv.NewFactory(dir, chunkSize)
	if err != nil {
		return nil, err
	}
	return &Factory{dir: dir, fact: fact}, nil
}

// Add appends one record.
func (f *Factory) Add(e fasta.Entry) error {
	if err := f.fact.Write(seqKey(int(f.count)), e.Serialize()); err != nil {
		return err
	}
	if err := f.fact.Write(sidKey(e.ID), dnadb.EncodeIndex(f.count)); err != nil {
		return err
	}
	f.count++
	return nil
}

// Len returns the number of records added so far.
func (f *Factory) Len() int {
	return int(f.count)
}

// Close writes the record count, flushes and seals the store.
func (f *Factory) Close() error {
	if err := f.fact.Write("length", dnadb.EncodeIndex(f.count)); err != nil {
		return err
	}
	return f.fact.Close()
}
