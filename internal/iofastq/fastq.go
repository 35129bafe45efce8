// Package iofastq persists FASTQ records in an ordered byte-string
// store, indexed by dense record index.
package iofastq

import (
	"fmt"

	"github.com/gnames/dnadb/internal/iokv"
	"github.com/gnames/dnadb/pkg/dnadb"
	"github.com/gnames/dnadb/pkg/fastq"
)

func seqKey(i int) string {
	return fmt.Sprintf("seq_%d", i)
}

// Db is a read-only FASTQ store.
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
func (d *Db) Entry(i int) (fastq.Entry, error) {
	if i < 0 || i >= d.length {
		return fastq.Entry{}, indexError(d.dir, i, d.length)
	}
	raw, err := d.store.Get(seqKey(i))
	if err != nil {
		return fastq.Entry{}, err
	}
	return fastq.Deserialize(raw)
}

// All visits every record in index order. It stops at the first
// error returned by fn and propagates it.
func (d *Db) All(fn func(i int, e fastq.Entry) error) error {
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

// Factory builds a FASTQ store in a single write pass.
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
func (f *Factory) Add(e fastq.Entry) error {
	if err := f.fact.Write(seqKey(int(f.count)), e.Serialize()); err != nil {
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
