// Package iotaxonomy persists the sequence-to-label mapping of a
// reference set in an ordered byte-string store. Each distinct label
// gets a dense path index in first-seen order; sequences are keyed
// both by insertion index and by sequence identifier.
package iotaxonomy

import (
	"fmt"

	"github.com/gnames/dnadb/internal/iokv"
	"github.com/gnames/dnadb/pkg/dnadb"
	"github.com/gnames/dnadb/pkg/taxonomy"
)

func seqKey(i int) string {
	return fmt.Sprintf("seq_%d", i)
}

func lixKey(label string) string {
	return "lix_" + label
}

func sidKey(id string) string {
	return "sid_" + id
}

func lblKey(i int) string {
	return fmt.Sprintf("lbl_%d", i)
}

func cntKey(i int) string {
	return fmt.Sprintf("cnt_%d", i)
}

func memKey(i, k int) string {
	return fmt.Sprintf("mem_%d_%d", i, k)
}

// Db is a read-only taxonomy store.
type Db struct {
	dir    string
	store  dnadb.Store
	length int
	labels int
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
	labels := 0
	err = st.Walk("cnt_", func(key string, value []byte) error {
		labels++
		return nil
	})
	if err != nil {
		st.Close()
		return nil, err
	}
	return &Db{dir: dir, store: st, length: int(n), labels: labels}, nil
}

// Len returns the number of stored sequence entries.
func (d *Db) Len() int {
	return d.length
}

// NumLabels returns the number of distinct labels.
func (d *Db) NumLabels() int {
	return d.labels
}

// Label returns the label at a path index.
func (d *Db) Label(index int) (string, error) {
	if index < 0 || index >= d.labels {
		return "", indexError(d.dir, index, d.labels)
	}
	raw, err := d.store.Get(lblKey(index))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Labels returns all labels in path-index order.
func (d *Db) Labels() ([]string, error) {
	res := make([]string, d.labels)
	for i := range res {
		label, err := d.Label(i)
		if err != nil {
			return nil, err
		}
		res[i] = label
	}
	return res, nil
}

// LabelIndex returns the path index of a label.
func (d *Db) LabelIndex(label string) (int, error) {
	raw, err := d.store.Get(lixKey(label))
	if err != nil {
		return 0, labelError(d.dir, label)
	}
	i, err := dnadb.DecodeIndex(raw)
	if err != nil {
		return 0, err
	}
	return int(i), nil
}

// HasLabel reports whether a label is stored.
func (d *Db) HasLabel(label string) (bool, error) {
	return d.store.Has(lixKey(label))
}

// Count returns the number of sequences recorded under a path index.
func (d *Db) Count(index int) (int, error) {
	if index < 0 || index >= d.labels {
		return 0, indexError(d.dir, index, d.labels)
	}
	raw, err := d.store.Get(cntKey(index))
	if err != nil {
		return 0, err
	}
	n, err := dnadb.DecodeIndex(raw)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Counts returns per-label sequence counts in path-index order.
func (d *Db) Counts() ([]int, error) {
	res := make([]int, d.labels)
	for i := range res {
		n, err := d.Count(i)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}

// SequenceLabel returns the label of the sequence at an insertion
// index.
func (d *Db) SequenceLabel(seqIndex int) (string, error) {
	if seqIndex < 0 || seqIndex >= d.length {
		return "", indexError(d.dir, seqIndex, d.length)
	}
	raw, err := d.store.Get(seqKey(seqIndex))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SequenceIDIndex returns the path index of a sequence identifier.
func (d *Db) SequenceIDIndex(id string) (int, error) {
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

// SequenceIDLabel returns the label of a sequence identifier.
func (d *Db) SequenceIDLabel(id string) (string, error) {
	i, err := d.SequenceIDIndex(id)
	if err != nil {
		return "", err
	}
	return d.Label(i)
}

// SequenceIDWithLabel pairs a sequence identifier with its label as
// a taxonomy entry.
func (d *Db) SequenceIDWithLabel(id string) (taxonomy.Entry, error) {
	label, err := d.SequenceIDLabel(id)
	if err != nil {
		return taxonomy.Entry{}, err
	}
	return taxonomy.Entry{SequenceID: id, Label: label}, nil
}

// HasSequenceID reports whether a sequence identifier is stored.
func (d *Db) HasSequenceID(id string) (bool, error) {
	return d.store.Has(sidKey(id))
}

// SequenceIDs returns the sequence identifiers recorded under a path
// index, in insertion order.
func (d *Db) SequenceIDs(index int) ([]string, error) {
	n, err := d.Count(index)
	if err != nil {
		return nil, err
	}
	res := make([]string, n)
	for k := range res {
		raw, err := d.store.Get(memKey(index, k))
		if err != nil {
			return nil, err
		}
		res[k] = string(raw)
	}
	return res, nil
}

// All visits every (sequenceID, label) pair grouped by path index.
// It stops at the first error returned by fn and propagates it.
func (d *Db) All(fn func(e taxonomy.Entry) error) error {
	for i := 0; i < d.labels; i++ {
		label, err := d.Label(i)
		if err != nil {
			return err
		}
		ids, err := d.SequenceIDs(i)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := fn(taxonomy.Entry{SequenceID: id, Label: label}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close releases the underlying store.
func (d *Db) Close() error {
	return d.store.Close()
}
