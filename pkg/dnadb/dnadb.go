// Package dnadb defines the interfaces between the dnadb core and its
// persistence layer. Implementations live in internal/io packages.
package dnadb

// Store is a read-only view of an ordered byte-string store. Keys are
// strings, values opaque bytes; iteration visits keys in
// lexicographic order.
//
// A Store is safe for concurrent readers. Stores produced by a
// Factory are immutable.
type Store interface {
	// Get returns the value of a key. A missing key fails with
	// errcode.StoreKeyNotFoundError.
	Get(key string) ([]byte, error)

	// Has reports whether a key is present.
	Has(key string) (bool, error)

	// Walk visits every key with the given prefix in key order. The
	// walk stops at the first error returned by fn and propagates it.
	Walk(prefix string, fn func(key string, value []byte) error) error

	// Close releases the underlying database.
	Close() error
}

// Factory is the single-writer build handle of a Store. Writes are
// buffered and flushed in bounded batches; Close flushes the
// remainder and seals the store. A Factory must not be used after
// Close.
type Factory interface {
	// Write buffers one key/value pair, flushing a full chunk
	// atomically.
	Write(key string, value []byte) error

	// Flush commits all buffered pairs in one atomic batch.
	Flush() error

	// Close flushes and seals the store.
	Close() error
}

// SequenceSource streams sequence records with their identifiers; it
// is the joining interface between FASTA/FASTQ inputs and the
// taxonomy store adapter.
type SequenceSource interface {
	// Next returns the next record's identifier and sequence, or
	// io.EOF when the source is exhausted.
	Next() (id string, sequence string, err error)
}
