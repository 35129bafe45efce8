package iokv

import (
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/gnames/dnadb/pkg/dnadb"
	"github.com/gnames/gnsys"
)

// DefaultChunkSize is the number of buffered pairs committed per
// batch when no explicit chunk size is configured.
const DefaultChunkSize = 10_000

type kvPair struct {
	key   string
	value []byte
}

type factory struct {
	dir       string
	db        *badger.DB
	buffer    []kvPair
	chunkSize int
}

// NewFactory creates a fresh store directory for a single write pass.
// Existing data under dir is removed. Writes are buffered and flushed
// every chunkSize pairs in one atomic batch.
func NewFactory(dir string, chunkSize int) (dnadb.Factory, error) {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}

	if err := gnsys.MakeDir(dir); err != nil {
		slog.Error("Cannot create store directory", "error", err, "dir", dir)
		return nil, openError(dir, err)
	}
	if err := gnsys.CleanDir(dir); err != nil {
		slog.Error("Cannot clean store directory", "error", err, "dir", dir)
		return nil, openError(dir, err)
	}

	db, err := openBadger(dir)
	if err != nil {
		return nil, openError(dir, err)
	}
	return &factory{
		dir:       dir,
		db:        db,
		chunkSize: chunkSize,
		buffer:    make([]kvPair, 0, chunkSize),
	}, nil
}

func (f *factory) Write(key string, value []byte) error {
	if f.db == nil {
		return closedError(f.dir)
	}
	f.buffer = append(f.buffer, kvPair{key: key, value: value})
	if len(f.buffer) >= f.chunkSize {
		return f.Flush()
	}
	return nil
}

func (f *factory) Flush() error {
	if f.db == nil {
		return closedError(f.dir)
	}
	if len(f.buffer) == 0 {
		return nil
	}
	err := f.db.Update(func(txn *badger.Txn) error {
		for _, p := range f.buffer {
			if err := txn.Set([]byte(p.key), p.value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return writeError(f.dir, err)
	}
	f.buffer = f.buffer[:0]
	return nil
}

func (f *factory) Close() error {
	if f.db == nil {
		return nil
	}
	if err := f.Flush(); err != nil {
		return err
	}
	err := f.db.Close()
	f.db = nil
	return err
}
