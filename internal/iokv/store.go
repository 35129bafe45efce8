// Package iokv implements the dnadb ordered byte-string store over an
// embedded Badger database. This is an impure I/O package; the pure
// contracts live in pkg/dnadb.
package iokv

import (
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/gnames/dnadb/pkg/dnadb"
)

type store struct {
	dir string
	db  *badger.DB
}

// Open opens an existing store directory for reading.
func Open(dir string) (dnadb.Store, error) {
	db, err := openBadger(dir)
	if err != nil {
		return nil, openError(dir, err)
	}
	return &store{dir: dir, db: db}, nil
}

func openBadger(dir string) (*badger.DB, error) {
	options := badger.DefaultOptions(dir)
	options.Logger = nil // Disable badger's internal logging
	return badger.Open(options)
}

func (s *store) Get(key string) ([]byte, error) {
	if s.db == nil {
		return nil, closedError(s.dir)
	}
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, keyNotFoundError(s.dir, key)
	}
	if err != nil {
		slog.Error("Cannot read key", "error", err, "dir", s.dir, "key", key)
		return nil, err
	}
	return val, nil
}

func (s *store) Has(key string) (bool, error) {
	if s.db == nil {
		return false, closedError(s.dir)
	}
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		slog.Error("Cannot check key", "error", err, "dir", s.dir, "key", key)
		return false, err
	}
	return found, nil
}

func (s *store) Walk(prefix string, fn func(key string, value []byte) error) error {
	if s.db == nil {
		return closedError(s.dir)
	}
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			val, err := item.ValueCopy(nil)
			if err != nil {
				return iterateError(s.dir, err)
			}
			if err := fn(string(item.Key()), val); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
