package iokv

import (
	"fmt"

	"github.com/gnames/dnadb/pkg/errcode"
	"github.com/gnames/gn"
)

// openError creates an error for when a store directory cannot be
// opened or prepared.
func openError(dir string, err error) error {
	msg := `Cannot open sequence store

<em>Store directory:</em> %s

<em>Possible causes:</em>
  - Directory is not writable
  - Another process holds the store lock
  - The store files are corrupt`

	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: []any{dir},
		Err:  fmt.Errorf("cannot open store %q: %w", dir, err),
	}
}

// closedError creates an error for operations on a closed handle.
func closedError(dir string) error {
	return &gn.Error{
		Code: errcode.StoreClosedError,
		Msg:  "Store <em>%s</em> is closed",
		Vars: []any{dir},
		Err:  fmt.Errorf("store %q is closed", dir),
	}
}

// keyNotFoundError creates an error for a missing key.
func keyNotFoundError(dir, key string) error {
	return &gn.Error{
		Code: errcode.StoreKeyNotFoundError,
		Msg:  "No key <em>%s</em> in store <em>%s</em>",
		Vars: []any{key, dir},
		Err:  fmt.Errorf("key %q not found in %q", key, dir),
	}
}

// writeError creates an error for a failed batch commit.
func writeError(dir string, err error) error {
	return &gn.Error{
		Code: errcode.StoreWriteError,
		Msg:  "Cannot write batch to store <em>%s</em>",
		Vars: []any{dir},
		Err:  fmt.Errorf("store %q write: %w", dir, err),
	}
}

// iterateError creates an error for a failed key walk.
func iterateError(dir string, err error) error {
	return &gn.Error{
		Code: errcode.StoreIterateError,
		Msg:  "Cannot iterate store <em>%s</em>",
		Vars: []any{dir},
		Err:  fmt.Errorf("store %q iterate: %w", dir, err),
	}
}
