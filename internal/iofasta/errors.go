package iofasta

import (
	"fmt"

	"github.com/gnames/dnadb/pkg/errcode"
	"github.com/gnames/gn"
)

// lengthError creates an error for a store without a readable record
// count.
func lengthError(dir string, err error) error {
	msg := `Cannot read record count of <em>%s</em>

The store was probably not sealed by its factory.`

	return &gn.Error{
		Code: errcode.DbLengthError,
		Msg:  msg,
		Vars: []any{dir},
		Err:  fmt.Errorf("cannot read record count of %q: %w", dir, err),
	}
}

// indexError creates an error for an out-of-range record index.
func indexError(dir string, i, length int) error {
	return &gn.Error{
		Code: errcode.DbIndexError,
		Msg:  "Record index <em>%d</em> out of range [0, %d) in <em>%s</em>",
		Vars: []any{i, length, dir},
		Err:  fmt.Errorf("record index %d out of range [0, %d)", i, length),
	}
}

// sequenceIDError creates an error for an unknown sequence
// identifier.
func sequenceIDError(dir, id string) error {
	return &gn.Error{
		Code: errcode.DbSequenceIDError,
		Msg:  "No sequence <em>%s</em> in <em>%s</em>",
		Vars: []any{id, dir},
		Err:  fmt.Errorf("no sequence %q in %q", id, dir),
	}
}
