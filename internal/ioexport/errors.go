package ioexport

import (
	"fmt"

	"github.com/gnames/dnadb/pkg/errcode"
	"github.com/gnames/gn"
)

// connectError creates an error for an unreachable SQLite file.
func connectError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ExportConnectError,
		Msg:  "Cannot open SQLite file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot open sqlite %q: %w", path, err),
	}
}

// schemaError creates an error for a failed schema creation.
func schemaError(path string, err error) error {
	msg := `Cannot create tables in <em>%s</em>

The file probably holds an earlier export. Remove it and retry.`

	return &gn.Error{
		Code: errcode.ExportSchemaError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot create schema in %q: %w", path, err),
	}
}

// insertError creates an error for a failed row insert.
func insertError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ExportInsertError,
		Msg:  "Cannot write rows to <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot write rows to %q: %w", path, err),
	}
}
