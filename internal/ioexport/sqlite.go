// Package ioexport dumps a taxonomy store into a relational SQLite
// file for ad-hoc querying outside dnadb.
package ioexport

import (
	"context"
	"database/sql"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/dnadb/internal/iotaxonomy"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE labels (
  path_id INTEGER PRIMARY KEY,
  label TEXT NOT NULL UNIQUE,
  count INTEGER NOT NULL
);
CREATE TABLE sequences (
  sequence_id TEXT PRIMARY KEY,
  path_id INTEGER NOT NULL REFERENCES labels (path_id)
);
`

// ToSQLite writes the labels and sequence memberships of a taxonomy
// store into a new SQLite file at path. All rows go in one
// transaction.
func ToSQLite(
	ctx context.Context,
	src *iotaxonomy.Db,
	path string,
) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return connectError(path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return schemaError(path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return insertError(path, err)
	}
	defer tx.Rollback()

	labelStmt, err := tx.PrepareContext(
		ctx, "INSERT INTO labels (path_id, label, count) VALUES (?, ?, ?)",
	)
	if err != nil {
		return insertError(path, err)
	}
	defer labelStmt.Close()

	seqStmt, err := tx.PrepareContext(
		ctx, "INSERT INTO sequences (sequence_id, path_id) VALUES (?, ?)",
	)
	if err != nil {
		return insertError(path, err)
	}
	defer seqStmt.Close()

	bar := pb.Full.Start(src.NumLabels())
	bar.Set("prefix", "Exporting labels: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for i := 0; i < src.NumLabels(); i++ {
		bar.Increment()
		label, err := src.Label(i)
		if err != nil {
			return err
		}
		count, err := src.Count(i)
		if err != nil {
			return err
		}
		if _, err := labelStmt.ExecContext(ctx, i, label, count); err != nil {
			return insertError(path, err)
		}

		ids, err := src.SequenceIDs(i)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if _, err := seqStmt.ExecContext(ctx, id, i); err != nil {
				return insertError(path, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return insertError(path, err)
	}
	return nil
}
